package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/internal/store"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func openTemp(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(filepath.Join(t.TempDir(), "data", "contacts.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestOpenCreatesEmptyDatabase(t *testing.T) {
	b := openTemp(t)

	got, err := b.Load(types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.FileExists(t, b.Path())
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	b := openTemp(t)
	want := []types.Contact{
		{Phone: "555-1234", Label: "Alice"},
		{Phone: "555-5678", Label: "Bob", Company: "Acme", Email: "bob@acme.com"},
		{Phone: "000", Label: "Carol", Email: "carol@example.com", Blocked: true},
	}

	require.NoError(t, b.Save(want))
	got, err := b.Load(types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveReplacesRows(t *testing.T) {
	b := openTemp(t)
	require.NoError(t, b.Save([]types.Contact{{Phone: "1", Label: "a"}, {Phone: "2", Label: "b"}}))
	require.NoError(t, b.Save([]types.Contact{{Phone: "3", Label: "c"}}))

	got, err := b.Load(types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{{Phone: "3", Label: "c"}}, got)
}

func TestLoadLimit(t *testing.T) {
	b := openTemp(t)
	require.NoError(t, b.Save([]types.Contact{
		{Phone: "1", Label: "a"}, {Phone: "2", Label: "b"}, {Phone: "3", Label: "c"},
	}))

	got, err := b.Load(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Label)
	assert.Equal(t, "b", got[1].Label)

	got, err = b.Load(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRowIDsAreUUIDv7(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")
	b, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, b.Save([]types.Contact{{Phone: "1", Label: "a"}}))
	require.NoError(t, b.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var id string
	require.NoError(t, db.QueryRow("SELECT contact_id FROM contacts").Scan(&id))
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")
	b, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, b.Save([]types.Contact{{Phone: "1", Label: "a"}}))
	require.NoError(t, b.Close())

	b2, err := Open(path, nil)
	require.NoError(t, err)
	defer b2.Close()
	got, err := b2.Load(types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClosedBackend(t *testing.T) {
	b := openTemp(t)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close(), "Close is idempotent")

	_, err := b.Load(1)
	assert.ErrorIs(t, err, types.ErrClosed)
	assert.ErrorIs(t, b.Save(nil), types.ErrClosed)
}

func TestStoreOnSQLite(t *testing.T) {
	b := openTemp(t)
	s := store.New(b, store.WithCapacity(2))
	require.NoError(t, s.Load())

	require.NoError(t, s.Add(types.Contact{Phone: "1", Label: "a"}))
	require.NoError(t, s.Add(types.Contact{Phone: "2", Label: "b"}))
	assert.ErrorIs(t, s.Add(types.Contact{Phone: "3", Label: "c"}), types.ErrListFull)
	require.NoError(t, s.Delete(1))

	got, err := b.Load(types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{{Phone: "2", Label: "b"}}, got)
}
