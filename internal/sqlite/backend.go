// Package sqlite stores contacts in a SQLite database. It is an alternative
// to the text file for users who select backend "sqlite" in config.yaml.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Backend implements types.Persister on a SQLite database file.
type Backend struct {
	mu     sync.Mutex
	path   string
	db     *sql.DB
	logger *slog.Logger
}

var _ types.Persister = (*Backend)(nil)

// Open creates the parent directory and database if needed and applies the
// schema. The caller must Close the backend.
func Open(path string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A single connection keeps every statement on the same database
	// handle, including in-memory databases.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	logger.Debug("sqlite backend opened", "path", path)
	return &Backend{path: path, db: db, logger: logger}, nil
}

// Path returns the database file location.
func (b *Backend) Path() string { return b.path }

// Load returns at most max contacts ordered by position.
func (b *Backend) Load(max int) ([]types.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil, types.ErrClosed
	}
	if max <= 0 {
		return nil, nil
	}

	rows, err := b.db.Query(
		"SELECT phone, label, company, email, blocked FROM contacts ORDER BY position LIMIT ?", max)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []types.Contact
	for rows.Next() {
		var c types.Contact
		var blocked int
		if err := rows.Scan(&c.Phone, &c.Label, &c.Company, &c.Email, &blocked); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		c.Blocked = blocked != 0
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

// Save replaces all rows with contacts in a single transaction.
func (b *Backend) Save(contacts []types.Contact) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return types.ErrClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO contacts
    (contact_id, position, phone, label, company, email, blocked, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, c := range contacts {
		blocked := 0
		if c.Blocked {
			blocked = 1
		}
		if _, err := stmt.Exec(newUUID(), i+1, c.Phone, c.Label, c.Company, c.Email, blocked, now); err != nil {
			return fmt.Errorf("inserting contact %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	b.logger.Debug("sqlite contacts saved", "count", len(contacts))
	return nil
}

// Close releases the database handle. Close is idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// newUUID generates a new UUID v7 for row IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
