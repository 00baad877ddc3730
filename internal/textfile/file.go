package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// File persists contacts to a single text file. It holds no open handle
// between calls: each Load and Save opens, uses, and closes the file.
type File struct {
	path string
}

var _ types.Persister = (*File)(nil)

// New returns a File persister for path. The file is not touched until the
// first Load or Save.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Load reads at most max contacts. A missing file yields no contacts and no
// error.
func (f *File) Load(max int) ([]types.Contact, error) {
	fh, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer fh.Close()

	contacts, err := Decode(fh, max)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return contacts, nil
}

// Save replaces the file contents with contacts using the temp-file, fsync,
// rename pattern, so a failed write leaves the previous file in place.
func (f *File) Save(contacts []types.Contact) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := Encode(w, contacts); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op; File holds no resources between calls.
func (f *File) Close() error { return nil }
