package types

import "errors"

// Config holds backend selection and store parameters.
type Config struct {
	Backend     string `json:"backend" yaml:"backend"`
	File        string `json:"file" yaml:"file"`
	MaxContacts int    `json:"max_contacts" yaml:"max_contacts"`
}

// Supported backend names.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Defaults applied when the config leaves a value unset.
const (
	DefaultMaxContacts = 100
	DefaultTextFile    = "contacts.txt"
	DefaultSQLiteFile  = "contacts.db"
)

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrMaxContactsInvalid = errors.New("max contacts must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendText:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.MaxContacts <= 0 {
		return ErrMaxContactsInvalid
	}
	return nil
}

// DefaultFile returns the file name used by a backend when none is configured.
func DefaultFile(backend string) string {
	if backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultTextFile
}
