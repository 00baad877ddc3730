package types

import "errors"

// Persister is the storage backend a store loads from and saves to.
// Implementations keep the contact order exactly as given.
type Persister interface {
	// Load returns at most max contacts in persisted order. A backend that
	// has never been written returns an empty slice and no error.
	Load(max int) ([]Contact, error)

	// Save replaces the persisted contents with contacts.
	Save(contacts []Contact) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store operation errors.
var (
	ErrListFull     = errors.New("contact list is full")
	ErrInvalidIndex = errors.New("invalid contact number")
	ErrSave         = errors.New("error saving contacts")
	ErrLoad         = errors.New("error loading contacts")
	ErrClosed       = errors.New("persister is closed")
	ErrFieldEmpty   = errors.New("field must not be empty")
)
