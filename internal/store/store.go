// Package store holds the ordered, capacity-bounded contact list for a
// session and keeps it in sync with a Persister.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store is the in-memory contact list. Insertion order is display order and
// persisted order. It is not safe for concurrent use; a single owner (the
// menu loop or one CLI command) drives it.
type Store struct {
	persister types.Persister
	capacity  int
	contacts  []types.Contact
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity sets the maximum number of contacts. Values below 1 are
// ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty store backed by p. Call Load to read persisted
// contacts.
func New(p types.Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		capacity:  types.DefaultMaxContacts,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the store contents with the persisted contacts, up to the
// store capacity. On error the store is left empty and the error wraps
// types.ErrLoad.
func (s *Store) Load() error {
	contacts, err := s.persister.Load(s.capacity)
	if err != nil {
		s.contacts = nil
		return fmt.Errorf("%w: %w", types.ErrLoad, err)
	}
	s.contacts = contacts
	s.logger.Debug("contacts loaded", "count", len(contacts), "capacity", s.capacity)
	return nil
}

// Add appends c after truncating its fields and clearing Blocked, then
// saves. It returns types.ErrListFull without changing anything when the
// store is at capacity. A save failure is returned wrapped in types.ErrSave;
// the contact stays in memory.
func (s *Store) Add(c types.Contact) error {
	if len(s.contacts) >= s.capacity {
		return fmt.Errorf("%w: capacity %d", types.ErrListFull, s.capacity)
	}
	c = c.Truncate()
	c.Blocked = false
	s.contacts = append(s.contacts, c)
	s.logger.Debug("contact added", "index", len(s.contacts), "label", c.Label)
	return s.Save()
}

// List returns a copy of the contacts in order.
func (s *Store) List() []types.Contact {
	return slices.Clone(s.contacts)
}

// Get returns the contact at the 1-based index.
func (s *Store) Get(index int) (types.Contact, error) {
	if err := s.checkIndex(index); err != nil {
		return types.Contact{}, err
	}
	return s.contacts[index-1], nil
}

// Delete removes the contact at the 1-based index, shifting later contacts
// down by one, then saves. An index outside [1, Len()] returns
// types.ErrInvalidIndex and changes nothing. A save failure is returned
// wrapped in types.ErrSave; the deletion stays in memory.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	removed := s.contacts[index-1]
	s.contacts = slices.Delete(s.contacts, index-1, index)
	s.logger.Debug("contact deleted", "index", index, "label", removed.Label)
	return s.Save()
}

// Save writes the full list through the persister.
func (s *Store) Save() error {
	if err := s.persister.Save(s.List()); err != nil {
		s.logger.Warn("save failed", "count", len(s.contacts), "error", err)
		return fmt.Errorf("%w: %w", types.ErrSave, err)
	}
	s.logger.Debug("contacts saved", "count", len(s.contacts))
	return nil
}

// Len returns the number of contacts.
func (s *Store) Len() int { return len(s.contacts) }

// Cap returns the maximum number of contacts.
func (s *Store) Cap() int { return s.capacity }

// Full reports whether Add would fail with types.ErrListFull.
func (s *Store) Full() bool { return len(s.contacts) >= s.capacity }

func (s *Store) checkIndex(index int) error {
	if index < 1 || index > len(s.contacts) {
		return fmt.Errorf("%w: %d (have %d)", types.ErrInvalidIndex, index, len(s.contacts))
	}
	return nil
}
