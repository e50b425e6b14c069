package vault

import "errors"

// Version is the database format tag written with every save.
// Not consulted for migration yet; reserved for it.
const Version = "1.0"

// ErrNotFound is returned when no entry matches the requested service.
var ErrNotFound = errors.New("credential not found")

// ErrDuplicateService is returned by Add when the service already has an
// entry. Use Upsert to replace.
var ErrDuplicateService = errors.New("service already exists")

// Store is the in-memory credential collection. Entries keep insertion
// order; service names are unique (Add enforces it, Upsert replaces).
// A Store lives for one CLI invocation: load, mutate, save, exit.
type Store struct {
	entries []Entry
	version string
}

// New returns an empty store with the current format version.
func New() *Store {
	return &Store{version: Version}
}

// FromEntries builds a store around already-decoded entries.
// Used by the storage layer when loading; no uniqueness check is applied,
// a hand-edited database keeps whatever it contains.
func FromEntries(entries []Entry, version string) *Store {
	return &Store{entries: entries, version: version}
}

// Add appends the entry, rejecting a duplicate service name.
func (s *Store) Add(entry Entry) error {
	if s.Find(entry.Service) != nil {
		return ErrDuplicateService
	}
	s.entries = append(s.entries, entry)
	return nil
}

// Upsert replaces the entry for the service in place, keeping its position
// in the listing order, or appends when the service is new.
func (s *Store) Upsert(entry Entry) {
	for i := range s.entries {
		if s.entries[i].Service == entry.Service {
			s.entries[i] = entry
			return
		}
	}
	s.entries = append(s.entries, entry)
}

// Find returns a copy of the first entry for the service, or nil.
func (s *Store) Find(service string) *Entry {
	for i := range s.entries {
		if s.entries[i].Service == service {
			e := s.entries[i]
			return &e
		}
	}
	return nil
}

// Update applies fn to the stored entry for the service.
// The mutator works on the entry in place; changes are visible to
// subsequent Find calls. Returns ErrNotFound if the service is absent.
func (s *Store) Update(service string, fn func(*Entry)) error {
	for i := range s.entries {
		if s.entries[i].Service == service {
			fn(&s.entries[i])
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes every entry for the service and reports whether any
// existed. Duplicates can only appear in a hand-edited database, but if
// they do, none survive.
func (s *Store) Remove(service string) bool {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Service != service {
			kept = append(kept, e)
		}
	}
	removed := len(kept) < len(s.entries)
	s.entries = kept
	return removed
}

// Services returns service names in insertion order.
func (s *Store) Services() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Service
	}
	return names
}

// Entries returns the entries in insertion order. The slice is a copy;
// mutate through Update.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len is the entry count.
func (s *Store) Len() int {
	return len(s.entries)
}

// FormatVersion returns the version tag the store was loaded with.
func (s *Store) FormatVersion() string {
	return s.version
}
