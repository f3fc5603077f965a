package store

import "strings"

// Store is the ordered, capacity-bounded list of entries. Insertion order is
// display order and addressing order; indices are not stable across deletes.
// Store performs no locking of its own — the owning device serializes access.
type Store struct {
	entries []Entry
}

// New constructs a Store from the given entries, truncated to MaxEntries.
func New(entries []Entry) *Store {
	s := &Store{}
	s.ReplaceAll(entries)
	return s
}

// Len reports the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. The bool is false when i is out of range.
func (s *Store) At(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns a copy of the list in display order.
func (s *Store) Entries() []Entry {
	dup := make([]Entry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Names returns the entry names in display order.
func (s *Store) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Add appends an entry and returns its index. Fails with ErrCapacity when the
// list is full. The value is clamped into the allowed band.
func (s *Store) Add(name string, value int) (int, error) {
	if len(s.entries) >= MaxEntries {
		return -1, ErrCapacity
	}
	s.entries = append(s.entries, Entry{Name: name, Value: ClampValue(value)})
	return len(s.entries) - 1, nil
}

// Update assigns a clamped value to the entry at index i.
func (s *Store) Update(i, value int) error {
	if i < 0 || i >= len(s.entries) {
		return ErrOutOfRange
	}
	s.entries[i].Value = ClampValue(value)
	return nil
}

// Delete removes the entry at index i, shifting later entries left by one,
// and returns the removed entry.
func (s *Store) Delete(i int) (Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, ErrOutOfRange
	}
	removed := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return removed, nil
}

// ReplaceAll discards the current list and installs the given entries.
// Entries with an empty name are dropped, values are clamped, and the batch
// is truncated to MaxEntries. The store is never left partially replaced:
// the incoming batch is filtered first and swapped in whole.
func (s *Store) ReplaceAll(entries []Entry) {
	next := make([]Entry, 0, MaxEntries)
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, Entry{Name: e.Name, Value: ClampValue(e.Value)})
	}
	s.entries = next
}
