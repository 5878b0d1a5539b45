package schedule

import (
	"fmt"
	"sync"

	"github.com/tsawler/timegrid/model"
)

// Store is the persistence collaborator boundary. The sections produced
// from one document must commit as a single atomic write: all rooms and
// entries for an upload become visible together, or not at all, since a
// partially committed upload would be indistinguishable from a legitimate
// empty one.
type Store interface {
	// SaveDocument replaces the stored sections for the named document.
	SaveDocument(name string, sections []model.Section) error

	// Sections returns the stored sections for the named document.
	Sections(name string) ([]model.Section, bool)

	// FreeRooms answers the free-room query across every stored document:
	// rooms with no entry in any slot overlapping [from, to) on the day.
	FreeRooms(day, from, to string) ([]string, error)
}

// MemoryStore is an in-memory Store. It is safe for concurrent use; each
// SaveDocument swaps the document's section list in one step under the
// lock, so readers never observe a half-written upload.
type MemoryStore struct {
	mu        sync.RWMutex
	documents map[string][]model.Section
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents: make(map[string][]model.Section),
	}
}

// SaveDocument stores a document's sections atomically. Sections violating
// the emission invariant are rejected before anything is written.
func (s *MemoryStore) SaveDocument(name string, sections []model.Section) error {
	for i := range sections {
		if !sections[i].Valid() {
			return fmt.Errorf("document %q: section %d has no section identifier or no entries", name, i)
		}
	}

	stored := make([]model.Section, len(sections))
	copy(stored, sections)

	s.mu.Lock()
	s.documents[name] = stored
	s.mu.Unlock()

	return nil
}

// Sections returns the stored sections for a document.
func (s *MemoryStore) Sections(name string) ([]model.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sections, ok := s.documents[name]
	if !ok {
		return nil, false
	}
	out := make([]model.Section, len(sections))
	copy(out, sections)
	return out, true
}

// FreeRooms answers the free-room query over all stored documents.
func (s *MemoryStore) FreeRooms(day, from, to string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rooms []model.Room
	var entries []model.ScheduleEntry
	for _, sections := range s.documents {
		for _, section := range sections {
			rooms = append(rooms, section.Rooms...)
			entries = append(entries, section.Entries...)
		}
	}

	return FreeRooms(rooms, entries, day, from, to)
}
