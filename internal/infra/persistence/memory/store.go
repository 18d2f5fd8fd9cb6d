// Package memory provides the in-memory person store. Persons live in an
// arena slice addressed by index; parent slots and child lists hold
// identifiers that resolve back into the same arena.
package memory

import (
	"familytree/pkg/domain"
	"fmt"
	"sync"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.PersonStore = (*Store)(nil)

// Person aliases domain.Person for in-memory persistence operations.
type Person = domain.Person

// Store owns every Person. The arena preserves insertion order and index maps
// identifiers to arena positions. Nothing is ever removed, so indices are
// stable for the lifetime of the store.
type Store struct {
	mu    sync.RWMutex
	arena []Person
	index map[string]int
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

func clonePerson(p Person) Person {
	cp := p
	cp.Children = append([]string(nil), p.Children...)
	return cp
}

// AddPerson stores a new person with empty parent slots and no children.
func (s *Store) AddPerson(id string, height int) error {
	if id == "" {
		return fmt.Errorf("memory store: empty person id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[id]; exists {
		return domain.ErrDuplicateIdentifier
	}
	s.index[id] = len(s.arena)
	s.arena = append(s.arena, Person{ID: id, Height: height})
	return nil
}

// AddRelation links the child to each parent that resolves. A slot holding
// domain.UnknownParent, an empty id, or an id missing from the store is left
// untouched.
func (s *Store) AddRelation(childID string, parents [2]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	childIdx, ok := s.index[childID]
	if !ok {
		return domain.ErrNotFound{ID: childID}
	}
	for slot, parentID := range parents {
		if parentID == "" || parentID == domain.UnknownParent {
			continue
		}
		parentIdx, ok := s.index[parentID]
		if !ok {
			continue
		}
		s.arena[childIdx].Parents[slot] = parentID
		s.arena[parentIdx].Children = append(s.arena[parentIdx].Children, childID)
	}
	return nil
}

// FindByID returns a copy of the person with the given id.
func (s *Store) FindByID(id string) (Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[id]
	if !ok {
		return Person{}, false
	}
	return clonePerson(s.arena[idx]), true
}

// AllPersons returns copies of every person in insertion order.
func (s *Store) AllPersons() []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Person, len(s.arena))
	for i, p := range s.arena {
		out[i] = clonePerson(p)
	}
	return out
}

// Len returns the number of stored persons.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.arena)
}
