package domain

import "sort"

// IdentifierSet is a deduplicated set of person identifiers. Iteration via
// Sorted is always ascending so rendered output is reproducible.
type IdentifierSet map[string]struct{}

// NewIdentifierSet returns a set holding the given identifiers.
func NewIdentifierSet(ids ...string) IdentifierSet {
	s := make(IdentifierSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. Empty identifiers are ignored since they denote empty slots.
func (s IdentifierSet) Add(id string) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

// Contains reports membership.
func (s IdentifierSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Merge adds every member of other.
func (s IdentifierSet) Merge(other IdentifierSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Len returns the number of members.
func (s IdentifierSet) Len() int { return len(s) }

// Sorted returns the members in ascending lexicographic order.
func (s IdentifierSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
