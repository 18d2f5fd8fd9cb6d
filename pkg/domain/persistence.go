package domain

// PersonView provides read-only access to stored persons. Queries and rules
// depend on this interface only.
type PersonView interface {
	FindByID(id string) (Person, bool)
	AllPersons() []Person
}

// PersonStore owns every Person and the parent/child links between them.
// It is populated during load and treated as read-only afterwards.
type PersonStore interface {
	PersonView
	// AddPerson stores a new person with empty parent slots. It returns
	// ErrDuplicateIdentifier and leaves the store unchanged if id exists.
	AddPerson(id string, height int) error
	// AddRelation links childID to each resolvable parent. Parents equal to
	// UnknownParent or missing from the store are skipped silently. It returns
	// ErrNotFound if the child does not exist.
	AddRelation(childID string, parents [2]string) error
}
