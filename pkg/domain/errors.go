package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentifier is returned when adding a person whose id is already stored.
	ErrDuplicateIdentifier = errors.New("familytree: person already added")

	// ErrPersonNotFound is matched by every ErrNotFound value.
	ErrPersonNotFound = errors.New("familytree: person not found")

	// ErrInvalidLevel is returned for generation levels below 1.
	ErrInvalidLevel = errors.New("familytree: level can't be less than 1")
)

// ErrNotFound is returned when an identifier does not resolve to a person.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", EntityPerson, e.ID)
}

// Is lets errors.Is match ErrPersonNotFound.
func (e ErrNotFound) Is(target error) bool {
	return target == ErrPersonNotFound
}
