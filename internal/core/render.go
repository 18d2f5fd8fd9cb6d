package core

import (
	"errors"
	"familytree/pkg/domain"
	"fmt"
	"io"
	"strings"
)

// Fixed user-facing messages.
const (
	MsgAlreadyAdded = "Error. Person already added."
	MsgInvalidLevel = "Error. Level can't be less than 1."
)

// NotFoundMessage renders the error line for an unknown identifier.
func NotFoundMessage(id string) string {
	return "Error. " + id + " not found."
}

// GenerationLabel names a generation level relative to base ("children" or
// "parents"): level 1 is "grand"+base, each further level adds one "great-".
func GenerationLabel(base string, level int) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("great-", level-1) + "grand" + base
}

// WriteGroup renders an identifier set. The count is printed literally with
// no singular form.
func WriteGroup(w io.Writer, id, label string, set domain.IdentifierSet) error {
	if set.Len() == 0 {
		_, err := fmt.Fprintf(w, "%s has no %s.\n", id, label)
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d %s:\n", id, set.Len(), label)
	for _, member := range set.Sorted() {
		b.WriteString(member)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WritePersons renders one "<id>, <height>" line per person.
func WritePersons(w io.Writer, persons []domain.Person) error {
	var b strings.Builder
	for _, p := range persons {
		fmt.Fprintf(&b, "%s, %d\n", p.ID, p.Height)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteExtreme renders a tallest/shortest winner. When the winner is the
// target the sentence uses the own-lineage form.
func WriteExtreme(w io.Writer, superlative, targetID string, winner domain.Person) error {
	owner := "his/her"
	if winner.ID != targetID {
		owner = targetID + "'s"
	}
	_, err := fmt.Fprintf(w, "With the height of %d, %s is the %s person in %s lineage.\n",
		winner.Height, winner.ID, superlative, owner)
	return err
}

// WriteQueryError renders the per-query failure line for known query
// errors. Any other error is returned unchanged.
func WriteQueryError(w io.Writer, err error) error {
	var nf domain.ErrNotFound
	switch {
	case errors.As(err, &nf):
		_, werr := fmt.Fprintln(w, NotFoundMessage(nf.ID))
		return werr
	case errors.Is(err, domain.ErrInvalidLevel):
		_, werr := fmt.Fprintln(w, MsgInvalidLevel)
		return werr
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		_, werr := fmt.Fprintln(w, MsgAlreadyAdded)
		return werr
	}
	return err
}
