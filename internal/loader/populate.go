package loader

import (
	"errors"
	"fmt"
	"io"

	"familytree/internal/core"
	"familytree/pkg/domain"
)

// Summary describes a completed population.
type Summary struct {
	Records    int
	Added      int
	Duplicates int
}

// Populate applies records to store in two passes: every person first, in
// record order, then the parent links. A duplicate prints the already added
// message and contributes no links. Populate stops only on store errors
// other than duplicates.
func Populate(w io.Writer, store domain.PersonStore, records []domain.Record) (Summary, error) {
	sum := Summary{Records: len(records)}
	added := make([]bool, len(records))
	for i, rec := range records {
		err := store.AddPerson(rec.Name, rec.Height)
		switch {
		case err == nil:
			added[i] = true
			sum.Added++
		case errors.Is(err, domain.ErrDuplicateIdentifier):
			sum.Duplicates++
			if _, werr := fmt.Fprintln(w, core.MsgAlreadyAdded); werr != nil {
				return sum, werr
			}
		default:
			return sum, fmt.Errorf("add %s (line %d): %w", rec.Name, rec.Line, err)
		}
	}
	for i, rec := range records {
		if !added[i] {
			continue
		}
		if err := store.AddRelation(rec.Name, rec.Parents); err != nil {
			return sum, fmt.Errorf("relate %s (line %d): %w", rec.Name, rec.Line, err)
		}
	}
	return sum, nil
}
