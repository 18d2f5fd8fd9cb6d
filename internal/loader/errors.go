package loader

import "fmt"

// Reasons a record is rejected. They double as metric label values.
const (
	ReasonFieldCount    = "field_count"
	ReasonEmptyName     = "empty_name"
	ReasonInvalidHeight = "invalid_height"
	ReasonDuplicate     = "duplicate"
)

// LoadError reports a malformed line (or table row). Nothing is loaded when
// one is returned.
type LoadError struct {
	Line   int
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error in datafile, line %d", e.Line)
}

// OpenError reports a data source that could not be opened or read.
type OpenError struct {
	Location string
	Err      error
}

func (e *OpenError) Error() string {
	return "Could not open file: " + e.Location
}

func (e *OpenError) Unwrap() error { return e.Err }
