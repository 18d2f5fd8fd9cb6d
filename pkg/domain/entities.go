// Package domain defines the person records, identifier sets, and rule
// evaluation primitives used by familytree.
package domain

import "sort"

// UnknownParent is the data file placeholder for an absent parent.
const UnknownParent = "-"

// Parent slot positions. Slot order follows the data file (father, mother)
// but queries treat both slots alike.
const (
	SlotFather = 0
	SlotMother = 1
)

// Person is a single individual in the family graph. Parent and child
// references are identifiers resolved through the owning store.
type Person struct {
	ID       string    `json:"id"`
	Height   int       `json:"height"`
	Parents  [2]string `json:"parents"`
	Children []string  `json:"children"`
}

// HasParent reports whether the given slot references a person.
func (p Person) HasParent(slot int) bool {
	return slot >= 0 && slot < len(p.Parents) && p.Parents[slot] != ""
}

// ParentIDs returns the non-empty parent identifiers in slot order.
func (p Person) ParentIDs() []string {
	out := make([]string, 0, len(p.Parents))
	for _, id := range p.Parents {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Record is a raw person row produced by a loader before it is applied to a
// store. Line is the 1-based position of the row in its source.
type Record struct {
	Name    string
	Height  int
	Parents [2]string
	Line    int
}

// SortPersons orders persons ascending by identifier in place.
func SortPersons(persons []Person) {
	sort.Slice(persons, func(i, j int) bool { return persons[i].ID < persons[j].ID })
}

// EntityType identifies the type of record a violation refers to.
type EntityType string

// EntityPerson identifies a person record.
const EntityPerson EntityType = "person"

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities select the log level. Neither stops a load;
// queries stay finite on data with findings of either kind.
const (
	// SeverityBlock marks data some queries cannot answer sensibly. Logged
	// at error level.
	SeverityBlock Severity = "block"
	// SeverityWarn marks suspicious but answerable data. Logged as a warning.
	SeverityWarn Severity = "warn"
)

// Violation describes a rule finding about a single record.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking reports whether any violation has blocking severity.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}
