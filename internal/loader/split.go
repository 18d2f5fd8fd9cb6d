// Package loader turns data file lines or person table rows into records
// and populates a person store from them.
package loader

import "strings"

// Delimiter separates fields in a data file line.
const Delimiter = ';'

// Split breaks s on delim. A double quote toggles a quoted section in which
// delim does not split; the quote characters themselves are dropped. The
// result always has at least one element.
func Split(s string, delim rune) []string {
	out := []string{""}
	var cur strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			out[len(out)-1] = cur.String()
			cur.Reset()
			out = append(out, "")
		default:
			cur.WriteRune(r)
		}
	}
	out[len(out)-1] = cur.String()
	return out
}

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
