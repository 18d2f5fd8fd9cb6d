package persistence

import "testing"

func TestValidateTable(t *testing.T) {
	for _, ok := range []string{"persons", "family.persons", "_p2"} {
		if err := ValidateTable(ok); err != nil {
			t.Fatalf("%s: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "2p", "persons;drop", "a.b.c", "p-q", "\"p\""} {
		if err := ValidateTable(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
