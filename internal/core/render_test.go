package core

import (
	"bytes"
	"errors"
	"familytree/pkg/domain"
	"testing"
)

func TestGenerationLabel(t *testing.T) {
	cases := []struct {
		base  string
		level int
		want  string
	}{
		{"children", 1, "grandchildren"},
		{"children", 2, "great-grandchildren"},
		{"children", 4, "great-great-great-grandchildren"},
		{"parents", 1, "grandparents"},
		{"parents", 3, "great-great-grandparents"},
		{"parents", 0, "grandparents"},
	}
	for _, tc := range cases {
		if got := GenerationLabel(tc.base, tc.level); got != tc.want {
			t.Fatalf("GenerationLabel(%q,%d)=%q want %q", tc.base, tc.level, got, tc.want)
		}
	}
}

func TestWriteGroup(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGroup(&buf, "A", "children", domain.NewIdentifierSet("C")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "A has 1 children:\nC\n" {
		t.Fatalf("unexpected output %q", got)
	}
	buf.Reset()
	if err := WriteGroup(&buf, "X", "great-grandchildren", domain.NewIdentifierSet()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "X has no great-grandchildren.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteExtreme(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteExtreme(&buf, "tallest", "A", domain.Person{ID: "C", Height: 180})
	_ = WriteExtreme(&buf, "shortest", "A", domain.Person{ID: "A", Height: 170})
	want := "With the height of 180, C is the tallest person in A's lineage.\n" +
		"With the height of 170, A is the shortest person in his/her lineage.\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestWriteQueryError(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteQueryError(&buf, domain.ErrNotFound{ID: "Zed"})
	_ = WriteQueryError(&buf, domain.ErrInvalidLevel)
	_ = WriteQueryError(&buf, domain.ErrDuplicateIdentifier)
	want := "Error. Zed not found.\nError. Level can't be less than 1.\nError. Person already added.\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	other := errors.New("boom")
	if err := WriteQueryError(&buf, other); !errors.Is(err, other) {
		t.Fatalf("unexpected errors must pass through, got %v", err)
	}
}

func TestWritePersons(t *testing.T) {
	var buf bytes.Buffer
	_ = WritePersons(&buf, []domain.Person{{ID: "A", Height: 170}, {ID: "B", Height: 0}})
	if buf.String() != "A, 170\nB, 0\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
