package core

import (
	"errors"
	"familytree/pkg/domain"
	"reflect"
	"testing"
)

func TestLineageSetQueries(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	cases := []struct {
		name  string
		query func(string) (domain.IdentifierSet, error)
		id    string
		want  []string
	}{
		{"children", lin.Children, "Grandpa", []string{"Aunt", "Dad", "Uncle"}},
		{"children none", lin.Children, "GreatKid", []string{}},
		{"parents", lin.Parents, "Kid", []string{"Dad", "Mom"}},
		{"parents single slot", lin.Parents, "Cousin2", []string{"Aunt"}},
		{"parents none", lin.Parents, "Mom", []string{}},
		{"siblings", lin.Siblings, "Kid", []string{"Kid2"}},
		{"siblings of three", lin.Siblings, "Uncle", []string{"Aunt", "Dad"}},
		{"siblings none", lin.Siblings, "Grandpa", []string{}},
		{"cousins", lin.Cousins, "Kid", []string{"Cousin1", "Cousin2"}},
		{"cousins other side", lin.Cousins, "Cousin1", []string{"Cousin2", "Kid", "Kid2"}},
		{"cousins none", lin.Cousins, "Dad", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := tc.query(tc.id)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if got := set.Sorted(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestLineageUnknownPerson(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	queries := map[string]func(string) (domain.IdentifierSet, error){
		"children": lin.Children,
		"parents":  lin.Parents,
		"siblings": lin.Siblings,
		"cousins":  lin.Cousins,
	}
	for name, q := range queries {
		if _, err := q("Nobody"); !errors.Is(err, domain.ErrPersonNotFound) {
			t.Fatalf("%s: expected not found, got %v", name, err)
		}
	}
	if _, err := lin.Tallest("Nobody"); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("tallest: expected not found, got %v", err)
	}
	if _, err := lin.GrandparentsAt("Nobody", 1); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("grandparents: expected not found, got %v", err)
	}
}

func TestSiblingsNeverContainSelf(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	for _, p := range family {
		set, err := lin.Siblings(p.id)
		if err != nil {
			t.Fatalf("siblings %s: %v", p.id, err)
		}
		if set.Contains(p.id) {
			t.Fatalf("%s listed as own sibling", p.id)
		}
	}
}

func TestLinkSymmetry(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	for _, p := range lin.All() {
		for _, childID := range p.Children {
			parents, err := lin.Parents(childID)
			if err != nil {
				t.Fatalf("parents %s: %v", childID, err)
			}
			if !parents.Contains(p.ID) {
				t.Fatalf("%s lists child %s which does not list it as parent", p.ID, childID)
			}
		}
		for _, parentID := range p.ParentIDs() {
			children, _ := lin.Children(parentID)
			if !children.Contains(p.ID) {
				t.Fatalf("%s lists parent %s which does not list it as child", p.ID, parentID)
			}
		}
	}
}

func TestLineageAllSorted(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	all := lin.All()
	if len(all) != len(family) {
		t.Fatalf("expected %d persons, got %d", len(family), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("not strictly ascending at %d: %s >= %s", i, all[i-1].ID, all[i].ID)
		}
	}
}

func TestTallestAndShortest(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	cases := []struct {
		name    string
		query   func(string) (domain.Person, error)
		id      string
		want    string
		wantHgt int
	}{
		{"tallest descendant", lin.Tallest, "Grandpa", "Uncle", 190},
		{"tallest self", lin.Tallest, "Kid", "Kid", 120},
		{"shortest descendant", lin.Shortest, "Grandpa", "GreatKid", 100},
		{"shortest leaf", lin.Shortest, "Cousin2", "Cousin2", 140},
		{"shortest child", lin.Shortest, "Aunt", "Cousin2", 140},
		{"shortest self", lin.Shortest, "Kid2", "Kid2", 130},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.query(tc.id)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if got.ID != tc.want || got.Height != tc.wantHgt {
				t.Fatalf("got %s (%d) want %s (%d)", got.ID, got.Height, tc.want, tc.wantHgt)
			}
		})
	}
}

func TestExtremeTiesGoToFirstVisited(t *testing.T) {
	store := buildStore(t, []fixturePerson{
		{"Root", 150, [2]string{"-", "-"}},
		{"First", 200, [2]string{"Root", "-"}},
		{"Second", 200, [2]string{"Root", "-"}},
		{"Deep", 100, [2]string{"First", "-"}},
		{"Low", 100, [2]string{"Second", "-"}},
	})
	lin := NewLineage(store)
	if got, _ := lin.Tallest("Root"); got.ID != "First" {
		t.Fatalf("tallest tie: got %s want First", got.ID)
	}
	if got, _ := lin.Shortest("Root"); got.ID != "Deep" {
		t.Fatalf("shortest tie: got %s want Deep", got.ID)
	}

	equal := buildStore(t, []fixturePerson{
		{"P", 150, [2]string{"-", "-"}},
		{"X", 150, [2]string{"P", "-"}},
	})
	if got, _ := NewLineage(equal).Tallest("P"); got.ID != "P" {
		t.Fatalf("self must win ties, got %s", got.ID)
	}
}

func TestGenerationQueries(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	cases := []struct {
		name  string
		query func(string, int) (domain.IdentifierSet, error)
		id    string
		level int
		want  []string
	}{
		{"grandchildren", lin.GrandchildrenAt, "Grandpa", 1, []string{"Cousin1", "Cousin2", "Kid", "Kid2"}},
		{"great-grandchildren", lin.GrandchildrenAt, "Grandpa", 2, []string{"GreatKid"}},
		{"great-great-grandchildren", lin.GrandchildrenAt, "Grandpa", 3, []string{}},
		{"grandchildren of parent", lin.GrandchildrenAt, "Dad", 1, []string{"GreatKid"}},
		{"grandchildren none", lin.GrandchildrenAt, "Kid", 1, []string{}},
		{"grandparents", lin.GrandparentsAt, "GreatKid", 1, []string{"Dad", "Mom"}},
		{"great-grandparents", lin.GrandparentsAt, "GreatKid", 2, []string{"Grandma", "Grandpa"}},
		{"grandparents one side", lin.GrandparentsAt, "Kid", 1, []string{"Grandma", "Grandpa"}},
		{"grandparents none", lin.GrandparentsAt, "Dad", 1, []string{}},
		{"great-great-grandparents none", lin.GrandparentsAt, "GreatKid", 3, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := tc.query(tc.id, tc.level)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if got := set.Sorted(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestGenerationQueriesRejectLevel(t *testing.T) {
	lin := NewLineage(buildStore(t, family))
	for _, level := range []int{0, -3} {
		if _, err := lin.GrandchildrenAt("Grandpa", level); !errors.Is(err, domain.ErrInvalidLevel) {
			t.Fatalf("grandchildren level %d: got %v", level, err)
		}
		if _, err := lin.GrandparentsAt("Kid", level); !errors.Is(err, domain.ErrInvalidLevel) {
			t.Fatalf("grandparents level %d: got %v", level, err)
		}
	}
	// The level is validated before the person lookup.
	if _, err := lin.GrandchildrenAt("Nobody", 0); !errors.Is(err, domain.ErrInvalidLevel) {
		t.Fatalf("expected invalid level before lookup, got %v", err)
	}
}

func TestQueriesTerminateOnCycles(t *testing.T) {
	store := buildStore(t, []fixturePerson{
		{"A", 150, [2]string{"B", "-"}},
		{"B", 170, [2]string{"A", "-"}},
	})
	lin := NewLineage(store)
	got, err := lin.Tallest("A")
	if err != nil || got.ID != "B" {
		t.Fatalf("tallest on cycle: %v %v", got.ID, err)
	}
	if got, _ := lin.Shortest("B"); got.ID != "A" {
		t.Fatalf("shortest on cycle: %s", got.ID)
	}
	set, err := lin.GrandparentsAt("A", 5)
	if err != nil || !reflect.DeepEqual(set.Sorted(), []string{"A"}) {
		t.Fatalf("grandparents on cycle: %v %v", set.Sorted(), err)
	}
	if set, _ := lin.GrandchildrenAt("A", 4); set.Len() != 1 {
		t.Fatalf("grandchildren on cycle: %v", set.Sorted())
	}
}
