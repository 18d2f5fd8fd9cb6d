package core

import (
	"familytree/internal/infra/persistence/memory"
	"testing"
)

type fixturePerson struct {
	id      string
	height  int
	parents [2]string
}

// family is a three generation fixture:
//
//	Grandpa + Grandma -> Dad, Uncle, Aunt
//	Dad + Mom -> Kid, Kid2
//	Uncle -> Cousin1, Aunt -> Cousin2
//	Kid -> GreatKid
var family = []fixturePerson{
	{"Grandpa", 175, [2]string{"-", "-"}},
	{"Grandma", 160, [2]string{"-", "-"}},
	{"Dad", 180, [2]string{"Grandpa", "Grandma"}},
	{"Uncle", 190, [2]string{"Grandpa", "Grandma"}},
	{"Aunt", 150, [2]string{"Grandpa", "Grandma"}},
	{"Mom", 165, [2]string{"-", "-"}},
	{"Kid", 120, [2]string{"Dad", "Mom"}},
	{"Kid2", 130, [2]string{"Dad", "Mom"}},
	{"Cousin1", 110, [2]string{"Uncle", "-"}},
	{"Cousin2", 140, [2]string{"-", "Aunt"}},
	{"GreatKid", 100, [2]string{"Kid", "-"}},
}

func buildStore(t *testing.T, people []fixturePerson) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	for _, p := range people {
		if err := store.AddPerson(p.id, p.height); err != nil {
			t.Fatalf("add %s: %v", p.id, err)
		}
	}
	for _, p := range people {
		if err := store.AddRelation(p.id, p.parents); err != nil {
			t.Fatalf("relate %s: %v", p.id, err)
		}
	}
	return store
}

// chain is a single line of five generations, A the oldest.
var chain = []fixturePerson{
	{"A", 190, [2]string{"-", "-"}},
	{"B", 180, [2]string{"A", "-"}},
	{"C", 170, [2]string{"-", "B"}},
	{"D", 160, [2]string{"C", "-"}},
	{"E", 150, [2]string{"D", "-"}},
}
