package core

import (
	"familytree/pkg/domain"
)

// Lineage answers read-only ancestry and descendant queries over a person
// view. Every query resolves its target first and returns domain.ErrNotFound
// when the identifier is unknown.
type Lineage struct {
	people domain.PersonView
}

// NewLineage constructs a query set over the supplied view.
func NewLineage(view domain.PersonView) *Lineage {
	return &Lineage{people: view}
}

func (l *Lineage) lookup(id string) (domain.Person, error) {
	p, ok := l.people.FindByID(id)
	if !ok {
		return domain.Person{}, domain.ErrNotFound{ID: id}
	}
	return p, nil
}

// All returns every stored person sorted ascending by identifier.
func (l *Lineage) All() []domain.Person {
	persons := l.people.AllPersons()
	domain.SortPersons(persons)
	return persons
}

// Children returns the identifiers of the target's children.
func (l *Lineage) Children(id string) (domain.IdentifierSet, error) {
	p, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	return domain.NewIdentifierSet(p.Children...), nil
}

// Parents returns the identifiers held in the target's non-empty parent slots.
func (l *Lineage) Parents(id string) (domain.IdentifierSet, error) {
	p, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	return domain.NewIdentifierSet(p.ParentIDs()...), nil
}

// Siblings returns every child of either parent except the target itself.
func (l *Lineage) Siblings(id string) (domain.IdentifierSet, error) {
	p, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	siblings := domain.NewIdentifierSet()
	for _, parentID := range p.ParentIDs() {
		parent, ok := l.people.FindByID(parentID)
		if !ok {
			continue
		}
		for _, childID := range parent.Children {
			if childID != p.ID {
				siblings.Add(childID)
			}
		}
	}
	return siblings, nil
}

// Cousins returns the children of every uncle and aunt: the grandparents'
// children other than the parent the path went through. Only first cousins
// are found.
func (l *Lineage) Cousins(id string) (domain.IdentifierSet, error) {
	p, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	cousins := domain.NewIdentifierSet()
	for _, parentID := range p.ParentIDs() {
		parent, ok := l.people.FindByID(parentID)
		if !ok {
			continue
		}
		for _, grandparentID := range parent.ParentIDs() {
			grandparent, ok := l.people.FindByID(grandparentID)
			if !ok {
				continue
			}
			for _, uncleID := range grandparent.Children {
				if uncleID == parent.ID {
					continue
				}
				uncle, ok := l.people.FindByID(uncleID)
				if !ok {
					continue
				}
				for _, cousinID := range uncle.Children {
					cousins.Add(cousinID)
				}
			}
		}
	}
	return cousins, nil
}

// Tallest returns the tallest person among the target and all descendants.
func (l *Lineage) Tallest(id string) (domain.Person, error) {
	return l.extremeInLineage(id, func(candidate, best int) bool { return candidate > best })
}

// Shortest returns the shortest person among the target and all descendants.
func (l *Lineage) Shortest(id string) (domain.Person, error) {
	return l.extremeInLineage(id, func(candidate, best int) bool { return candidate < best })
}

// extremeInLineage walks the lineage depth first, children in stored order,
// finishing each subtree before comparing it against the best so far. Only a
// strictly better height replaces the current winner, so ties go to the
// person visited first. Each person is visited once, which keeps the walk
// finite on cyclic data.
func (l *Lineage) extremeInLineage(id string, better func(candidate, best int) bool) (domain.Person, error) {
	root, err := l.lookup(id)
	if err != nil {
		return domain.Person{}, err
	}
	visited := make(map[string]struct{})
	var walk func(p domain.Person) domain.Person
	walk = func(p domain.Person) domain.Person {
		visited[p.ID] = struct{}{}
		best := p
		for _, childID := range p.Children {
			if _, seen := visited[childID]; seen {
				continue
			}
			child, ok := l.people.FindByID(childID)
			if !ok {
				continue
			}
			if candidate := walk(child); better(candidate.Height, best.Height) {
				best = candidate
			}
		}
		return best
	}
	return walk(root), nil
}

// GrandchildrenAt returns the descendants exactly level+1 child hops below
// the target: level 1 is grandchildren, level 2 great-grandchildren.
func (l *Lineage) GrandchildrenAt(id string, level int) (domain.IdentifierSet, error) {
	if level < 1 {
		return nil, domain.ErrInvalidLevel
	}
	root, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	frontier := []string{root.ID}
	for hop := 0; hop <= level && len(frontier) > 0; hop++ {
		next := domain.NewIdentifierSet()
		for _, personID := range frontier {
			p, ok := l.people.FindByID(personID)
			if !ok {
				continue
			}
			for _, childID := range p.Children {
				next.Add(childID)
			}
		}
		frontier = next.Sorted()
	}
	return domain.NewIdentifierSet(frontier...), nil
}

// GrandparentsAt returns the ancestors exactly level+1 parent hops above the
// target, found breadth first: nodes reached at depth level contribute their
// parents to the result.
func (l *Lineage) GrandparentsAt(id string, level int) (domain.IdentifierSet, error) {
	if level < 1 {
		return nil, domain.ErrInvalidLevel
	}
	root, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	type step struct {
		id    string
		depth int
	}
	result := domain.NewIdentifierSet()
	queue := []step{{root.ID, 0}}
	seen := map[step]struct{}{queue[0]: {}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		p, ok := l.people.FindByID(current.id)
		if !ok {
			continue
		}
		parents := p.ParentIDs()
		if current.depth == level {
			for _, parentID := range parents {
				result.Add(parentID)
			}
			continue
		}
		for _, parentID := range parents {
			next := step{parentID, current.depth + 1}
			if _, dup := seen[next]; dup {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return result, nil
}
