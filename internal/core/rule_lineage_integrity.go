package core

import (
	"context"
	"familytree/pkg/domain"
	"fmt"
)

// LineageIntegrityRule reports parent links that make a family graph
// inconsistent: self-parenting, the same parent in both slots, and ancestry
// cycles. Findings are warnings; queries stay finite on such data.
func LineageIntegrityRule() domain.Rule {
	return lineageIntegrityRule{}
}

type lineageIntegrityRule struct{}

func (lineageIntegrityRule) Name() string { return "lineage_integrity" }

func (lineageIntegrityRule) Evaluate(ctx context.Context, view domain.PersonView) (domain.Result, error) {
	res := domain.Result{}
	persons := view.AllPersons()
	domain.SortPersons(persons)

	for _, child := range persons {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		father, mother := child.Parents[domain.SlotFather], child.Parents[domain.SlotMother]
		if father != "" && father == mother {
			res.Violations = append(res.Violations, lineageViolation(child.ID, domain.SeverityWarn,
				fmt.Sprintf("person %s lists parent %s in both slots", child.ID, father)))
		}
		selfParent := false
		for _, parentID := range child.ParentIDs() {
			if parentID == child.ID {
				selfParent = true
				res.Violations = append(res.Violations, lineageViolation(child.ID, domain.SeverityBlock,
					fmt.Sprintf("person %s references itself as a parent", child.ID)))
				break
			}
		}
		if !selfParent && isOwnAncestor(view, child) {
			res.Violations = append(res.Violations, lineageViolation(child.ID, domain.SeverityBlock,
				fmt.Sprintf("person %s is its own ancestor", child.ID)))
		}
	}
	return res, nil
}

func lineageViolation(entityID string, severity domain.Severity, message string) domain.Violation {
	return domain.Violation{
		Rule:     "lineage_integrity",
		Severity: severity,
		Message:  message,
		Entity:   domain.EntityPerson,
		EntityID: entityID,
	}
}

func isOwnAncestor(view domain.PersonView, start domain.Person) bool {
	visited := make(map[string]struct{})
	stack := start.ParentIDs()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == start.ID {
			return true
		}
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		if p, ok := view.FindByID(id); ok {
			stack = append(stack, p.ParentIDs()...)
		}
	}
	return false
}
