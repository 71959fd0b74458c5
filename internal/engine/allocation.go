package engine

import (
	"sort"

	"github.com/KirkDiggler/talent-api/internal/entities"
)

// Result reports the outcome of an allocate or reclaim together with the
// state it was evaluated against
type Result struct {
	Outcome     entities.Outcome
	Talent      *entities.Talent
	PointsSpent int
	// Requirement is the row threshold that applied, set for allocations
	Requirement int
}

// Allocate spends one point on a talent. Capped and locked talents are
// reported through the outcome; only unknown trees or talents are errors.
func (e *Engine) Allocate(treeName, talentID string) (*Result, error) {
	tree, talent, err := e.talent(treeName, talentID)
	if err != nil {
		return nil, err
	}

	required := e.requirement(tree, talent.Row)
	result := &Result{Requirement: required}

	switch {
	case talent.Capped():
		result.Outcome = entities.OutcomeCapped
	case tree.PointsSpent < required:
		result.Outcome = entities.OutcomeLocked
	default:
		talent.Points++
		tree.PointsSpent++
		result.Outcome = entities.OutcomeAllocated
	}

	result.Talent = talent.Clone()
	result.PointsSpent = tree.PointsSpent
	return result, nil
}

// Reclaim refunds one point from a talent. Points held in rows that become
// locked as a result are left in place.
func (e *Engine) Reclaim(treeName, talentID string) (*Result, error) {
	tree, talent, err := e.talent(treeName, talentID)
	if err != nil {
		return nil, err
	}

	result := &Result{Outcome: entities.OutcomeEmpty}
	if talent.Points > 0 {
		talent.Points--
		tree.PointsSpent--
		result.Outcome = entities.OutcomeReclaimed
	}

	result.Talent = talent.Clone()
	result.PointsSpent = tree.PointsSpent
	result.Requirement = e.requirement(tree, talent.Row)
	return result, nil
}

// RowRequirement resolves the unlock threshold for a row of the named tree
func (e *Engine) RowRequirement(treeName string, row int) (int, error) {
	tree, err := e.tree(treeName)
	if err != nil {
		return 0, err
	}
	return e.requirement(tree, row), nil
}

// requirement looks up the tree override, then the shared table, then 0
func (e *Engine) requirement(tree *entities.Tree, row int) int {
	if required, ok := tree.RowRequirements[row]; ok {
		return required
	}
	if required, ok := e.defaults[row]; ok {
		return required
	}
	return 0
}

// RowStates reports, for each row holding at least one talent, whether the
// tree currently meets that row's requirement
func (e *Engine) RowStates(treeName string) ([]entities.RowState, error) {
	tree, err := e.tree(treeName)
	if err != nil {
		return nil, err
	}
	return e.rowStates(tree), nil
}

func (e *Engine) rowStates(tree *entities.Tree) []entities.RowState {
	seen := make(map[int]struct{})
	rows := make([]int, 0)
	for _, talent := range tree.Talents {
		if _, ok := seen[talent.Row]; ok {
			continue
		}
		seen[talent.Row] = struct{}{}
		rows = append(rows, talent.Row)
	}
	sort.Ints(rows)

	states := make([]entities.RowState, 0, len(rows))
	for _, row := range rows {
		required := e.requirement(tree, row)
		states = append(states, entities.RowState{
			Row:         row,
			Requirement: required,
			Met:         tree.PointsSpent >= required,
		})
	}
	return states
}
