// Package engine holds talent tree allocation state and enforces the
// spend/reclaim rules. It is plain in-memory state with no locking; callers
// that share an Engine across goroutines must serialize access.
package engine

import (
	"sort"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// DefaultRowRequirements is the shared unlock table used when a server is not
// configured with its own
func DefaultRowRequirements() entities.RowRequirements {
	return entities.RowRequirements{1: 0, 2: 5, 3: 10, 4: 15}
}

// Engine owns the progression state for every loaded tree
type Engine struct {
	defaults entities.RowRequirements
	trees    map[string]*entities.Tree
}

// New creates an empty engine using defaults as the shared row table
func New(defaults entities.RowRequirements) *Engine {
	return &Engine{
		defaults: defaults.Clone(),
		trees:    make(map[string]*entities.Tree),
	}
}

// GetTree returns a copy of the named tree
func (e *Engine) GetTree(name string) (*entities.Tree, error) {
	tree, err := e.tree(name)
	if err != nil {
		return nil, err
	}
	return tree.Clone(), nil
}

// GetTalent returns a copy of a talent
func (e *Engine) GetTalent(treeName, talentID string) (*entities.Talent, error) {
	_, talent, err := e.talent(treeName, talentID)
	if err != nil {
		return nil, err
	}
	return talent.Clone(), nil
}

// ListTrees returns copies of every tree ordered by name
func (e *Engine) ListTrees() []*entities.Tree {
	out := make([]*entities.Tree, 0, len(e.trees))
	for _, name := range e.treeNames() {
		out = append(out, e.trees[name].Clone())
	}
	return out
}

// TreeCount returns the number of loaded trees
func (e *Engine) TreeCount() int {
	return len(e.trees)
}

func (e *Engine) treeNames() []string {
	names := make([]string, 0, len(e.trees))
	for name := range e.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) tree(name string) (*entities.Tree, error) {
	tree, ok := e.trees[name]
	if !ok {
		return nil, errors.NotFoundf("tree %q not found", name).WithMeta("tree", name)
	}
	return tree, nil
}

func (e *Engine) talent(treeName, talentID string) (*entities.Tree, *entities.Talent, error) {
	tree, err := e.tree(treeName)
	if err != nil {
		return nil, nil, err
	}
	talent, ok := tree.Talents[talentID]
	if !ok {
		return nil, nil, errors.NotFoundf("talent %q not found in tree %q", talentID, treeName).
			WithMeta("tree", treeName).
			WithMeta("talent_id", talentID)
	}
	return tree, talent, nil
}

// SortedTalents returns the tree's talents ordered by row, then ID
func SortedTalents(tree *entities.Tree) []*entities.Talent {
	out := make([]*entities.Talent, 0, len(tree.Talents))
	for _, talent := range tree.Talents {
		out = append(out, talent)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].ID < out[j].ID
	})
	return out
}
