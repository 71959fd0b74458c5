// Package rpgtoolkit adapts talent trees to rpg-toolkit entities and events
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/talent-api/internal/entities"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeTree   = "talent_tree"
	EntityTypeTalent = "talent"
)

// TreeEntity wraps entities.Tree to implement core.Entity
type TreeEntity struct {
	*entities.Tree
}

// GetID returns the tree name
func (t *TreeEntity) GetID() string {
	return t.Name
}

// GetType returns the entity type for rpg-toolkit
func (t *TreeEntity) GetType() string {
	return EntityTypeTree
}

// TalentEntity wraps entities.Talent to implement core.Entity. Talent IDs
// are only unique within a tree so the tree name is part of the ID.
type TalentEntity struct {
	*entities.Talent
	TreeName string
}

// GetID returns "<tree>/<talent>"
func (t *TalentEntity) GetID() string {
	return t.TreeName + "/" + t.ID
}

// GetType returns the entity type for rpg-toolkit
func (t *TalentEntity) GetType() string {
	return EntityTypeTalent
}

// WrapTree converts a tree to a TreeEntity
func WrapTree(tree *entities.Tree) *TreeEntity {
	return &TreeEntity{Tree: tree}
}

// WrapTalent converts a talent of the named tree to a TalentEntity
func WrapTalent(treeName string, talent *entities.Talent) *TalentEntity {
	return &TalentEntity{Talent: talent, TreeName: treeName}
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*TreeEntity)(nil)
	_ core.Entity = (*TalentEntity)(nil)
)
