// Package builders provides test data builders for creating test fixtures
package builders

import (
	"strings"

	"github.com/KirkDiggler/talent-api/internal/entities"
)

// TreeDefinitionBuilder provides a fluent interface for building tree definitions
type TreeDefinitionBuilder struct {
	def entities.TreeDefinition
}

// NewTreeDefinitionBuilder creates a builder with the given title
func NewTreeDefinitionBuilder(title string) *TreeDefinitionBuilder {
	return &TreeDefinitionBuilder{
		def: entities.TreeDefinition{
			Title:       title,
			Description: title + " talents",
		},
	}
}

// WithTalent appends an unallocated talent
func (b *TreeDefinitionBuilder) WithTalent(id string, maxPoints, row int) *TreeDefinitionBuilder {
	return b.WithAllocatedTalent(id, maxPoints, row, 0)
}

// WithAllocatedTalent appends a talent already holding points
func (b *TreeDefinitionBuilder) WithAllocatedTalent(id string, maxPoints, row, points int) *TreeDefinitionBuilder {
	b.def.Talents = append(b.def.Talents, entities.TalentDefinition{
		ID:        id,
		Name:      strings.ToUpper(id[:1]) + id[1:],
		MaxPoints: maxPoints,
		Row:       row,
		Points:    points,
	})
	return b
}

// WithRowRequirement sets a per-tree override for one row
func (b *TreeDefinitionBuilder) WithRowRequirement(row, required int) *TreeDefinitionBuilder {
	if b.def.RowRequirements == nil {
		b.def.RowRequirements = make(entities.RowRequirements)
	}
	b.def.RowRequirements[row] = required
	return b
}

// WithPointsSpent sets the configured spent points
func (b *TreeDefinitionBuilder) WithPointsSpent(points int) *TreeDefinitionBuilder {
	b.def.PointsSpent = &points
	return b
}

// Build returns the definition
func (b *TreeDefinitionBuilder) Build() entities.TreeDefinition {
	return b.def
}
