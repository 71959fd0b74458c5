package engine

import (
	"fmt"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// LoadWarning describes a definition the engine corrected while loading
type LoadWarning struct {
	Tree    string
	Message string
}

// LoadTrees replaces all state with the given definitions. Either every tree
// is accepted or the call fails with an INVALID_CONFIGURATION error and the
// previous state is kept.
func (e *Engine) LoadTrees(defs map[string]entities.TreeDefinition) ([]LoadWarning, error) {
	if len(defs) == 0 {
		return nil, errors.InvalidConfiguration("no tree definitions to load")
	}

	vb := errors.NewValidationBuilderWithCode(errors.CodeInvalidConfiguration)
	trees := make(map[string]*entities.Tree, len(defs))
	var warnings []LoadWarning

	for name, def := range defs {
		if name == "" {
			vb.Field("tree", "name is required")
			continue
		}

		tree := &entities.Tree{
			Name:            name,
			Title:           def.Title,
			Description:     def.Description,
			RowRequirements: def.RowRequirements.Clone(),
			Talents:         make(map[string]*entities.Talent, len(def.Talents)),
		}

		for i, td := range def.Talents {
			field := fmt.Sprintf("%s.talents[%d]", name, i)
			if td.ID != "" {
				field = fmt.Sprintf("%s.talents[%s]", name, td.ID)
			}
			if !validDefinition(field, td, vb) {
				continue
			}
			if _, dup := tree.Talents[td.ID]; dup {
				vb.Field(field, "duplicate talent id")
				continue
			}
			tree.Talents[td.ID] = &entities.Talent{
				ID:          td.ID,
				Name:        td.Name,
				Description: td.Description,
				ImageURL:    td.ImageURL,
				MaxPoints:   td.MaxPoints,
				Row:         td.Row,
				Points:      td.Points,
			}
			tree.PointsSpent += td.Points
		}

		if def.PointsSpent != nil && *def.PointsSpent != tree.PointsSpent {
			warnings = append(warnings, LoadWarning{
				Tree: name,
				Message: fmt.Sprintf("configured pointsSpent %d does not match talent points %d; using %d",
					*def.PointsSpent, tree.PointsSpent, tree.PointsSpent),
			})
		}

		trees[name] = tree
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	e.trees = trees
	return warnings, nil
}

func validDefinition(field string, td entities.TalentDefinition, vb *errors.ValidationBuilder) bool {
	ok := true
	if td.ID == "" {
		vb.Fieldf(field, "id is required")
		ok = false
	}
	if td.MaxPoints <= 0 {
		vb.Fieldf(field, "maxPoints must be positive, got %d", td.MaxPoints)
		ok = false
	}
	if td.Points < 0 {
		vb.Fieldf(field, "points must not be negative, got %d", td.Points)
		ok = false
	}
	if td.MaxPoints > 0 && td.Points > td.MaxPoints {
		vb.Fieldf(field, "points %d exceed maxPoints %d", td.Points, td.MaxPoints)
		ok = false
	}
	if td.Row < 0 {
		vb.Fieldf(field, "row must not be negative, got %d", td.Row)
		ok = false
	}
	return ok
}
