package engine

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// AddTalent appends a talent to an existing tree. Any initial points count
// toward the tree's spent points.
func (e *Engine) AddTalent(treeName string, talent entities.Talent) (*entities.Talent, error) {
	tree, err := e.tree(treeName)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	if talent.ID == "" {
		vb.RequiredField("id")
	}
	if talent.MaxPoints <= 0 {
		vb.Fieldf("maxPoints", "must be positive, got %d", talent.MaxPoints)
	}
	if talent.Points < 0 || talent.Points > talent.MaxPoints {
		vb.Fieldf("points", "must be between 0 and %d, got %d", talent.MaxPoints, talent.Points)
	}
	if talent.Row < 0 {
		vb.Fieldf("row", "must not be negative, got %d", talent.Row)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, exists := tree.Talents[talent.ID]; exists {
		return nil, errors.AlreadyExistsf("talent %q already exists in tree %q", talent.ID, treeName).
			WithMeta("tree", treeName).
			WithMeta("talent_id", talent.ID)
	}

	stored := talent
	tree.Talents[talent.ID] = &stored
	tree.PointsSpent += talent.Points
	return stored.Clone(), nil
}

// RemoveTalent deletes a talent and refunds the points it held
func (e *Engine) RemoveTalent(treeName, talentID string) (*entities.Talent, error) {
	tree, talent, err := e.talent(treeName, talentID)
	if err != nil {
		return nil, err
	}

	delete(tree.Talents, talentID)
	tree.PointsSpent -= talent.Points
	return talent, nil
}

// SetTalentProperty edits a non-points field from administrative input.
// Moving a talent to another row does not re-check the points it already holds.
func (e *Engine) SetTalentProperty(treeName, talentID string, field entities.TalentField, value string) (*entities.Talent, error) {
	_, talent, err := e.talent(treeName, talentID)
	if err != nil {
		return nil, err
	}

	switch field {
	case entities.TalentFieldName:
		talent.Name = value
	case entities.TalentFieldDescription:
		talent.Description = value
	case entities.TalentFieldImageURL:
		talent.ImageURL = value
	case entities.TalentFieldMaxPoints:
		maxPoints, err := parseInt(field, value)
		if err != nil {
			return nil, err
		}
		if maxPoints <= 0 {
			return nil, errors.InvalidArgumentf("maxPoints must be positive, got %d", maxPoints)
		}
		if maxPoints < talent.Points {
			return nil, errors.InvalidArgumentf("maxPoints %d is below the %d points already held", maxPoints, talent.Points).
				WithMeta("talent_id", talentID)
		}
		talent.MaxPoints = maxPoints
	case entities.TalentFieldRow:
		row, err := parseInt(field, value)
		if err != nil {
			return nil, err
		}
		if row < 0 {
			return nil, errors.InvalidArgumentf("row must not be negative, got %d", row)
		}
		talent.Row = row
	case "points":
		return nil, errors.InvalidArgument("points can only change through allocate and reclaim")
	default:
		return nil, errors.InvalidArgumentf("unknown talent field %q", field)
	}

	return talent.Clone(), nil
}

func parseInt(field entities.TalentField, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", field, value)
	}
	return n, nil
}
