package v1alpha1

import (
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Field names used in request and response structs
const (
	FieldTree        = "tree"
	FieldTalentID    = "talentId"
	FieldTalent      = "talent"
	FieldField       = "field"
	FieldValue       = "value"
	FieldTrees       = "trees"
	FieldRows        = "rows"
	FieldProgression = "progression"
)

func talentToMap(t *entities.Talent) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"imageUrl":    t.ImageURL,
		"maxPoints":   t.MaxPoints,
		"row":         t.Row,
		"points":      t.Points,
	}
}

func treeToMap(t *entities.Tree) map[string]any {
	talents := make([]any, 0, len(t.Talents))
	for _, talent := range engine.SortedTalents(t) {
		talents = append(talents, talentToMap(talent))
	}

	requirements := make(map[string]any, len(t.RowRequirements))
	for row, required := range t.RowRequirements {
		requirements[strconv.Itoa(row)] = required
	}

	return map[string]any{
		"name":            t.Name,
		"title":           t.Title,
		"description":     t.Description,
		"pointsSpent":     t.PointsSpent,
		"rowRequirements": requirements,
		"talents":         talents,
	}
}

func treesToList(trees []*entities.Tree) []any {
	out := make([]any, 0, len(trees))
	for _, tree := range trees {
		out = append(out, treeToMap(tree))
	}
	return out
}

func rowsToList(rows []entities.RowState) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]any{
			"row":         row.Row,
			"requirement": row.Requirement,
			"met":         row.Met,
		})
	}
	return out
}

// Experience is int64 and structpb numbers are doubles, so it travels as a
// decimal string the way protojson encodes int64.
func progressionToMap(p entities.Progression) map[string]any {
	return map[string]any{
		"level":               p.Level,
		"experience":          strconv.FormatInt(p.Experience, 10),
		"nextLevelExperience": strconv.FormatInt(p.NextLevelExperience, 10),
	}
}

func warningsToList(warnings []engine.LoadWarning) []any {
	out := make([]any, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, map[string]any{
			"tree":    w.Tree,
			"message": w.Message,
		})
	}
	return out
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func stringField(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

// intField reads a whole number, accepting numeric strings
func intField(s *structpb.Struct, name string) (int, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, errors.InvalidArgumentf("%s must be an integer", name)
		}
		return int(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(kind.StringValue)
		if err != nil {
			return 0, errors.InvalidArgumentf("%s must be an integer, got %q", name, kind.StringValue)
		}
		return n, nil
	case *structpb.Value_NullValue:
		return 0, nil
	default:
		return 0, errors.InvalidArgumentf("%s must be an integer", name)
	}
}

// scalarField renders a string, number or bool value as text
func scalarField(s *structpb.Struct, name string) string {
	v := s.GetFields()[name]
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(kind.BoolValue)
	default:
		return ""
	}
}

func talentFromStruct(s *structpb.Struct) (entities.Talent, error) {
	talent := entities.Talent{
		ID:          scalarField(s, "id"),
		Name:        stringField(s, "name"),
		Description: stringField(s, "description"),
		ImageURL:    stringField(s, "imageUrl"),
	}

	var err error
	if talent.MaxPoints, err = intField(s, "maxPoints"); err != nil {
		return talent, err
	}
	if talent.Row, err = intField(s, "row"); err != nil {
		return talent, err
	}
	if talent.Points, err = intField(s, "points"); err != nil {
		return talent, err
	}
	return talent, nil
}
