// Package loader reads talent tree definitions from configuration sources
package loader

import (
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// treeDocument mirrors one tree entry of the configuration document
type treeDocument struct {
	Title           string           `mapstructure:"title"`
	Description     string           `mapstructure:"description"`
	PointsSpent     *int             `mapstructure:"pointsSpent"`
	RowRequirements map[int]int      `mapstructure:"rowRequirements"`
	Talents         []talentDocument `mapstructure:"talents"`
}

type talentDocument struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	ImageURL    string `mapstructure:"imageUrl"`
	MaxPoints   int    `mapstructure:"maxPoints"`
	Row         int    `mapstructure:"row"`
	Points      int    `mapstructure:"points"`
}

// Decode parses a JSON or YAML tree document. JSON object keys are always
// strings, so row numbers and numeric talent IDs are decoded weakly.
func Decode(data []byte) (map[string]entities.TreeDefinition, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "malformed tree document")
	}
	if raw == nil {
		return nil, errors.InvalidConfiguration("tree document is empty")
	}

	var docs map[string]treeDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       rejectFractionalInts,
		Result:           &docs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tree decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "tree document does not match the tree schema")
	}

	if len(docs) == 0 {
		return nil, errors.InvalidConfiguration("tree document defines no trees")
	}

	defs := make(map[string]entities.TreeDefinition, len(docs))
	for name, doc := range docs {
		def := entities.TreeDefinition{
			Title:       doc.Title,
			Description: doc.Description,
			PointsSpent: doc.PointsSpent,
			Talents:     make([]entities.TalentDefinition, 0, len(doc.Talents)),
		}
		if len(doc.RowRequirements) > 0 {
			def.RowRequirements = entities.RowRequirements(doc.RowRequirements)
		}
		for _, td := range doc.Talents {
			def.Talents = append(def.Talents, entities.TalentDefinition(td))
		}
		defs[name] = def
	}

	return defs, nil
}

// rejectFractionalInts stops weak decoding from truncating 2.7 into 2
func rejectFractionalInts(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}

	if f != math.Trunc(f) {
		return nil, errors.InvalidConfigurationf("expected a whole number, got %v", f)
	}
	return data, nil
}
