package testutils

import (
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/testutils/builders"
)

// Tree names used by fixtures
const (
	TreeArcane = "arcane"
	TreeFire   = "fire"
)

// TreeDocumentJSON is a configuration document in the wire format, with
// string row keys and a numeric talent id as a browser would send it
const TreeDocumentJSON = `{
  "arcane": {
    "title": "Arcane",
    "description": "Bend the weave",
    "pointsSpent": 1,
    "rowRequirements": {"2": 3},
    "talents": [
      {"id": "missile", "name": "Arcane Missile", "points": 1, "maxPoints": 5, "imageUrl": "img/missile.png", "description": "Pew", "row": 1},
      {"id": 7, "name": "Blink", "points": 0, "maxPoints": 1, "imageUrl": "img/blink.png", "description": "Teleport", "row": 2}
    ]
  },
  "fire": {
    "title": "Fire",
    "description": "Burn things",
    "talents": [
      {"id": "ignite", "name": "Ignite", "points": 0, "maxPoints": 5, "imageUrl": "img/ignite.png", "description": "Set alight", "row": 1},
      {"id": "inferno", "name": "Inferno", "points": 0, "maxPoints": 3, "imageUrl": "img/inferno.png", "description": "Everything burns", "row": 2}
    ]
  }
}`

// TreeDocumentYAML is the same shape written as YAML
const TreeDocumentYAML = `
fire:
  title: Fire
  description: Burn things
  rowRequirements:
    2: 1
  talents:
    - id: ignite
      name: Ignite
      maxPoints: 5
      row: 1
    - id: inferno
      name: Inferno
      maxPoints: 3
      row: 2
`

// CreateTestTreeDefinitions returns two small trees with nothing allocated
func CreateTestTreeDefinitions() map[string]entities.TreeDefinition {
	return map[string]entities.TreeDefinition{
		TreeFire: builders.NewTreeDefinitionBuilder("Fire").
			WithTalent("ignite", 5, 1).
			WithTalent("scorch", 3, 1).
			WithTalent("inferno", 2, 2).
			Build(),
		TreeArcane: builders.NewTreeDefinitionBuilder("Arcane").
			WithRowRequirement(2, 1).
			WithTalent("missile", 5, 1).
			WithTalent("blink", 1, 2).
			Build(),
	}
}
