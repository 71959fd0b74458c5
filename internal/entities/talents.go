package entities

// Talent is a single purchasable upgrade inside a tree
type Talent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	MaxPoints   int    `json:"maxPoints"`
	Row         int    `json:"row"`
	Points      int    `json:"points"`
}

// Capped reports whether the talent has no room for another point
func (t *Talent) Capped() bool {
	return t.Points >= t.MaxPoints
}

// Clone returns an independent copy
func (t *Talent) Clone() *Talent {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// RowRequirements maps a row to the points a tree must have spent before
// talents in that row can take points
type RowRequirements map[int]int

// Clone returns an independent copy, nil stays nil
func (r RowRequirements) Clone() RowRequirements {
	if r == nil {
		return nil
	}
	c := make(RowRequirements, len(r))
	for row, required := range r {
		c[row] = required
	}
	return c
}

// Tree is a named progression path holding talents keyed by ID
type Tree struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// PointsSpent always equals the sum of Points over Talents
	PointsSpent int `json:"pointsSpent"`

	// RowRequirements overrides the shared table for this tree only
	RowRequirements RowRequirements `json:"rowRequirements,omitempty"`

	Talents map[string]*Talent `json:"talents"`
}

// Clone returns a deep copy
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	c := *t
	c.RowRequirements = t.RowRequirements.Clone()
	c.Talents = make(map[string]*Talent, len(t.Talents))
	for id, talent := range t.Talents {
		c.Talents[id] = talent.Clone()
	}
	return &c
}

// TreeDefinition is the configuration-time seed for a tree
type TreeDefinition struct {
	Title           string
	Description     string
	PointsSpent     *int // optional, recomputed when absent or inconsistent
	RowRequirements RowRequirements
	Talents         []TalentDefinition
}

// TalentDefinition is the configuration-time seed for a talent
type TalentDefinition struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	MaxPoints   int
	Row         int
	Points      int
}

// RowState is the derived unlock label for one row of a tree
type RowState struct {
	Row         int  `json:"row"`
	Requirement int  `json:"requirement"`
	Met         bool `json:"met"`
}

// Progression is the player-wide view derived from all trees
type Progression struct {
	Level               int   `json:"level"`
	Experience          int64 `json:"experience"`
	NextLevelExperience int64 `json:"nextLevelExperience"`
}

// Outcome is the non-error result of evaluating an allocate or reclaim
type Outcome string

// Allocation outcomes
const (
	OutcomeAllocated Outcome = "allocated"
	OutcomeReclaimed Outcome = "reclaimed"
	OutcomeCapped    Outcome = "capped"
	OutcomeLocked    Outcome = "locked"
	OutcomeEmpty     Outcome = "empty"
)

// Applied reports whether the outcome changed state
func (o Outcome) Applied() bool {
	return o == OutcomeAllocated || o == OutcomeReclaimed
}

// TalentField names an administratively editable talent property
type TalentField string

// Editable talent fields. Points are deliberately absent.
const (
	TalentFieldName        TalentField = "name"
	TalentFieldDescription TalentField = "description"
	TalentFieldMaxPoints   TalentField = "maxPoints"
	TalentFieldRow         TalentField = "row"
	TalentFieldImageURL    TalentField = "imageUrl"
)
