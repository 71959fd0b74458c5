package talents

import (
	"time"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/entities"
)

// ReloadTreesInput defines the request for reloading tree configuration
type ReloadTreesInput struct{}

// ReloadTreesOutput defines the response for reloading tree configuration
type ReloadTreesOutput struct {
	Trees       []*entities.Tree
	Warnings    []engine.LoadWarning
	Generation  uint64
	Progression entities.Progression
}

// ListTreesInput defines the request for listing trees
type ListTreesInput struct{}

// ListTreesOutput defines the response for listing trees
type ListTreesOutput struct {
	Trees []*entities.Tree
}

// GetTreeInput defines the request for getting a single tree
type GetTreeInput struct {
	Name string
}

// GetTreeOutput defines the response for getting a single tree
type GetTreeOutput struct {
	Tree      *entities.Tree
	RowStates []entities.RowState
}

// GetProgressionInput defines the request for the player progression
type GetProgressionInput struct{}

// GetProgressionOutput defines the response for the player progression
type GetProgressionOutput struct {
	Progression entities.Progression
	TreeCount   int
}

// AllocateInput defines the request for spending a point
type AllocateInput struct {
	Tree     string
	TalentID string
}

// AllocateOutput defines the response for spending a point.
// Allowed is false when the outcome was capped or locked.
type AllocateOutput struct {
	Outcome     entities.Outcome
	Allowed     bool
	Talent      *entities.Talent
	PointsSpent int
	Requirement int
	RowStates   []entities.RowState
	Progression entities.Progression
}

// ReclaimInput defines the request for refunding a point
type ReclaimInput struct {
	Tree     string
	TalentID string
}

// ReclaimOutput defines the response for refunding a point
type ReclaimOutput struct {
	Outcome     entities.Outcome
	Allowed     bool
	Talent      *entities.Talent
	PointsSpent int
	RowStates   []entities.RowState
	Progression entities.Progression
}

// AddTalentInput defines the request for adding a talent.
// An empty Talent.ID is filled from the id generator.
type AddTalentInput struct {
	Tree   string
	Talent entities.Talent
}

// AddTalentOutput defines the response for adding a talent
type AddTalentOutput struct {
	Talent      *entities.Talent
	Progression entities.Progression
}

// RemoveTalentInput defines the request for removing a talent
type RemoveTalentInput struct {
	Tree     string
	TalentID string
}

// RemoveTalentOutput defines the response for removing a talent
type RemoveTalentOutput struct {
	Talent      *entities.Talent
	Progression entities.Progression
}

// EditTalentInput defines the request for editing a talent property
type EditTalentInput struct {
	Tree     string
	TalentID string
	Field    entities.TalentField
	Value    string
}

// EditTalentOutput defines the response for editing a talent property
type EditTalentOutput struct {
	Talent    *entities.Talent
	RowStates []entities.RowState
}

// GetStatusInput defines the request for service status
type GetStatusInput struct{}

// GetStatusOutput defines the response for service status
type GetStatusOutput struct {
	Loaded     bool
	Generation uint64
	LoadedAt   time.Time
	TreeCount  int
}
