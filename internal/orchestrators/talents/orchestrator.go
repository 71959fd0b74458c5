// Package talents implements the talent orchestrator that the gRPC and HTTP
// handlers call. It owns the engine, serializes access to it and publishes
// an event for every command.
package talents

//go:generate mockgen -destination=mock/mock_service.go -package=talentsmock github.com/KirkDiggler/talent-api/internal/orchestrators/talents Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/loader"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
)

// Service defines the interface for talent operations
type Service interface {
	// Configuration
	ReloadTrees(ctx context.Context, input *ReloadTreesInput) (*ReloadTreesOutput, error)
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// Queries
	ListTrees(ctx context.Context, input *ListTreesInput) (*ListTreesOutput, error)
	GetTree(ctx context.Context, input *GetTreeInput) (*GetTreeOutput, error)
	GetProgression(ctx context.Context, input *GetProgressionInput) (*GetProgressionOutput, error)

	// Player commands
	Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error)
	Reclaim(ctx context.Context, input *ReclaimInput) (*ReclaimOutput, error)

	// Administrative commands
	AddTalent(ctx context.Context, input *AddTalentInput) (*AddTalentOutput, error)
	RemoveTalent(ctx context.Context, input *RemoveTalentInput) (*RemoveTalentOutput, error)
	EditTalent(ctx context.Context, input *EditTalentInput) (*EditTalentOutput, error)
}

// ProgressionObserver receives the recomputed progression after every change
type ProgressionObserver interface {
	ObserveProgression(p entities.Progression, treeCount int)
}

// Config holds the dependencies for the talent orchestrator
type Config struct {
	Engine      *engine.Engine
	Source      loader.Source
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus

	// Optional
	Observer ProgressionObserver
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	mu sync.Mutex

	engine    *engine.Engine
	source    loader.Source
	idGen     idgen.Generator
	clock     clock.Clock
	publisher *rpgtoolkit.Publisher
	observer  ProgressionObserver
	logger    *slog.Logger

	// requested is bumped when a reload starts, loaded records the
	// generation whose trees are installed
	requested uint64
	loaded    uint64
	loadedAt  time.Time
}

// NewOrchestrator creates a new talent orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		engine:    cfg.Engine,
		source:    cfg.Source,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		publisher: rpgtoolkit.NewPublisher(cfg.EventBus),
		observer:  cfg.Observer,
		logger:    logger,
	}, nil
}

// ReloadTrees fetches definitions from the source and installs them. When a
// newer reload starts before this one finishes, this result is discarded.
func (o *orchestrator) ReloadTrees(ctx context.Context, input *ReloadTreesInput) (*ReloadTreesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	o.requested++
	generation := o.requested
	o.mu.Unlock()

	defs, loadErr := o.source.Load(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if generation != o.requested {
		o.logger.InfoContext(ctx, "discarding superseded tree reload",
			"generation", generation,
			"latest", o.requested)
		o.publish(ctx, rpgtoolkit.EventTreesReloadDiscarded, "", nil)
		return nil, errors.Aborted("reload superseded by a newer request").
			WithMeta("generation", generation).
			WithMeta("latest", o.requested)
	}

	if loadErr != nil {
		o.logger.ErrorContext(ctx, "failed to load tree definitions",
			"generation", generation,
			"error", loadErr)
		o.publish(ctx, rpgtoolkit.EventTreesReloadFailed, "", nil)
		return nil, errors.Wrap(loadErr, "failed to load tree definitions")
	}

	warnings, err := o.engine.LoadTrees(defs)
	if err != nil {
		o.logger.ErrorContext(ctx, "rejected tree definitions",
			"generation", generation,
			"error", err)
		o.publish(ctx, rpgtoolkit.EventTreesReloadFailed, "", nil)
		return nil, err
	}

	for _, w := range warnings {
		o.logger.WarnContext(ctx, "corrected tree definition",
			"tree", w.Tree,
			"warning", w.Message)
	}

	o.loaded = generation
	o.loadedAt = o.clock.Now()
	progression := o.progression()

	o.logger.InfoContext(ctx, "talent trees loaded",
		"generation", generation,
		"trees", o.engine.TreeCount(),
		"level", progression.Level)
	o.publish(ctx, rpgtoolkit.EventTreesReloaded, "", nil)

	return &ReloadTreesOutput{
		Trees:       o.engine.ListTrees(),
		Warnings:    warnings,
		Generation:  generation,
		Progression: progression,
	}, nil
}

// GetStatus reports which configuration generation is installed
func (o *orchestrator) GetStatus(_ context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetStatusOutput{
		Loaded:     o.loaded > 0,
		Generation: o.loaded,
		LoadedAt:   o.loadedAt,
		TreeCount:  o.engine.TreeCount(),
	}, nil
}

// ListTrees returns every loaded tree ordered by name
func (o *orchestrator) ListTrees(_ context.Context, input *ListTreesInput) (*ListTreesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &ListTreesOutput{Trees: o.engine.ListTrees()}, nil
}

// GetTree returns a tree along with the lock state of its rows
func (o *orchestrator) GetTree(_ context.Context, input *GetTreeInput) (*GetTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("tree name is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	tree, err := o.engine.GetTree(input.Name)
	if err != nil {
		return nil, err
	}
	rows, err := o.engine.RowStates(input.Name)
	if err != nil {
		return nil, err
	}

	return &GetTreeOutput{Tree: tree, RowStates: rows}, nil
}

// GetProgression returns the level and experience derived from all trees
func (o *orchestrator) GetProgression(_ context.Context, input *GetProgressionInput) (*GetProgressionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetProgressionOutput{
		Progression: o.engine.Progression(),
		TreeCount:   o.engine.TreeCount(),
	}, nil
}

// Allocate spends one point on a talent
func (o *orchestrator) Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error) {
	var tree, talent string
	if input != nil {
		tree, talent = input.Tree, input.TalentID
	}
	if err := validateTalentRef(input == nil, tree, talent); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	result, err := o.engine.Allocate(input.Tree, input.TalentID)
	if err != nil {
		return nil, err
	}
	rows, err := o.engine.RowStates(input.Tree)
	if err != nil {
		return nil, err
	}
	progression := o.progression()

	o.logger.InfoContext(ctx, "allocate evaluated",
		"tree", input.Tree,
		"talent", input.TalentID,
		"outcome", result.Outcome,
		"points", result.Talent.Points,
		"points_spent", result.PointsSpent,
		"requirement", result.Requirement)
	o.publish(ctx, rpgtoolkit.OutcomeEvent(result.Outcome), input.Tree, result.Talent)

	return &AllocateOutput{
		Outcome:     result.Outcome,
		Allowed:     result.Outcome.Applied(),
		Talent:      result.Talent,
		PointsSpent: result.PointsSpent,
		Requirement: result.Requirement,
		RowStates:   rows,
		Progression: progression,
	}, nil
}

// Reclaim refunds one point from a talent
func (o *orchestrator) Reclaim(ctx context.Context, input *ReclaimInput) (*ReclaimOutput, error) {
	var tree, talent string
	if input != nil {
		tree, talent = input.Tree, input.TalentID
	}
	if err := validateTalentRef(input == nil, tree, talent); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	result, err := o.engine.Reclaim(input.Tree, input.TalentID)
	if err != nil {
		return nil, err
	}
	rows, err := o.engine.RowStates(input.Tree)
	if err != nil {
		return nil, err
	}
	progression := o.progression()

	o.logger.InfoContext(ctx, "reclaim evaluated",
		"tree", input.Tree,
		"talent", input.TalentID,
		"outcome", result.Outcome,
		"points", result.Talent.Points,
		"points_spent", result.PointsSpent)
	o.publish(ctx, rpgtoolkit.OutcomeEvent(result.Outcome), input.Tree, result.Talent)

	return &ReclaimOutput{
		Outcome:     result.Outcome,
		Allowed:     result.Outcome.Applied(),
		Talent:      result.Talent,
		PointsSpent: result.PointsSpent,
		RowStates:   rows,
		Progression: progression,
	}, nil
}

// AddTalent appends a talent to an existing tree
func (o *orchestrator) AddTalent(ctx context.Context, input *AddTalentInput) (*AddTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Tree == "" {
		return nil, errors.InvalidArgument("tree name is required")
	}

	talent := input.Talent
	if talent.ID == "" {
		talent.ID = o.idGen.Generate()
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	added, err := o.engine.AddTalent(input.Tree, talent)
	if err != nil {
		return nil, err
	}
	progression := o.progression()

	o.logger.InfoContext(ctx, "talent added",
		"tree", input.Tree,
		"talent", added.ID,
		"row", added.Row,
		"max_points", added.MaxPoints)
	o.publish(ctx, rpgtoolkit.EventTalentAdded, input.Tree, added)

	return &AddTalentOutput{Talent: added, Progression: progression}, nil
}

// RemoveTalent deletes a talent and refunds its points
func (o *orchestrator) RemoveTalent(ctx context.Context, input *RemoveTalentInput) (*RemoveTalentOutput, error) {
	var tree, talent string
	if input != nil {
		tree, talent = input.Tree, input.TalentID
	}
	if err := validateTalentRef(input == nil, tree, talent); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	removed, err := o.engine.RemoveTalent(input.Tree, input.TalentID)
	if err != nil {
		return nil, err
	}
	progression := o.progression()

	o.logger.InfoContext(ctx, "talent removed",
		"tree", input.Tree,
		"talent", removed.ID,
		"refunded", removed.Points)
	o.publish(ctx, rpgtoolkit.EventTalentRemoved, input.Tree, removed)

	return &RemoveTalentOutput{Talent: removed, Progression: progression}, nil
}

// EditTalent changes one administrative property of a talent
func (o *orchestrator) EditTalent(ctx context.Context, input *EditTalentInput) (*EditTalentOutput, error) {
	var tree, talent string
	if input != nil {
		tree, talent = input.Tree, input.TalentID
	}
	if err := validateTalentRef(input == nil, tree, talent); err != nil {
		return nil, err
	}
	if input.Field == "" {
		return nil, errors.InvalidArgument("field is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	edited, err := o.engine.SetTalentProperty(input.Tree, input.TalentID, input.Field, input.Value)
	if err != nil {
		return nil, err
	}
	rows, err := o.engine.RowStates(input.Tree)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "talent edited",
		"tree", input.Tree,
		"talent", input.TalentID,
		"field", input.Field,
		"value", input.Value)
	o.publish(ctx, rpgtoolkit.EventTalentEdited, input.Tree, edited)

	return &EditTalentOutput{Talent: edited, RowStates: rows}, nil
}

// progression recomputes the derived values and hands them to the observer.
// Callers hold o.mu.
func (o *orchestrator) progression() entities.Progression {
	p := o.engine.Progression()
	if o.observer != nil {
		o.observer.ObserveProgression(p, o.engine.TreeCount())
	}
	return p
}

// publish sends an event; subscriber failures are logged and never fail the command
func (o *orchestrator) publish(ctx context.Context, eventType, tree string, talent *entities.Talent) {
	var err error
	if tree == "" {
		err = o.publisher.PublishTrees(ctx, eventType)
	} else {
		err = o.publisher.PublishTalent(ctx, eventType, tree, talent)
	}
	if err != nil {
		o.logger.WarnContext(ctx, "failed to publish talent event",
			"event", eventType,
			"tree", tree,
			"error", err)
	}
}

func validateTalentRef(missing bool, tree, talentID string) error {
	if missing {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if tree == "" {
		vb.RequiredField("tree")
	}
	if talentID == "" {
		vb.RequiredField("talent_id")
	}
	return vb.Build()
}
