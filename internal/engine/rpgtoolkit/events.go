package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/talent-api/internal/entities"
)

// Event types published for talent commands
const (
	EventTalentAllocated      = "talent.allocated"
	EventTalentReclaimed      = "talent.reclaimed"
	EventTalentCapped         = "talent.allocate.capped"
	EventTalentLocked         = "talent.allocate.locked"
	EventTalentEmpty          = "talent.reclaim.empty"
	EventTalentAdded          = "talent.added"
	EventTalentRemoved        = "talent.removed"
	EventTalentEdited         = "talent.edited"
	EventTreesReloaded        = "talents.reloaded"
	EventTreesReloadFailed    = "talents.reload.failed"
	EventTreesReloadDiscarded = "talents.reload.discarded"
)

// OutcomeEventTypes lists every allocate/reclaim event type
var OutcomeEventTypes = []string{
	EventTalentAllocated,
	EventTalentReclaimed,
	EventTalentCapped,
	EventTalentLocked,
	EventTalentEmpty,
}

// OutcomeEvent maps an allocation outcome to its event type
func OutcomeEvent(outcome entities.Outcome) string {
	switch outcome {
	case entities.OutcomeAllocated:
		return EventTalentAllocated
	case entities.OutcomeReclaimed:
		return EventTalentReclaimed
	case entities.OutcomeCapped:
		return EventTalentCapped
	case entities.OutcomeLocked:
		return EventTalentLocked
	default:
		return EventTalentEmpty
	}
}

// Publisher sends talent events to an rpg-toolkit event bus
type Publisher struct {
	bus events.EventBus
}

// NewPublisher creates a publisher; a nil bus discards events
func NewPublisher(bus events.EventBus) *Publisher {
	return &Publisher{bus: bus}
}

// PublishTalent publishes an event whose source is the tree and target the talent
func (p *Publisher) PublishTalent(ctx context.Context, eventType, treeName string, talent *entities.Talent) error {
	source := WrapTree(&entities.Tree{Name: treeName})
	return p.publish(ctx, eventType, source, WrapTalent(treeName, talent))
}

// PublishTrees publishes a tree-set level event with no target
func (p *Publisher) PublishTrees(ctx context.Context, eventType string) error {
	return p.publish(ctx, eventType, WrapTree(&entities.Tree{Name: "*"}), nil)
}

func (p *Publisher) publish(ctx context.Context, eventType string, source, target core.Entity) error {
	if p == nil || p.bus == nil {
		return nil
	}
	return p.bus.Publish(ctx, events.NewGameEvent(eventType, source, target))
}
