// Package metrics exposes prometheus collectors for talent commands
package metrics

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/talent-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/talent-api/internal/entities"
)

const namespace = "talent_api"

// Recorder owns the collectors and keeps them current from the event bus
type Recorder struct {
	commands    *prometheus.CounterVec
	reloads     *prometheus.CounterVec
	playerLevel prometheus.Gauge
	experience  prometheus.Gauge
	trees       prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "talent_commands_total",
				Help:      "Allocate and reclaim commands by tree and outcome",
			},
			[]string{"tree", "outcome"},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tree_reloads_total",
				Help:      "Tree configuration reloads by result",
			},
			[]string{"result"},
		),
		playerLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_level",
			Help:      "Sum of points spent across all trees",
		}),
		experience: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_experience",
			Help:      "Experience derived from the player level",
		}),
		trees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "trees_loaded",
			Help:      "Number of talent trees currently loaded",
		}),
	}

	for _, c := range []prometheus.Collector{r.commands, r.reloads, r.playerLevel, r.experience, r.trees} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Subscribe attaches the recorder to the bus for command and reload events
func (r *Recorder) Subscribe(bus events.EventBus) {
	for _, eventType := range rpgtoolkit.OutcomeEventTypes {
		bus.SubscribeFunc(eventType, 0, r.onOutcome)
	}
	bus.SubscribeFunc(rpgtoolkit.EventTreesReloaded, 0, r.onReload("success"))
	bus.SubscribeFunc(rpgtoolkit.EventTreesReloadFailed, 0, r.onReload("failed"))
	bus.SubscribeFunc(rpgtoolkit.EventTreesReloadDiscarded, 0, r.onReload("discarded"))
}

func (r *Recorder) onOutcome(_ context.Context, e events.Event) error {
	tree := ""
	if src := e.Source(); src != nil {
		tree = src.GetID()
	}
	r.commands.WithLabelValues(tree, outcomeLabel(e.Type())).Inc()
	return nil
}

func (r *Recorder) onReload(result string) events.HandlerFunc {
	return func(_ context.Context, _ events.Event) error {
		r.reloads.WithLabelValues(result).Inc()
		return nil
	}
}

// ObserveProgression records the latest derived progression
func (r *Recorder) ObserveProgression(p entities.Progression, treeCount int) {
	r.playerLevel.Set(float64(p.Level))
	r.experience.Set(float64(p.Experience))
	r.trees.Set(float64(treeCount))
}

// outcomeLabel turns "talent.allocate.locked" into "locked" and
// "talent.allocated" into "allocated"
func outcomeLabel(eventType string) string {
	return eventType[strings.LastIndex(eventType, ".")+1:]
}
