// Package stats keeps the usage counters current by listening to monster
// events on the bus
package stats

//go:generate mockgen -destination=mock/mock_service.go -package=statsmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/stats Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	statsrepo "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/stats"
)

// SubscriptionPriority is the bus priority of the counting handlers
const SubscriptionPriority = 100

var countedEvents = map[string]statsrepo.Counter{
	entities.EventMonsterGenerated: statsrepo.CounterGenerated,
	entities.EventMonsterSaved:     statsrepo.CounterSaved,
	entities.EventMonsterShared:    statsrepo.CounterShared,
}

// Service defines the interface for usage statistics
type Service interface {
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
	// Close stops counting events
	Close() error
}

// Config holds the dependencies for the stats orchestrator
type Config struct {
	StatsRepo statsrepo.Repository
	EventBus  events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StatsRepo == nil {
		vb.RequiredField("StatsRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	statsRepo     statsrepo.Repository
	eventBus      events.EventBus
	subscriptions []string
}

// NewOrchestrator creates a stats orchestrator and subscribes it to the bus
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		statsRepo: cfg.StatsRepo,
		eventBus:  cfg.EventBus,
	}

	for eventType, counter := range countedEvents {
		id := o.eventBus.SubscribeFunc(eventType, SubscriptionPriority, o.counter(counter))
		o.subscriptions = append(o.subscriptions, id)
	}

	return o, nil
}

func (o *orchestrator) counter(counter statsrepo.Counter) func(context.Context, events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		if _, err := o.statsRepo.Increment(ctx, statsrepo.IncrementInput{Counter: counter}); err != nil {
			slog.ErrorContext(ctx, "failed to count event",
				"event", e.Type(),
				"counter", counter,
				"error", err)
			return err
		}
		return nil
	}
}

func (o *orchestrator) GetStats(ctx context.Context, _ *GetStatsInput) (*GetStatsOutput, error) {
	out, err := o.statsRepo.Get(ctx, statsrepo.GetInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stats")
	}
	return &GetStatsOutput{Stats: out.Stats}, nil
}

// Close unsubscribes every counting handler
func (o *orchestrator) Close() error {
	var firstErr error
	for _, id := range o.subscriptions {
		if err := o.eventBus.Unsubscribe(id); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	o.subscriptions = nil
	return firstErr
}
