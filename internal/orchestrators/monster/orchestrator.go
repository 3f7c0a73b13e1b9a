// Package monster implements the generation service in front of the engine
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/generator"
)

// DefaultMaxCount caps how many monsters one request may ask for
const DefaultMaxCount = 20

var tracer = otel.Tracer("github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster")

// Engine produces monsters for a request
type Engine interface {
	Generate(req generator.Request) ([]*entities.Monster, error)
}

// Service defines the interface for monster generation
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the monster orchestrator
type Config struct {
	Engine   Engine
	EventBus events.EventBus
	// MaxCount defaults to DefaultMaxCount
	MaxCount int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.MaxCount < 0 {
		vb.InvalidField("MaxCount", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   Engine
	eventBus events.EventBus
	maxCount int
}

// NewOrchestrator creates a new monster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxCount := cfg.MaxCount
	if maxCount == 0 {
		maxCount = DefaultMaxCount
	}

	return &orchestrator{
		engine:   cfg.Engine,
		eventBus: cfg.EventBus,
		maxCount: maxCount,
	}, nil
}

// Generate validates the request, runs the engine and announces every
// monster on the event bus
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	req, err := o.request(input)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "monster.Generate")
	defer span.End()

	span.SetAttributes(
		attribute.String("monster.challenge_rating", string(req.Filter.ChallengeRating)),
		attribute.String("monster.type", string(req.Filter.Type)),
		attribute.String("monster.environment", string(req.Filter.Environment)),
		attribute.Int("monster.count", req.Filter.Count),
		attribute.String("monster.algorithm", string(req.Algorithm)),
	)

	monsters, err := o.engine.Generate(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		slog.ErrorContext(ctx, "monster generation failed",
			"challenge_rating", req.Filter.ChallengeRating,
			"type", req.Filter.Type,
			"environment", req.Filter.Environment,
			"error", err)
		return nil, errors.Wrap(err, "failed to generate monsters")
	}

	for _, m := range monsters {
		event := entities.NewMonsterEvent(entities.EventMonsterGenerated, "", m, map[string]any{
			"algorithm": string(req.Algorithm),
		})
		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish monster event",
				"event", entities.EventMonsterGenerated,
				"monster_name", m.Name,
				"error", err)
		}
	}

	slog.InfoContext(ctx, "generated monsters",
		"count", len(monsters),
		"algorithm", req.Algorithm,
		"complexity", req.Complexity)

	return &GenerateOutput{Monsters: monsters, Filter: req.Filter}, nil
}

// request converts loose input values into a typed engine request
func (o *orchestrator) request(input *GenerateInput) (generator.Request, error) {
	filter, err := entities.ParseFilter(input.ChallengeRating, input.Type, input.Environment, input.Count)
	if err != nil {
		return generator.Request{}, err
	}
	if filter.Count > o.maxCount {
		return generator.Request{}, errors.InvalidArgumentf("count must be at most %d, got %d", o.maxCount, filter.Count)
	}

	algorithm, err := entities.ParseAlgorithm(input.Algorithm)
	if err != nil {
		return generator.Request{}, err
	}

	complexity, err := entities.ParseComplexity(input.Complexity)
	if err != nil {
		return generator.Request{}, err
	}

	return generator.Request{
		Filter:          filter,
		Algorithm:       algorithm,
		Complexity:      complexity,
		IncludeTreasure: input.IncludeTreasure,
		IncludeLair:     input.IncludeLair,
	}, nil
}
