// Package generator builds Labyrinth Lord monster stat blocks.
//
// Each requested monster is an independent trial: a strategy is selected
// (template or procedural), a base monster is produced from the bestiary
// tables, and extended encounter, treasure and lair data is attached when the
// request asks for it. The generator performs no I/O and holds no mutable
// state beyond its roller, so a single instance can serve concurrent callers
// as long as its dice.Roller is safe for concurrent use.
package generator

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// DefaultTemplateChance is the percent chance a balanced trial tries a template
const DefaultTemplateChance = 70

// Config holds the dependencies for a Generator
type Config struct {
	Bestiary *bestiary.Bestiary
	Roller   *roll.Roller
	// Selector decides balanced trials. Defaults to a ChanceSelector at
	// DefaultTemplateChance using Roller.
	Selector Selector
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bestiary == nil {
		vb.RequiredField("Bestiary")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Request describes one generation call
type Request struct {
	Filter          entities.Filter
	Algorithm       entities.Algorithm
	Complexity      entities.Complexity
	IncludeTreasure bool
	IncludeLair     bool
}

// Generator produces monsters from bestiary tables
type Generator struct {
	tables   *bestiary.Bestiary
	roller   *roll.Roller
	selector Selector
}

// New creates a Generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	selector := cfg.Selector
	if selector == nil {
		selector = NewChanceSelector(cfg.Roller, DefaultTemplateChance)
	}

	return &Generator{
		tables:   cfg.Bestiary,
		roller:   cfg.Roller,
		selector: selector,
	}, nil
}

// Generate produces Filter.Count independent monsters. A count below one
// produces entities.DefaultCount monsters. Errors only come from broken
// tables or a failing roller.
func (g *Generator) Generate(req Request) ([]*entities.Monster, error) {
	req.Filter = normalize(req.Filter)

	count := req.Filter.Count
	if count < 1 {
		count = entities.DefaultCount
	}

	monsters := make([]*entities.Monster, 0, count)
	for i := 0; i < count; i++ {
		m, err := g.trial(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate monster %d of %d", i+1, count)
		}
		monsters = append(monsters, m)
	}

	return monsters, nil
}

func (g *Generator) trial(req Request) (*entities.Monster, error) {
	strategy, err := g.strategyFor(req.Algorithm)
	if err != nil {
		return nil, err
	}

	var m *entities.Monster
	if strategy == StrategyTemplate {
		m, err = g.fromTemplate(req.Filter)
		if err != nil {
			return nil, err
		}
	}

	// Nothing matched, or the trial was procedural from the start
	if m == nil {
		m, err = g.Synthesize(req.Filter)
		if err != nil {
			return nil, err
		}
	}

	if err := g.extend(m, req); err != nil {
		return nil, err
	}
	return m, nil
}

// fromTemplate instantiates a random matching template, or returns nil when
// none match
func (g *Generator) fromTemplate(f entities.Filter) (*entities.Monster, error) {
	matches := MatchTemplates(g.tables.Templates, f)
	if len(matches) == 0 {
		return nil, nil
	}

	t, err := roll.Choice(g.roller, matches)
	if err != nil {
		return nil, err
	}
	return g.Instantiate(t)
}

func (g *Generator) extend(m *entities.Monster, req Request) error {
	var err error

	if req.Complexity.IncludesEncounters() {
		if m.Encounters, err = g.Encounters(m); err != nil {
			return errors.Wrap(err, "failed to generate encounters")
		}
	}

	if req.IncludeTreasure {
		if m.Treasure, err = g.Treasure(m, req.Complexity); err != nil {
			return errors.Wrap(err, "failed to generate treasure")
		}
	}

	if req.IncludeLair {
		if m.Lair, err = g.Lair(m); err != nil {
			return errors.Wrap(err, "failed to generate lair")
		}
	}

	return nil
}

// normalize treats empty filter fields as "any"
func normalize(f entities.Filter) entities.Filter {
	if f.ChallengeRating == "" {
		f.ChallengeRating = entities.CRAny
	}
	if f.Type == "" {
		f.Type = entities.TypeAny
	}
	if f.Environment == "" {
		f.Environment = entities.EnvironmentAny
	}
	return f
}
