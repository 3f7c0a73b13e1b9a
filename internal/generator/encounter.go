package generator

import (
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

const (
	minLairChance = 5
	maxLairChance = 95
)

// Encounters picks a social structure for the monster and scales its
// numbers by challenge rating
func (g *Generator) Encounters(m *entities.Monster) (*entities.Encounters, error) {
	structure, err := g.SocialStructure(m.Type, m.SpecialAbilities)
	if err != nil {
		return nil, err
	}

	base, ok := g.tables.Encounters.Structures[structure]
	if !ok {
		return nil, errors.TableIntegrityf("unknown social structure %q", structure)
	}

	mod := g.tables.EncounterModifier(m.ChallengeRating)

	lair := min(maxLairChance, base.LairChance+mod.LairBonus)
	lair = max(minLairChance, min(maxLairChance, lair+g.tables.Encounters.Environments[m.Environment]))

	return &entities.Encounters{
		NumberAppearing: ScaleDice(base.NumberAppearing, mod.Multiplier),
		WildEncounter:   ScaleDice(base.WildEncounter, mod.Multiplier),
		LairChance:      lair,
	}, nil
}

// SocialStructure chooses how the monster groups. Types with several
// behaviours pick one first. The first ability rule the monster matches
// weights the options; options the rule does not name weigh one.
func (g *Generator) SocialStructure(t entities.MonsterType, abilities []string) (string, error) {
	behaviours := g.tables.Encounters.Behaviours(t)
	if len(behaviours) == 0 {
		return roll.Choice(g.roller, g.tables.Encounters.Fallback)
	}

	options, err := roll.Choice(g.roller, behaviours)
	if err != nil {
		return "", err
	}

	weights := g.abilityWeights(abilities)
	if weights == nil {
		return roll.Choice(g.roller, options)
	}

	total := 0
	for _, o := range options {
		total += weightOf(weights, o)
	}

	pick, err := g.roller.Int(1, total)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		pick -= weightOf(weights, o)
		if pick <= 0 {
			return o, nil
		}
	}

	return "", errors.Internal("weighted structure selection overran")
}

func (g *Generator) abilityWeights(abilities []string) map[string]int {
	for _, rule := range g.tables.Encounters.AbilityWeights {
		for _, want := range rule.Abilities {
			for _, have := range abilities {
				if have == want {
					return rule.Weights
				}
			}
		}
	}
	return nil
}

func weightOf(weights map[string]int, option string) int {
	if w, ok := weights[option]; ok {
		return w
	}
	return 1
}

// ScaleDice rescales an encounter dice expression. "1" and expressions
// without a die are unchanged. A multiplier above one scales a positive
// modifier if present, otherwise the dice count. A multiplier below one
// shrinks a multi-die count, never below one die.
func ScaleDice(expr string, multiplier float64) string {
	if expr == "1" || !strings.Contains(strings.ToLower(expr), "d") {
		return expr
	}

	e, ok := roll.ParseExpression(expr)
	if !ok {
		return expr
	}

	switch {
	case multiplier > 1 && e.Modifier > 0:
		e.Modifier = int(float64(e.Modifier) * multiplier)
	case multiplier > 1:
		e.Count = max(1, int(float64(e.Count)*multiplier))
	case multiplier < 1 && e.Count > 1:
		e.Count = max(1, int(float64(e.Count)*multiplier))
	default:
		return expr
	}

	return e.String()
}
