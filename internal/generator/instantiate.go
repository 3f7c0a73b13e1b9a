package generator

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// Instantiate returns an individual of the template. Hit points are rolled
// from the template's hit dice and experience from its rating's range; every
// other field keeps the authored value.
func (g *Generator) Instantiate(t *bestiary.Template) (*entities.Monster, error) {
	m := t.Monster()

	hp, err := g.roller.HitPoints(t.HitDice, roll.DefaultHitPoints)
	if err != nil {
		return nil, err
	}

	row, err := g.tables.StatsFor(t.ChallengeRating)
	if err != nil {
		return nil, err
	}

	xp, err := g.roller.Int(row.Experience.Min, row.Experience.Max)
	if err != nil {
		return nil, err
	}

	m.Stats.HitPoints = hp
	m.Stats.Experience = xp
	return m, nil
}
