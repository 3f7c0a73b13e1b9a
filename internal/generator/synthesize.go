package generator

import (
	"fmt"
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// Synthesize builds a monster from the stat tables with no template. "any"
// filter fields are drawn uniformly; an "any" rating draws from "0" to "5".
func (g *Generator) Synthesize(f entities.Filter) (*entities.Monster, error) {
	f = normalize(f)

	cr, monsterType, env, err := g.resolve(f)
	if err != nil {
		return nil, err
	}

	row, err := g.tables.StatsFor(cr)
	if err != nil {
		return nil, err
	}

	stats, err := g.rollStats(row)
	if err != nil {
		return nil, err
	}

	name, err := g.Name(monsterType)
	if err != nil {
		return nil, err
	}

	abilities, err := g.Abilities(cr)
	if err != nil {
		return nil, err
	}

	description, err := g.Describe(monsterType, env)
	if err != nil {
		return nil, err
	}

	return &entities.Monster{
		Name:             name,
		Type:             monsterType,
		Environment:      env,
		ChallengeRating:  cr,
		Stats:            stats,
		Description:      description,
		SpecialAbilities: abilities,
		Source:           entities.SourceProcedural,
	}, nil
}

func (g *Generator) resolve(f entities.Filter) (entities.ChallengeRating, entities.MonsterType, entities.Environment, error) {
	var err error

	cr := f.ChallengeRating.Bucket()
	if cr.IsAny() {
		if cr, err = roll.Choice(g.roller, entities.DefaultChallengeRatings); err != nil {
			return "", "", "", err
		}
	}

	monsterType := f.Type
	if monsterType.IsAny() {
		if monsterType, err = roll.Choice(g.roller, entities.MonsterTypes); err != nil {
			return "", "", "", err
		}
	}

	env := f.Environment
	if env.IsAny() {
		if env, err = roll.Choice(g.roller, entities.Environments); err != nil {
			return "", "", "", err
		}
	}

	return cr, monsterType, env, nil
}

func (g *Generator) rollStats(row bestiary.StatRow) (entities.Stats, error) {
	ac, err := g.roller.Int(row.ArmorClass.Min, row.ArmorClass.Max)
	if err != nil {
		return entities.Stats{}, err
	}

	morale, err := g.roller.Int(row.Morale.Min, row.Morale.Max)
	if err != nil {
		return entities.Stats{}, err
	}

	hp, err := g.roller.HitPoints(row.HitDice, row.BaseHitPoints)
	if err != nil {
		return entities.Stats{}, err
	}

	movement, err := g.movement()
	if err != nil {
		return entities.Stats{}, err
	}

	xp, err := g.roller.Int(row.Experience.Min, row.Experience.Max)
	if err != nil {
		return entities.Stats{}, err
	}

	return entities.Stats{
		ArmorClass: ac,
		HitDice:    row.HitDice,
		HitPoints:  hp,
		Movement:   movement,
		Attacks:    attacksLabel(row.Attacks),
		Damage:     row.Damage,
		Save:       row.Save,
		Morale:     morale,
		Experience: xp,
	}, nil
}

func (g *Generator) movement() (string, error) {
	ground, err := g.roller.Int(g.tables.Movement.Ground.Min, g.tables.Movement.Ground.Max)
	if err != nil {
		return "", err
	}
	encounter, err := g.roller.Int(g.tables.Movement.Encounter.Min, g.tables.Movement.Encounter.Max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d' (%d')", ground, encounter), nil
}

// attacksLabel turns an attack count such as "1-2" into "1-2 attacks"
func attacksLabel(count string) string {
	label := count + " attack"
	if strings.Contains(count, "2") {
		label += "s"
	}
	return label
}
