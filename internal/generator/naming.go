package generator

import (
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// Name builds "[Prefix ]Noun[ Suffix]" from the type's noun pool. Unknown
// types use the fallback pool.
func (g *Generator) Name(t entities.MonsterType) (string, error) {
	names := g.tables.Names
	parts := make([]string, 0, 3)

	usePrefix, err := g.roller.Percent(names.PrefixChance)
	if err != nil {
		return "", err
	}
	if usePrefix {
		prefix, err := roll.Choice(g.roller, names.Prefixes)
		if err != nil {
			return "", err
		}
		parts = append(parts, prefix)
	}

	noun, err := roll.Choice(g.roller, g.tables.NamesFor(t))
	if err != nil {
		return "", errors.Wrapf(err, "no names for type %s", t)
	}
	parts = append(parts, noun)

	useSuffix, err := g.roller.Percent(names.SuffixChance)
	if err != nil {
		return "", err
	}
	if useSuffix {
		suffix, err := roll.Choice(g.roller, names.Suffixes)
		if err != nil {
			return "", err
		}
		parts = append(parts, suffix)
	}

	return strings.Join(parts, " "), nil
}

// Abilities draws between one and min(max, rating+2) distinct abilities
func (g *Generator) Abilities(cr entities.ChallengeRating) ([]string, error) {
	n, ok := cr.Numeric()
	if !ok {
		return nil, errors.TableIntegrityf("cannot size abilities for challenge rating %q", cr)
	}

	upper := min(g.tables.Abilities.Max, n+2)
	count, err := g.roller.Int(1, upper)
	if err != nil {
		return nil, err
	}

	return roll.Sample(g.roller, g.tables.Abilities.Pool, count)
}

// Describe fills a random sentence template with two independently drawn
// descriptors and the monster's type and environment
func (g *Generator) Describe(t entities.MonsterType, env entities.Environment) (string, error) {
	d := g.tables.Descriptions

	first, err := roll.Choice(g.roller, d.Descriptors)
	if err != nil {
		return "", err
	}
	second, err := roll.Choice(g.roller, d.Descriptors)
	if err != nil {
		return "", err
	}
	template, err := roll.Choice(g.roller, d.Templates)
	if err != nil {
		return "", err
	}

	return strings.NewReplacer(
		"{d1}", first,
		"{d2}", second,
		"{type}", string(t),
		"{env}", string(env),
	).Replace(template), nil
}
