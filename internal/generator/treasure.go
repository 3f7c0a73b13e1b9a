package generator

import (
	"fmt"
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// NoTreasure labels a rating without individual treasure
const NoTreasure = "None"

// Treasure rolls the monster's lair hoard. Complex requests also roll the
// coins each individual carries and add them to the hoard.
func (g *Generator) Treasure(m *entities.Monster, complexity entities.Complexity) (*entities.Treasure, error) {
	tables := g.tables.Treasure
	letter := g.TreasureType(m.ChallengeRating, m.Type)

	hoard, ok := tables.Types[letter]
	if !ok {
		letter = tables.FallbackType
		hoard = tables.Types[letter]
	}

	individual, ok := tables.IndividualByChallengeRating[m.ChallengeRating.Bucket()]
	if !ok {
		individual = NoTreasure
	}

	coins, err := g.rollCoins(hoard)
	if err != nil {
		return nil, err
	}

	if complexity == entities.ComplexityComplex {
		if err := g.addIndividualCoins(coins, individual); err != nil {
			return nil, err
		}
	}

	gems, err := g.rollGems(hoard.Gems)
	if err != nil {
		return nil, err
	}

	items, err := g.rollMagicItems(hoard.MagicItems)
	if err != nil {
		return nil, err
	}

	return &entities.Treasure{
		Individual: individual,
		Lair:       letter,
		Coins:      coins,
		Gems:       gems,
		MagicItems: items,
	}, nil
}

// TreasureType returns the lair treasure letter for a rating, shifted along
// the treasure order by monster type and clamped to its ends
func (g *Generator) TreasureType(cr entities.ChallengeRating, t entities.MonsterType) string {
	tables := g.tables.Treasure

	letter, ok := tables.LairByChallengeRating[cr.Bucket()]
	if !ok {
		return tables.FallbackType
	}

	shift := tables.TypeShift[t]
	for i, l := range tables.Order {
		if l == letter {
			i = max(0, min(len(tables.Order)-1, i+shift))
			return tables.Order[i]
		}
	}
	return letter
}

func (g *Generator) rollCoins(hoard bestiary.TreasureType) (map[string]int, error) {
	coins := map[string]int{}
	for _, denomination := range g.tables.Treasure.Denominations {
		r, ok := hoard.Coins[denomination]
		if !ok {
			continue
		}

		present, err := g.roller.Percent(g.tables.Treasure.CoinChance)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}

		amount, err := g.roller.Int(r.Min, r.Max)
		if err != nil {
			return nil, err
		}
		coins[denomination] = amount
	}
	return coins, nil
}

// addIndividualCoins rolls every denomination named in the individual
// treasure label
func (g *Generator) addIndividualCoins(coins map[string]int, label string) error {
	for _, denomination := range g.tables.Treasure.Denominations {
		r, ok := g.tables.Treasure.IndividualCoins[denomination]
		if !ok || !strings.Contains(label, denomination) {
			continue
		}

		amount, err := g.roller.Int(r.Min, r.Max)
		if err != nil {
			return err
		}
		coins[denomination] += amount
	}
	return nil
}

func (g *Generator) rollGems(chance int) ([]string, error) {
	gems := []string{}

	present, err := g.roller.Percent(chance)
	if err != nil || !present {
		return gems, err
	}

	table := g.tables.Treasure.Gems
	n, err := g.roller.Int(table.Count.Min, table.Count.Max)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		value, err := roll.Choice(g.roller, table.Values)
		if err != nil {
			return nil, err
		}
		name, err := roll.Choice(g.roller, table.Names)
		if err != nil {
			return nil, err
		}
		gems = append(gems, fmt.Sprintf("%s (%d gp)", name, value))
	}
	return gems, nil
}

func (g *Generator) rollMagicItems(chance int) ([]string, error) {
	items := []string{}

	present, err := g.roller.Percent(chance)
	if err != nil || !present {
		return items, err
	}

	table := g.tables.Treasure.MagicItems
	n, err := g.roller.Int(table.Count.Min, table.Count.Max)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		kind, err := roll.Choice(g.roller, table.Kinds)
		if err != nil {
			return nil, err
		}
		items = append(items, "Magic "+kind)
	}
	return items, nil
}
