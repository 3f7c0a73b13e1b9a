package generator

import (
	"fmt"
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// describedFeatures is how many features the lair description names
const describedFeatures = 3

// Lair describes where the monster lives: terrain features and defenses
// sampled for its environment, plus those implied by its abilities, type and
// intelligence
func (g *Generator) Lair(m *entities.Monster) (*entities.Lair, error) {
	tables := g.tables.Lairs
	size := g.tables.LairSize(m.ChallengeRating)
	terrain := g.tables.Terrain(m.Environment)

	features, err := roll.Sample(g.roller, terrain.Features, tables.TerrainFeatures)
	if err != nil {
		return nil, err
	}
	for _, ability := range m.SpecialAbilities {
		features = append(features, tables.AbilityFeatures[ability]...)
	}
	features = append(features, tables.TypeFeatures[m.Type]...)
	features = dedupe(features)

	defenses, err := roll.Sample(g.roller, terrain.Defenses, tables.TerrainDefenses)
	if err != nil {
		return nil, err
	}
	for _, ability := range m.SpecialAbilities {
		defenses = append(defenses, tables.AbilityDefenses[ability]...)
	}
	defenses = append(defenses, tables.IntelligenceDefenses[g.tables.Intelligence(m.Type)]...)
	defenses = dedupe(defenses)

	description := fmt.Sprintf("%s. %s.", terrain.Base, tables.Sizes[size])
	if len(features) > 0 {
		named := features[:min(describedFeatures, len(features))]
		description += fmt.Sprintf(" Notable features include %s.", strings.Join(named, ", "))
	}

	return &entities.Lair{
		Description: description,
		Terrain:     string(m.Environment),
		Size:        size,
		Defenses:    defenses,
		Features:    features,
	}, nil
}

// dedupe drops repeated entries, keeping first occurrences in order
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
