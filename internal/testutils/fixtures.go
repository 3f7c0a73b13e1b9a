package testutils

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// TestMonsterName is the name of the default monster fixture
const TestMonsterName = "Goblin Warrior"

// CreateTestMonster returns a fully populated humanoid stat block
func CreateTestMonster() *entities.Monster {
	return &entities.Monster{
		Name:            TestMonsterName,
		Type:            entities.TypeHumanoid,
		Environment:     entities.EnvironmentDungeon,
		ChallengeRating: entities.CR1,
		Stats: entities.Stats{
			ArmorClass: 6,
			HitDice:    "1",
			HitPoints:  5,
			Movement:   "60' (20')",
			Attacks:    "1 weapon",
			Damage:     "1d6",
			Save:       "F1",
			Morale:     7,
			Experience: 10,
		},
		Description:      "A small, cruel humanoid with sharp teeth and pointed ears.",
		SpecialAbilities: []string{"Infravision 60'"},
		Source:           entities.SourceTemplate,
	}
}

// CreateTestMonsterWithExtras returns the default fixture with encounter,
// treasure and lair details filled in
func CreateTestMonsterWithExtras() *entities.Monster {
	m := CreateTestMonster()
	m.Encounters = &entities.Encounters{NumberAppearing: "2d4", WildEncounter: "6d10", LairChance: 40}
	m.Treasure = &entities.Treasure{
		Individual: "R",
		Lair:       "C",
		Coins:      map[string]int{"cp": 1200},
		Gems:       []string{"Azurite (10 gp)"},
		MagicItems: []string{},
	}
	m.Lair = &entities.Lair{
		Description: "Stone corridors. Small lair.",
		Terrain:     string(entities.EnvironmentDungeon),
		Size:        "small",
		Defenses:    []string{"Pit traps"},
		Features:    []string{"Collapsed tunnels"},
	}
	return m
}
