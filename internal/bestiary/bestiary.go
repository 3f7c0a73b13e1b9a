// Package bestiary holds the static Labyrinth Lord tables the generator draws
// from: stat rows per challenge rating, name and ability pools, hand-authored
// templates and the encounter, treasure and lair tables.
//
// Tables are loaded once and never mutated afterwards, so a *Bestiary can be
// shared by any number of concurrent generations.
package bestiary

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

//go:embed bestiary.yaml
var embedded []byte

var (
	defaultOnce     sync.Once
	defaultBestiary *Bestiary
	defaultErr      error
)

// Range is an inclusive integer range
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether Min does not exceed Max
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// StatRow is the base stat line for one challenge rating bucket
type StatRow struct {
	ArmorClass    Range  `yaml:"armor_class"`
	HitDice       string `yaml:"hit_dice"`
	BaseHitPoints int    `yaml:"base_hit_points"`
	Attacks       string `yaml:"attacks"`
	Save          string `yaml:"save"`
	Morale        Range  `yaml:"morale"`
	Damage        string `yaml:"damage"`
	Experience    Range  `yaml:"experience"`
}

// Movement holds the speed ranges used to build movement strings
type Movement struct {
	Ground    Range `yaml:"ground"`
	Encounter Range `yaml:"encounter"`
}

// Names is the name grammar: optional prefix, type noun, optional suffix
type Names struct {
	PrefixChance int                               `yaml:"prefix_chance"`
	SuffixChance int                               `yaml:"suffix_chance"`
	FallbackType entities.MonsterType              `yaml:"fallback_type"`
	Prefixes     []string                          `yaml:"prefixes"`
	Suffixes     []string                          `yaml:"suffixes"`
	ByType       map[entities.MonsterType][]string `yaml:"by_type"`
}

// Abilities is the shared special ability pool
type Abilities struct {
	Max  int      `yaml:"max"`
	Pool []string `yaml:"pool"`
}

// Descriptions holds sentence templates and the adjectives that fill them.
// Templates use {d1}, {d2}, {type} and {env} placeholders.
type Descriptions struct {
	Descriptors []string `yaml:"descriptors"`
	Templates   []string `yaml:"templates"`
}

// Template is a hand-authored monster
type Template struct {
	Name             string                   `yaml:"name"`
	Type             entities.MonsterType     `yaml:"type"`
	Environment      entities.Environment     `yaml:"environment"`
	ChallengeRating  entities.ChallengeRating `yaml:"challenge_rating"`
	ArmorClass       int                      `yaml:"armor_class"`
	HitDice          string                   `yaml:"hit_dice"`
	Movement         string                   `yaml:"movement"`
	Attacks          string                   `yaml:"attacks"`
	Damage           string                   `yaml:"damage"`
	Save             string                   `yaml:"save"`
	Morale           int                      `yaml:"morale"`
	Experience       int                      `yaml:"experience"`
	Description      string                   `yaml:"description"`
	SpecialAbilities []string                 `yaml:"special_abilities"`
}

// Monster returns a fresh monster carrying the template's authored values.
// Hit points are left at zero for the caller to roll.
func (t *Template) Monster() *entities.Monster {
	return &entities.Monster{
		Name:            t.Name,
		Type:            t.Type,
		Environment:     t.Environment,
		ChallengeRating: t.ChallengeRating,
		Stats: entities.Stats{
			ArmorClass: t.ArmorClass,
			HitDice:    t.HitDice,
			Movement:   t.Movement,
			Attacks:    t.Attacks,
			Damage:     t.Damage,
			Save:       t.Save,
			Morale:     t.Morale,
			Experience: t.Experience,
		},
		Description:      t.Description,
		SpecialAbilities: append([]string{}, t.SpecialAbilities...),
		Source:           entities.SourceTemplate,
	}
}

// EncounterStructure is the base encounter line for a social structure
type EncounterStructure struct {
	NumberAppearing string `yaml:"number_appearing"`
	WildEncounter   string `yaml:"wild_encounter"`
	LairChance      int    `yaml:"lair_chance"`
}

// AbilityWeights biases structure selection when a monster has any of Abilities
type AbilityWeights struct {
	Abilities []string       `yaml:"abilities"`
	Weights   map[string]int `yaml:"weights"`
}

// ChallengeModifier scales encounter sizes and lair chance by challenge rating
type ChallengeModifier struct {
	Multiplier float64 `yaml:"multiplier"`
	LairBonus  int     `yaml:"lair_bonus"`
}

// Encounters holds the social structure tables
type Encounters struct {
	Structures       map[string]EncounterStructure                  `yaml:"structures"`
	ByType           map[entities.MonsterType]map[string][]string   `yaml:"by_type"`
	Fallback         []string                                       `yaml:"fallback"`
	AbilityWeights   []AbilityWeights                               `yaml:"ability_weights"`
	ChallengeRatings map[entities.ChallengeRating]ChallengeModifier `yaml:"challenge_ratings"`
	Environments     map[entities.Environment]int                   `yaml:"environments"`
}

// Behaviours returns the structure option lists for a type, sorted by
// behaviour name so selection is stable. Unknown types return nil.
func (e *Encounters) Behaviours(t entities.MonsterType) [][]string {
	byName := e.ByType[t]
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([][]string, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// TreasureType is one lettered hoard table
type TreasureType struct {
	Coins      map[string]Range `yaml:"coins"`
	Gems       int              `yaml:"gems"`
	MagicItems int              `yaml:"magic_items"`
}

// Gems describes how gems are drawn
type Gems struct {
	Count  Range    `yaml:"count"`
	Values []int    `yaml:"values"`
	Names  []string `yaml:"names"`
}

// MagicItems describes how magic items are drawn
type MagicItems struct {
	Count Range    `yaml:"count"`
	Kinds []string `yaml:"kinds"`
}

// Treasure holds the hoard tables
type Treasure struct {
	Denominations               []string                            `yaml:"denominations"`
	CoinChance                  int                                 `yaml:"coin_chance"`
	Types                       map[string]TreasureType             `yaml:"types"`
	FallbackType                string                              `yaml:"fallback_type"`
	Order                       []string                            `yaml:"order"`
	LairByChallengeRating       map[entities.ChallengeRating]string `yaml:"lair_by_challenge_rating"`
	IndividualByChallengeRating map[entities.ChallengeRating]string `yaml:"individual_by_challenge_rating"`
	IndividualCoins             map[string]Range                    `yaml:"individual_coins"`
	TypeShift                   map[entities.MonsterType]int        `yaml:"type_shift"`
	Gems                        Gems                                `yaml:"gems"`
	MagicItems                  MagicItems                          `yaml:"magic_items"`
}

// Terrain is the lair description for one environment
type Terrain struct {
	Base     string   `yaml:"base"`
	Features []string `yaml:"features"`
	Defenses []string `yaml:"defenses"`
}

// Lairs holds the lair tables
type Lairs struct {
	Sizes                 map[string]string                   `yaml:"sizes"`
	SizeByChallengeRating map[entities.ChallengeRating]string `yaml:"size_by_challenge_rating"`
	TerrainFeatures       int                                 `yaml:"terrain_features"`
	TerrainDefenses       int                                 `yaml:"terrain_defenses"`
	Terrains              map[entities.Environment]Terrain    `yaml:"terrains"`
	AbilityFeatures       map[string][]string                 `yaml:"ability_features"`
	TypeFeatures          map[entities.MonsterType][]string   `yaml:"type_features"`
	AbilityDefenses       map[string][]string                 `yaml:"ability_defenses"`
	DefaultIntelligence   string                              `yaml:"default_intelligence"`
	Intelligence          map[entities.MonsterType]string     `yaml:"intelligence"`
	IntelligenceDefenses  map[string][]string                 `yaml:"intelligence_defenses"`
}

// Bestiary is the full set of generation tables
type Bestiary struct {
	Stats        map[entities.ChallengeRating]StatRow `yaml:"stats"`
	Movement     Movement                             `yaml:"movement"`
	Names        Names                                `yaml:"names"`
	Abilities    Abilities                            `yaml:"abilities"`
	Descriptions Descriptions                         `yaml:"descriptions"`
	Templates    []Template                           `yaml:"templates"`
	Encounters   Encounters                           `yaml:"encounters"`
	Treasure     Treasure                             `yaml:"treasure"`
	Lairs        Lairs                                `yaml:"lairs"`
}

// Default returns the embedded tables, parsed and validated on first use
func Default() (*Bestiary, error) {
	defaultOnce.Do(func() {
		defaultBestiary, defaultErr = Load(embedded)
	})
	return defaultBestiary, defaultErr
}

// LoadFile reads and validates tables from a YAML file
func LoadFile(path string) (*Bestiary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bestiary %s", path)
	}
	return Load(data)
}

// Load parses and validates tables from YAML. Unknown keys are rejected.
func Load(data []byte) (*Bestiary, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var b Bestiary
	if err := dec.Decode(&b); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeTableIntegrity, "failed to parse bestiary")
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// StatsFor returns the stat row for the rating's bucket
func (b *Bestiary) StatsFor(cr entities.ChallengeRating) (StatRow, error) {
	row, ok := b.Stats[cr.Bucket()]
	if !ok {
		return StatRow{}, errors.TableIntegrityf("no stat row for challenge rating %q", cr)
	}
	return row, nil
}

// NamesFor returns the base noun pool for a type, falling back to the
// fallback type's pool for unknown types
func (b *Bestiary) NamesFor(t entities.MonsterType) []string {
	if pool := b.Names.ByType[t]; len(pool) > 0 {
		return pool
	}
	return b.Names.ByType[b.Names.FallbackType]
}

// LairSize returns the size key for a rating, DefaultLairSize when unlisted
func (b *Bestiary) LairSize(cr entities.ChallengeRating) string {
	if size, ok := b.Lairs.SizeByChallengeRating[cr.Bucket()]; ok {
		return size
	}
	return DefaultLairSize
}

// Terrain returns the lair terrain for an environment, DefaultTerrain's when
// the environment is unlisted
func (b *Bestiary) Terrain(env entities.Environment) Terrain {
	if t, ok := b.Lairs.Terrains[env]; ok {
		return t
	}
	return b.Lairs.Terrains[DefaultTerrain]
}

// Intelligence returns the intelligence level used for lair defenses
func (b *Bestiary) Intelligence(t entities.MonsterType) string {
	if level, ok := b.Lairs.Intelligence[t]; ok {
		return level
	}
	return b.Lairs.DefaultIntelligence
}

// EncounterModifier returns the encounter scaling for a rating,
// DefaultEncounterChallengeRating's when unlisted
func (b *Bestiary) EncounterModifier(cr entities.ChallengeRating) ChallengeModifier {
	if m, ok := b.Encounters.ChallengeRatings[cr.Bucket()]; ok {
		return m
	}
	return b.Encounters.ChallengeRatings[DefaultEncounterChallengeRating]
}
