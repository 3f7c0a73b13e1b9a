package bestiary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

const (
	minMorale = 2
	maxMorale = 12
)

// Fallbacks for values a table does not list
const (
	DefaultLairSize                 = "medium"
	DefaultTerrain                  = entities.EnvironmentDungeon
	DefaultEncounterChallengeRating = entities.CR3
)

type problems []string

func (p *problems) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p *problems) checkRange(name string, r Range) {
	if !r.Valid() {
		p.add("%s: min %d exceeds max %d", name, r.Min, r.Max)
	}
}

func (p *problems) checkPool(name string, items []string) {
	if len(items) == 0 {
		p.add("%s: empty pool", name)
	}
}

func (p *problems) checkChance(name string, v int) {
	if v < 0 || v > 100 {
		p.add("%s: chance %d outside 0-100", name, v)
	}
}

// Validate checks the tables for anything that would make generation fail
// or break difficulty scaling. All problems are reported together.
func (b *Bestiary) Validate() error {
	var p problems

	b.validateStats(&p)
	b.validateGrammar(&p)
	b.validateTemplates(&p)
	b.validateEncounters(&p)
	b.validateTreasure(&p)
	b.validateLairs(&p)

	if len(p) > 0 {
		sort.Strings(p)
		return errors.TableIntegrityf("invalid bestiary: %s", strings.Join(p, "; "))
	}
	return nil
}

func average(expr string) (float64, bool) {
	e, ok := roll.ParseExpression(expr)
	if !ok {
		return 0, false
	}
	return float64(e.Count)*float64(e.Sides+1)/2 + float64(e.Modifier), true
}

func (b *Bestiary) validateStats(p *problems) {
	var prev *StatRow
	var prevHD, prevDamage float64

	for _, cr := range entities.ChallengeRatings {
		row, ok := b.Stats[cr]
		if !ok {
			p.add("stats: missing row for challenge rating %q", cr)
			prev = nil
			continue
		}

		name := fmt.Sprintf("stats[%s]", cr)
		p.checkRange(name+".armor_class", row.ArmorClass)
		p.checkRange(name+".morale", row.Morale)
		p.checkRange(name+".experience", row.Experience)
		if row.Morale.Min < minMorale || row.Morale.Max > maxMorale {
			p.add("%s.morale: outside %d-%d", name, minMorale, maxMorale)
		}
		if row.BaseHitPoints < 1 {
			p.add("%s.base_hit_points: must be positive", name)
		}
		if row.Attacks == "" || row.Save == "" {
			p.add("%s: attacks and save are required", name)
		}

		hd, ok := average(row.HitDice)
		if !ok {
			p.add("%s.hit_dice: %q is not a dice expression", name, row.HitDice)
		}
		damage, dok := average(row.Damage)
		if !dok {
			p.add("%s.damage: %q is not a dice expression", name, row.Damage)
		}

		if prev != nil {
			if row.ArmorClass.Max > prev.ArmorClass.Max {
				p.add("%s.armor_class: ceiling rises with challenge rating", name)
			}
			if row.Morale.Min < prev.Morale.Min || row.Morale.Max < prev.Morale.Max {
				p.add("%s.morale: falls with challenge rating", name)
			}
			if row.Experience.Min < prev.Experience.Min || row.Experience.Max < prev.Experience.Max {
				p.add("%s.experience: falls with challenge rating", name)
			}
			if row.BaseHitPoints < prev.BaseHitPoints || (ok && hd < prevHD) {
				p.add("%s: hit points fall with challenge rating", name)
			}
			if dok && damage < prevDamage {
				p.add("%s.damage: average falls with challenge rating", name)
			}
		}

		r := row
		prev = &r
		prevHD, prevDamage = hd, damage
	}

	p.checkRange("movement.ground", b.Movement.Ground)
	p.checkRange("movement.encounter", b.Movement.Encounter)
	if b.Movement.Ground.Min < 1 || b.Movement.Encounter.Min < 1 {
		p.add("movement: speeds must be positive")
	}
}

func (b *Bestiary) validateGrammar(p *problems) {
	p.checkChance("names.prefix_chance", b.Names.PrefixChance)
	p.checkChance("names.suffix_chance", b.Names.SuffixChance)
	p.checkPool("names.prefixes", b.Names.Prefixes)
	p.checkPool("names.suffixes", b.Names.Suffixes)
	p.checkPool("names.by_type[fallback]", b.Names.ByType[b.Names.FallbackType])
	for t, pool := range b.Names.ByType {
		p.checkPool(fmt.Sprintf("names.by_type[%s]", t), pool)
	}

	p.checkPool("abilities.pool", b.Abilities.Pool)
	if b.Abilities.Max < 1 {
		p.add("abilities.max: must be positive")
	}

	p.checkPool("descriptions.descriptors", b.Descriptions.Descriptors)
	p.checkPool("descriptions.templates", b.Descriptions.Templates)
}

func (b *Bestiary) validateTemplates(p *problems) {
	for i, t := range b.Templates {
		name := fmt.Sprintf("templates[%d]", i)
		if t.Name == "" {
			p.add("%s: name is required", name)
		} else {
			name = fmt.Sprintf("templates[%s]", t.Name)
		}

		if mt, err := entities.ParseMonsterType(string(t.Type)); err != nil || mt.IsAny() {
			p.add("%s: unknown type %q", name, t.Type)
		}
		if env, err := entities.ParseEnvironment(string(t.Environment)); err != nil || env.IsAny() {
			p.add("%s: unknown environment %q", name, t.Environment)
		}
		if cr, err := entities.ParseChallengeRating(string(t.ChallengeRating)); err != nil || cr.IsAny() || cr != t.ChallengeRating {
			p.add("%s: unknown challenge rating %q", name, t.ChallengeRating)
		}
		if t.Morale < minMorale || t.Morale > maxMorale {
			p.add("%s: morale %d outside %d-%d", name, t.Morale, minMorale, maxMorale)
		}
		if dupes := duplicates(t.SpecialAbilities); len(dupes) > 0 {
			p.add("%s: duplicate abilities %v", name, dupes)
		}
	}
}

func (b *Bestiary) validateEncounters(p *problems) {
	e := b.Encounters

	known := func(name string, options []string) {
		p.checkPool(name, options)
		for _, o := range options {
			if _, ok := e.Structures[o]; !ok {
				p.add("%s: unknown structure %q", name, o)
			}
		}
	}

	for name, s := range e.Structures {
		if s.NumberAppearing == "" || s.WildEncounter == "" {
			p.add("encounters.structures[%s]: dice expressions are required", name)
		}
		p.checkChance(fmt.Sprintf("encounters.structures[%s].lair_chance", name), s.LairChance)
	}
	for t, behaviours := range e.ByType {
		for behaviour, options := range behaviours {
			known(fmt.Sprintf("encounters.by_type[%s][%s]", t, behaviour), options)
		}
	}
	known("encounters.fallback", e.Fallback)
	for i, w := range e.AbilityWeights {
		p.checkPool(fmt.Sprintf("encounters.ability_weights[%d].abilities", i), w.Abilities)
		for option, weight := range w.Weights {
			if weight < 1 {
				p.add("encounters.ability_weights[%d]: weight for %q must be positive", i, option)
			}
		}
	}
	for _, cr := range entities.ChallengeRatings {
		m, ok := e.ChallengeRatings[cr]
		if !ok {
			p.add("encounters.challenge_ratings: missing %q", cr)
			continue
		}
		if m.Multiplier <= 0 {
			p.add("encounters.challenge_ratings[%s]: multiplier must be positive", cr)
		}
	}
}

func (b *Bestiary) validateTreasure(p *problems) {
	t := b.Treasure

	p.checkChance("treasure.coin_chance", t.CoinChance)
	p.checkPool("treasure.denominations", t.Denominations)
	p.checkPool("treasure.order", t.Order)
	if _, ok := t.Types[t.FallbackType]; !ok {
		p.add("treasure.fallback_type: %q has no table", t.FallbackType)
	}

	for letter, tt := range t.Types {
		name := fmt.Sprintf("treasure.types[%s]", letter)
		p.checkChance(name+".gems", tt.Gems)
		p.checkChance(name+".magic_items", tt.MagicItems)
		for coin, r := range tt.Coins {
			p.checkRange(fmt.Sprintf("%s.coins[%s]", name, coin), r)
			if !contains(t.Denominations, coin) {
				p.add("%s: unknown denomination %q", name, coin)
			}
		}
	}

	for _, cr := range entities.ChallengeRatings {
		letter, ok := t.LairByChallengeRating[cr]
		if !ok {
			p.add("treasure.lair_by_challenge_rating: missing %q", cr)
		} else if !contains(t.Order, letter) {
			p.add("treasure.lair_by_challenge_rating[%s]: %q is not in the order", cr, letter)
		}
		if _, ok := t.IndividualByChallengeRating[cr]; !ok {
			p.add("treasure.individual_by_challenge_rating: missing %q", cr)
		}
	}
	for coin, r := range t.IndividualCoins {
		p.checkRange(fmt.Sprintf("treasure.individual_coins[%s]", coin), r)
	}

	p.checkRange("treasure.gems.count", t.Gems.Count)
	p.checkPool("treasure.gems.names", t.Gems.Names)
	if len(t.Gems.Values) == 0 {
		p.add("treasure.gems.values: empty pool")
	}
	p.checkRange("treasure.magic_items.count", t.MagicItems.Count)
	p.checkPool("treasure.magic_items.kinds", t.MagicItems.Kinds)
}

func (b *Bestiary) validateLairs(p *problems) {
	l := b.Lairs

	for _, cr := range entities.ChallengeRatings {
		size, ok := l.SizeByChallengeRating[cr]
		if !ok {
			p.add("lairs.size_by_challenge_rating: missing %q", cr)
			continue
		}
		if _, ok := l.Sizes[size]; !ok {
			p.add("lairs.size_by_challenge_rating[%s]: unknown size %q", cr, size)
		}
	}
	if _, ok := l.Sizes[DefaultLairSize]; !ok {
		p.add("lairs.sizes: missing default size %q", DefaultLairSize)
	}

	for _, env := range entities.Environments {
		terrain, ok := l.Terrains[env]
		if !ok {
			p.add("lairs.terrains: missing %q", env)
			continue
		}
		if terrain.Base == "" {
			p.add("lairs.terrains[%s].base: required", env)
		}
		p.checkPool(fmt.Sprintf("lairs.terrains[%s].features", env), terrain.Features)
		p.checkPool(fmt.Sprintf("lairs.terrains[%s].defenses", env), terrain.Defenses)
	}

	if _, ok := l.IntelligenceDefenses[l.DefaultIntelligence]; !ok {
		p.add("lairs.default_intelligence: %q has no defenses", l.DefaultIntelligence)
	}
	for t, level := range l.Intelligence {
		if _, ok := l.IntelligenceDefenses[level]; !ok {
			p.add("lairs.intelligence[%s]: %q has no defenses", t, level)
		}
	}
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func duplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	var dupes []string
	for _, item := range items {
		if seen[item] {
			dupes = append(dupes, item)
		}
		seen[item] = true
	}
	return dupes
}
