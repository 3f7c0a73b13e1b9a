package entities

// MonsterSource records which strategy produced a monster
type MonsterSource string

// Monster sources
const (
	SourceTemplate   MonsterSource = "template"
	SourceProcedural MonsterSource = "procedural"
)

// Monster is a complete Labyrinth Lord stat block
type Monster struct {
	Name             string          `json:"name"`
	Type             MonsterType     `json:"type"`
	Environment      Environment     `json:"environment"`
	ChallengeRating  ChallengeRating `json:"challengeRating"`
	Stats            Stats           `json:"stats"`
	Description      string          `json:"description"`
	SpecialAbilities []string        `json:"specialAbilities"`
	Source           MonsterSource   `json:"source,omitempty"`

	Encounters *Encounters `json:"encounters,omitempty"`
	Treasure   *Treasure   `json:"treasure,omitempty"`
	Lair       *Lair       `json:"lair,omitempty"`
}

// Stats holds the combat block
type Stats struct {
	ArmorClass int    `json:"ac"`
	HitDice    string `json:"hd"`
	HitPoints  int    `json:"hp"`
	Movement   string `json:"movement"`
	Attacks    string `json:"attacks"`
	Damage     string `json:"damage"`
	Save       string `json:"save"`
	Morale     int    `json:"morale"`
	Experience int    `json:"xp"`
}

// Encounters describes how many appear and how often they are home
type Encounters struct {
	NumberAppearing string `json:"numberAppearing"`
	WildEncounter   string `json:"wildEncounter"`
	LairChance      int    `json:"lairChance"`
}

// Treasure is the hoard carried or guarded by the monster
type Treasure struct {
	Individual string         `json:"individual"`
	Lair       string         `json:"lair"`
	Coins      map[string]int `json:"coins"`
	Gems       []string       `json:"gems"`
	MagicItems []string       `json:"magicItems"`
}

// Lair describes where the monster lives
type Lair struct {
	Description string   `json:"description"`
	Terrain     string   `json:"terrain"`
	Size        string   `json:"size"`
	Defenses    []string `json:"defenses"`
	Features    []string `json:"features"`
}

// Clone returns a deep copy so callers can never alias another monster's slices
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}

	out := *m
	out.SpecialAbilities = cloneStrings(m.SpecialAbilities)

	if m.Encounters != nil {
		e := *m.Encounters
		out.Encounters = &e
	}

	if m.Treasure != nil {
		t := *m.Treasure
		t.Gems = cloneStrings(m.Treasure.Gems)
		t.MagicItems = cloneStrings(m.Treasure.MagicItems)
		if m.Treasure.Coins != nil {
			t.Coins = make(map[string]int, len(m.Treasure.Coins))
			for k, v := range m.Treasure.Coins {
				t.Coins[k] = v
			}
		}
		out.Treasure = &t
	}

	if m.Lair != nil {
		l := *m.Lair
		l.Defenses = cloneStrings(m.Lair.Defenses)
		l.Features = cloneStrings(m.Lair.Features)
		out.Lair = &l
	}

	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}
