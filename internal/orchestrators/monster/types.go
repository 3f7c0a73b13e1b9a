package monster

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// GenerateInput defines the request for generating monsters. Empty filter
// fields mean "any"; an empty algorithm means balanced.
type GenerateInput struct {
	ChallengeRating string
	Type            string
	Environment     string
	Count           int
	Algorithm       string
	Complexity      string
	IncludeTreasure bool
	IncludeLair     bool
}

// GenerateOutput defines the response for generating monsters
type GenerateOutput struct {
	Monsters []*entities.Monster
	// Filter is the normalized filter the monsters were generated under
	Filter entities.Filter
}
