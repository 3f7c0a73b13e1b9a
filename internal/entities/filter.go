package entities

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

// DefaultCount is used when a filter does not say how many monsters to make
const DefaultCount = 1

// Filter narrows which monsters a generation request may produce
type Filter struct {
	ChallengeRating ChallengeRating `json:"challengeRating"`
	Type            MonsterType     `json:"type"`
	Environment     Environment     `json:"environment"`
	Count           int             `json:"count"`
}

// AnyFilter matches everything and produces a single monster
func AnyFilter() Filter {
	return Filter{
		ChallengeRating: CRAny,
		Type:            TypeAny,
		Environment:     EnvironmentAny,
		Count:           DefaultCount,
	}
}

// ParseFilter builds a typed filter from loose request values. Empty strings
// mean "any" and a zero count means DefaultCount.
func ParseFilter(challengeRating, monsterType, environment string, count int) (Filter, error) {
	vb := errors.NewValidationBuilder()

	cr, err := ParseChallengeRating(challengeRating)
	if err != nil {
		vb.InvalidField("challengeRating", errors.GetMessage(err))
	}

	t, err := ParseMonsterType(monsterType)
	if err != nil {
		vb.InvalidField("type", errors.GetMessage(err))
	}

	env, err := ParseEnvironment(environment)
	if err != nil {
		vb.InvalidField("environment", errors.GetMessage(err))
	}

	if count == 0 {
		count = DefaultCount
	}
	errors.ValidatePositive("count", count, vb)

	if err := vb.Build(); err != nil {
		return Filter{}, err
	}

	return Filter{
		ChallengeRating: cr,
		Type:            t,
		Environment:     env,
		Count:           count,
	}, nil
}
