package entities

import (
	"strconv"
	"strings"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

// Any is the wildcard accepted by every filter field
const Any = "any"

// ChallengeRating is a monster's difficulty bucket. The canonical values are
// "0" through "5" and "6+"; numeric ratings above six are accepted and fall
// into the "6+" bucket.
type ChallengeRating string

// Challenge ratings
const (
	CRAny   ChallengeRating = Any
	CR0     ChallengeRating = "0"
	CR1     ChallengeRating = "1"
	CR2     ChallengeRating = "2"
	CR3     ChallengeRating = "3"
	CR4     ChallengeRating = "4"
	CR5     ChallengeRating = "5"
	CR6Plus ChallengeRating = "6+"
)

// ChallengeRatings lists every bucket in ascending difficulty
var ChallengeRatings = []ChallengeRating{CR0, CR1, CR2, CR3, CR4, CR5, CR6Plus}

// DefaultChallengeRatings is the pool drawn from when the filter says "any"
var DefaultChallengeRatings = []ChallengeRating{CR0, CR1, CR2, CR3, CR4, CR5}

// ParseChallengeRating normalizes and validates a challenge rating string
func ParseChallengeRating(s string) (ChallengeRating, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == Any {
		return CRAny, nil
	}
	if s == string(CR6Plus) {
		return CR6Plus, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", errors.InvalidArgumentf("invalid challenge rating %q", s)
	}
	return ChallengeRating(strconv.Itoa(n)), nil
}

// IsAny reports whether the rating is the wildcard
func (c ChallengeRating) IsAny() bool {
	return c == CRAny
}

// Numeric returns the integer value of the rating; "6+" counts as 6
func (c ChallengeRating) Numeric() (int, bool) {
	if c == CR6Plus {
		return 6, true
	}
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Bucket maps the rating onto one of the seven stat table rows
func (c ChallengeRating) Bucket() ChallengeRating {
	n, ok := c.Numeric()
	if !ok {
		return c
	}
	if n >= 6 {
		return CR6Plus
	}
	return c
}

// MonsterType is a creature classification
type MonsterType string

// Monster types
const (
	TypeAny        MonsterType = Any
	TypeBeast      MonsterType = "beast"
	TypeUndead     MonsterType = "undead"
	TypeHumanoid   MonsterType = "humanoid"
	TypeDragon     MonsterType = "dragon"
	TypeFey        MonsterType = "fey"
	TypeFiend      MonsterType = "fiend"
	TypeConstruct  MonsterType = "construct"
	TypeElemental  MonsterType = "elemental"
	TypeGiant      MonsterType = "giant"
	TypeAberration MonsterType = "aberration"
)

// MonsterTypes lists every concrete type
var MonsterTypes = []MonsterType{
	TypeBeast, TypeUndead, TypeHumanoid, TypeDragon, TypeFey,
	TypeFiend, TypeConstruct, TypeElemental, TypeGiant, TypeAberration,
}

// ParseMonsterType normalizes and validates a monster type string
func ParseMonsterType(s string) (MonsterType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == Any {
		return TypeAny, nil
	}
	for _, t := range MonsterTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.InvalidArgumentf("invalid monster type %q", s)
}

// IsAny reports whether the type is the wildcard
func (t MonsterType) IsAny() bool {
	return t == TypeAny
}

// Environment is the terrain a monster is found in
type Environment string

// Environments
const (
	EnvironmentAny         Environment = Any
	EnvironmentDungeon     Environment = "dungeon"
	EnvironmentForest      Environment = "forest"
	EnvironmentSwamp       Environment = "swamp"
	EnvironmentMountain    Environment = "mountain"
	EnvironmentDesert      Environment = "desert"
	EnvironmentArctic      Environment = "arctic"
	EnvironmentCoastal     Environment = "coastal"
	EnvironmentUrban       Environment = "urban"
	EnvironmentUnderground Environment = "underground"
	EnvironmentPlanar      Environment = "planar"
)

// Environments lists every concrete environment
var Environments = []Environment{
	EnvironmentDungeon, EnvironmentForest, EnvironmentSwamp, EnvironmentMountain,
	EnvironmentDesert, EnvironmentArctic, EnvironmentCoastal, EnvironmentUrban,
	EnvironmentUnderground, EnvironmentPlanar,
}

// ParseEnvironment normalizes and validates an environment string
func ParseEnvironment(s string) (Environment, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == Any {
		return EnvironmentAny, nil
	}
	for _, e := range Environments {
		if string(e) == s {
			return e, nil
		}
	}
	return "", errors.InvalidArgumentf("invalid environment %q", s)
}

// IsAny reports whether the environment is the wildcard
func (e Environment) IsAny() bool {
	return e == EnvironmentAny
}

// Algorithm selects how each monster in a request is produced
type Algorithm string

// Algorithms
const (
	// AlgorithmBalanced tries a template 70% of the time
	AlgorithmBalanced Algorithm = "balanced"
	// AlgorithmTemplateBased always tries a template first
	AlgorithmTemplateBased Algorithm = "template-based"
	// AlgorithmRandom always synthesizes procedurally
	AlgorithmRandom Algorithm = "random"
)

// ParseAlgorithm defaults an empty value to balanced
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.TrimSpace(strings.ToLower(s))) {
	case "", AlgorithmBalanced:
		return AlgorithmBalanced, nil
	case AlgorithmTemplateBased:
		return AlgorithmTemplateBased, nil
	case AlgorithmRandom:
		return AlgorithmRandom, nil
	default:
		return "", errors.InvalidArgumentf("invalid algorithm %q", s)
	}
}

// Complexity controls how much extended data is attached to a monster
type Complexity string

// Complexity levels. ComplexityNone means the caller did not ask.
const (
	ComplexityNone     Complexity = ""
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// ParseComplexity accepts an empty value as ComplexityNone
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(strings.TrimSpace(strings.ToLower(s))) {
	case ComplexityNone:
		return ComplexityNone, nil
	case ComplexitySimple:
		return ComplexitySimple, nil
	case ComplexityModerate:
		return ComplexityModerate, nil
	case ComplexityComplex:
		return ComplexityComplex, nil
	default:
		return "", errors.InvalidArgumentf("invalid complexity %q", s)
	}
}

// IncludesEncounters reports whether encounter data should be generated
func (c Complexity) IncludesEncounters() bool {
	return c == ComplexityModerate || c == ComplexityComplex
}
