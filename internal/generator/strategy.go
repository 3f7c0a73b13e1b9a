package generator

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// Strategy is how a single trial produces its monster
type Strategy int

// Strategies
const (
	// StrategyTemplate instantiates a matching template, falling back to
	// procedural synthesis when nothing matches
	StrategyTemplate Strategy = iota + 1
	// StrategyProcedural always synthesizes
	StrategyProcedural
)

func (s Strategy) String() string {
	switch s {
	case StrategyTemplate:
		return "template"
	case StrategyProcedural:
		return "procedural"
	default:
		return "unknown"
	}
}

// Selector picks the strategy for a balanced trial
type Selector interface {
	Select() (Strategy, error)
}

// ChanceSelector picks StrategyTemplate with a fixed percent chance
type ChanceSelector struct {
	roller *roll.Roller
	chance int
}

// NewChanceSelector creates a selector that tries templates chance percent
// of the time
func NewChanceSelector(r *roll.Roller, chance int) *ChanceSelector {
	return &ChanceSelector{roller: r, chance: chance}
}

// Select implements Selector
func (c *ChanceSelector) Select() (Strategy, error) {
	hit, err := c.roller.Percent(c.chance)
	if err != nil {
		return 0, err
	}
	if hit {
		return StrategyTemplate, nil
	}
	return StrategyProcedural, nil
}

// FixedSelector always returns the same strategy
type FixedSelector Strategy

// Select implements Selector
func (f FixedSelector) Select() (Strategy, error) {
	return Strategy(f), nil
}

// strategyFor resolves the algorithm override; only balanced trials consult
// the selector
func (g *Generator) strategyFor(alg entities.Algorithm) (Strategy, error) {
	switch alg {
	case entities.AlgorithmRandom:
		return StrategyProcedural, nil
	case entities.AlgorithmTemplateBased:
		return StrategyTemplate, nil
	default:
		return g.selector.Select()
	}
}
