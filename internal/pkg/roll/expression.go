package roll

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// HitDieSides is the die size used when an expression names no size
	HitDieSides = 8
	// DefaultHitPoints is returned when a hit dice expression cannot be read
	DefaultHitPoints = 4
)

// expressionPattern reads a leading "N", "NdS", "N+M", "N-M" or "NdS+M".
// Trailing text is ignored so "6+" reads as six dice.
var expressionPattern = regexp.MustCompile(`^\s*(\d+)(?:\s*d\s*(\d+))?(?:\s*([+-])\s*(\d+))?`)

// Expression is a parsed dice expression
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseExpression reads a dice or hit dice expression. Expressions without a
// die size use eight-sided dice. ok is false when nothing could be read.
func ParseExpression(expr string) (Expression, bool) {
	m := expressionPattern.FindStringSubmatch(strings.ToLower(expr))
	if m == nil {
		return Expression{}, false
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Expression{}, false
	}

	e := Expression{Count: count, Sides: HitDieSides}
	if m[2] != "" {
		sides, err := strconv.Atoi(m[2])
		if err != nil || sides < 1 {
			return Expression{}, false
		}
		e.Sides = sides
	}

	if m[4] != "" {
		mod, err := strconv.Atoi(m[4])
		if err != nil {
			return Expression{}, false
		}
		if m[3] == "-" {
			mod = -mod
		}
		e.Modifier = mod
	}

	return e, true
}

// String renders the expression in NdS+M form
func (e Expression) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", e.Count, e.Sides)
	switch {
	case e.Modifier > 0:
		fmt.Fprintf(&b, "+%d", e.Modifier)
	case e.Modifier < 0:
		fmt.Fprintf(&b, "%d", e.Modifier)
	}
	return b.String()
}

// Evaluate rolls the expression
func (r *Roller) Evaluate(e Expression) (int, error) {
	total, err := r.Dice(e.Sides, e.Count)
	if err != nil {
		return 0, err
	}
	return total + e.Modifier, nil
}

// HitPoints rolls hit points for a hit dice expression. An unreadable
// expression yields fallback without rolling. The result is never below one.
func (r *Roller) HitPoints(hitDice string, fallback int) (int, error) {
	hp := fallback

	if e, ok := ParseExpression(hitDice); ok {
		v, err := r.Evaluate(e)
		if err != nil {
			return 0, err
		}
		hp = v
	}

	if hp < 1 {
		hp = 1
	}
	return hp, nil
}
