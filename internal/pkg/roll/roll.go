// Package roll provides the dice and randomness primitives every generator
// shares. All randomness flows through a single rpg-toolkit dice.Roller so
// tests can script outcomes and production gets one consistent source.
package roll

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

// Roller draws dice, integers, percentages and choices from a dice.Roller
type Roller struct {
	dice dice.Roller
}

// New wraps r; a nil r uses the toolkit's crypto-backed default roller,
// which is safe for concurrent use.
func New(r dice.Roller) *Roller {
	if r == nil {
		r = dice.DefaultRoller
	}
	return &Roller{dice: r}
}

// Dice returns the sum of count independent rolls of a sides-sided die.
// A count of zero yields zero without rolling.
func (r *Roller) Dice(sides, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}
	if count < 0 {
		return 0, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	if sides < 1 {
		return 0, errors.InvalidArgumentf("dice must have at least one side, got %d", sides)
	}

	rolls, err := r.dice.RollN(count, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %dd%d", count, sides)
	}

	total := 0
	for _, v := range rolls {
		total += v
	}
	return total, nil
}

// Int returns a uniform integer in [minValue, maxValue]
func (r *Roller) Int(minValue, maxValue int) (int, error) {
	if maxValue < minValue {
		return 0, errors.TableIntegrityf("invalid range [%d, %d]", minValue, maxValue)
	}
	if maxValue == minValue {
		return minValue, nil
	}

	v, err := r.dice.Roll(maxValue - minValue + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll range")
	}
	return minValue + v - 1, nil
}

// Percent reports true with the given percent chance
func (r *Roller) Percent(chance int) (bool, error) {
	if chance <= 0 {
		return false, nil
	}
	if chance >= 100 {
		return true, nil
	}

	v, err := r.dice.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll percentile")
	}
	return v <= chance, nil
}

// Index returns a uniform index into a collection of length n
func (r *Roller) Index(n int) (int, error) {
	if n < 1 {
		return 0, errors.TableIntegrity("cannot choose from an empty pool")
	}
	return r.Int(0, n-1)
}

// Choice returns a uniformly chosen element of items
func Choice[T any](r *Roller, items []T) (T, error) {
	var zero T
	i, err := r.Index(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Sample returns up to n distinct elements of items in random order. The
// input slice is not modified.
func Sample[T any](r *Roller, items []T, n int) ([]T, error) {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []T{}, nil
	}

	pool := append(make([]T, 0, len(items)), items...)
	for i := 0; i < n; i++ {
		j, err := r.Int(i, len(pool)-1)
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}
