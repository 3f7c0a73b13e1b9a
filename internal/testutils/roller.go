package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var (
	_ dice.Roller = (*ScriptedRoller)(nil)
	_ dice.Roller = ConstantRoller{}
)

// ScriptedRoller implements dice.Roller with predetermined results, consumed
// in order. It fails when the script runs out or a value does not fit the die.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	index int
}

// NewScriptedRoller creates a roller that returns rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Then appends more results to the script
func (s *ScriptedRoller) Then(rolls ...int) *ScriptedRoller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, rolls...)
	return s
}

// Remaining returns how many scripted results are left
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.index
}

// Roll implements dice.Roller
func (s *ScriptedRoller) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.rolls) {
		return 0, fmt.Errorf("no more scripted rolls (used %d of %d)", s.index, len(s.rolls))
	}

	v := s.rolls[s.index]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roll %d at position %d does not fit d%d", v, s.index, size)
	}
	s.index++
	return v, nil
}

// RollN implements dice.Roller
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ConstantRoller always rolls Value, capped at the die size. A Value below one
// always rolls the maximum face.
type ConstantRoller struct {
	Value int
}

// Roll implements dice.Roller
func (c ConstantRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	if c.Value < 1 || c.Value > size {
		return size, nil
	}
	return c.Value, nil
}

// RollN implements dice.Roller
func (c ConstantRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := c.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
