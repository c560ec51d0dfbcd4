// Package dice provides the random rolls behind combat, encounters, and
// reward ranges, backed by rpg-toolkit dice so tests can swap in a fixed
// roller.
package dice

import (
	"fmt"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller produces uniform random integers for game rules
type Roller interface {
	// Roll returns a uniform random integer in [1, sides]
	Roll(sides int) int

	// RollRange returns a uniform random integer in [low, high]
	RollRange(low, high int) int

	// Chance returns true with probability percent/100
	Chance(percent int) bool
}

// ToolkitRoller implements Roller using rpg-toolkit dice
type ToolkitRoller struct{}

// New returns a Roller backed by rpg-toolkit dice
func New() Roller {
	return &ToolkitRoller{}
}

// Roll returns a uniform random integer in [1, sides]
func (r *ToolkitRoller) Roll(sides int) int {
	if sides <= 1 {
		return 1
	}
	roll, err := toolkitdice.NewRoll(1, sides)
	if err != nil {
		// NewRoll only fails on non-positive arguments, which are
		// guarded above
		panic(fmt.Sprintf("dice: roll 1d%d: %v", sides, err))
	}
	return roll.GetValue()
}

// RollRange returns a uniform random integer in [low, high]
func (r *ToolkitRoller) RollRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.Roll(high-low+1) - 1
}

// Chance returns true with probability percent/100
func (r *ToolkitRoller) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Roll(100) <= percent
}

// Fixed is a Roller that replays a scripted sequence of raw rolls, for
// tests. Each Roll/RollRange/Chance call consumes one value; when the
// script runs out it repeats the last value.
type Fixed struct {
	mu    sync.Mutex
	rolls []int
	pos   int
}

// NewFixed creates a Fixed roller replaying the given 1-based rolls
func NewFixed(rolls ...int) *Fixed {
	if len(rolls) == 0 {
		rolls = []int{1}
	}
	return &Fixed{rolls: rolls}
}

func (f *Fixed) next() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.rolls[f.pos]
	if f.pos < len(f.rolls)-1 {
		f.pos++
	}
	return v
}

// Roll returns the next scripted value clamped to [1, sides]
func (f *Fixed) Roll(sides int) int {
	v := f.next()
	if v < 1 {
		return 1
	}
	if v > sides {
		return sides
	}
	return v
}

// RollRange returns the next scripted value clamped to [low, high]
func (f *Fixed) RollRange(low, high int) int {
	v := low + f.next() - 1
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Chance consumes one scripted value and succeeds when it is <= percent
func (f *Fixed) Chance(percent int) bool {
	return f.next() <= percent
}
