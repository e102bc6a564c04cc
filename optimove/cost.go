package optimove

import (
	"math"

	"github.com/bdwalton/termcore/capability"
)

const (
	// LONG_DURATION marks a path that can't be used.
	LONG_DURATION = math.MaxInt32
	// MOVE_LIMIT is the longest relative step sequence considered
	// while some form of absolute addressing exists.
	MOVE_LIMIT = 7
	// CAP_OVERHEAD is charged once per capability emitted.
	CAP_OVERHEAD = 1
)

// CharDuration is the time to send one byte at baud, in tenths of a
// millisecond, assuming 9 bits per character.
func CharDuration(baud int) int {
	if baud <= 0 {
		return 1
	}
	d := 9 * 1000 * 10 / baud
	if d <= 0 {
		return 1
	}
	return d
}

type costModel struct {
	charDur int
}

// capCost prices one emitted capability. Padding delays count at
// their requested length.
func (m costModel) capCost(seq string) int {
	plain, delay := capability.Padding(seq, 1)
	if plain == "" {
		return LONG_DURATION
	}
	return len(plain)*m.charDur + delay + CAP_OVERHEAD
}

// printCost prices n plain characters.
func (m costModel) printCost(n int) int {
	return n * m.charDur
}

func add(costs ...int) int {
	total := 0
	for _, c := range costs {
		if c >= LONG_DURATION {
			return LONG_DURATION
		}
		total += c
		if total >= LONG_DURATION {
			return LONG_DURATION
		}
	}
	return total
}

// Cost prices capability c instantiated with params at baud. Absent
// capabilities cost LONG_DURATION.
func (e *Env) Cost(c Cap, baud int, params ...int) int {
	if !c.usable() {
		return LONG_DURATION
	}
	m := costModel{charDur: CharDuration(baud)}
	return m.capCost(e.instantiate(c, params...))
}

// CapCost prices an already instantiated sequence at baud.
func CapCost(seq string, baud int) int {
	return costModel{charDur: CharDuration(baud)}.capCost(seq)
}
