package tvm

import (
	"fmt"
	"strings"
)

// RoundingMode governs how RoundTo adjusts a value to fewer digits.
//
// There is no default mode stored anywhere: every rounding call takes one.
type RoundingMode int

const (
	// HalfUp rounds to nearest, ties away from zero (commercial rounding).
	HalfUp RoundingMode = iota
	// HalfDown rounds to nearest, ties toward zero.
	HalfDown
	// HalfEven rounds to nearest, ties to the even neighbour (banker's rounding).
	HalfEven
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// Floor rounds toward negative infinity.
	Floor
	// Ceiling rounds toward positive infinity.
	Ceiling
)

// RoundingModes lists every mode, in declaration order.
var RoundingModes = []RoundingMode{HalfUp, HalfDown, HalfEven, Up, Down, Floor, Ceiling}

func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "half_up"
	case HalfDown:
		return "half_down"
	case HalfEven:
		return "half_even"
	case Up:
		return "up"
	case Down:
		return "down"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// ParseRoundingMode parses a string into a RoundingMode.
// Both "half_even" and "HALF_EVEN" forms are accepted, as well as "bankers".
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "half_up":
		return HalfUp, nil
	case "half_down":
		return HalfDown, nil
	case "half_even", "bankers":
		return HalfEven, nil
	case "up":
		return Up, nil
	case "down", "truncate":
		return Down, nil
	case "floor":
		return Floor, nil
	case "ceiling", "ceil":
		return Ceiling, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode: %q", s)
	}
}
