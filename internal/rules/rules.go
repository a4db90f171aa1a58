// Package rules holds the pieces shared by the V5 and V20 resolvers.
//
// The rules packages are pure: they take plain numbers, draw faces from a
// roller.Source and return result records. They never log, persist or touch
// the network.
package rules

import "fmt"

// Winner names the side that prevailed in an opposed roll
type Winner int

const (
	WinnerTie Winner = iota
	WinnerAttacker
	WinnerDefender
)

var winnerNames = map[Winner]string{
	WinnerTie:      "tie",
	WinnerAttacker: "attacker",
	WinnerDefender: "defender",
}

func (w Winner) String() string {
	if name, ok := winnerNames[w]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *Winner) UnmarshalText(text []byte) error {
	for k, v := range winnerNames {
		if v == string(text) {
			*w = k
			return nil
		}
	}
	return fmt.Errorf("unknown winner %q", text)
}

// Compare decides an opposed roll. The margin is the absolute difference and
// is zero on a tie.
func Compare(attacker, defender int) (Winner, int) {
	switch {
	case attacker > defender:
		return WinnerAttacker, attacker - defender
	case defender > attacker:
		return WinnerDefender, defender - attacker
	default:
		return WinnerTie, 0
	}
}

// FloorPool normalizes a pool so that at least one die is always rolled
func FloorPool(pool int) int {
	if pool <= 0 {
		return 1
	}
	return pool
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
