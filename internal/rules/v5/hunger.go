package v5

import "fmt"

const (
	MinHunger = 0
	MaxHunger = 5
)

// HungerChange reports a transition on the Hunger track. Callers persist New
// themselves.
type HungerChange struct {
	Old     int    `json:"old_hunger"`
	New     int    `json:"new_hunger"`
	Change  int    `json:"change"`
	Message string `json:"message"`
}

// AtMaximum reports whether the new value risks a Hunger frenzy
func (c HungerChange) AtMaximum() bool {
	return IsStarving(c.New)
}

// IncreaseHunger raises Hunger by amount, capped at MaxHunger
func IncreaseHunger(current, amount int) HungerChange {
	next := min(current+amount, MaxHunger)

	msg := fmt.Sprintf("Hunger increased to %d", next)
	if next >= MaxHunger {
		msg = "Hunger at maximum! Risk of frenzy!"
	}

	return HungerChange{
		Old:     current,
		New:     next,
		Change:  next - current,
		Message: msg,
	}
}

// DecreaseHunger applies feeding. Blood Potency decides what still nourishes:
// animals stop working at 2, bagged blood drops to one point at 3, and from 4
// Hunger cannot fall below 2 without draining. Animal blood never takes
// Hunger below 1. Change is negative for a reduction.
func DecreaseHunger(current, amount, bloodPotency int, isAnimal, isBagged bool) HungerChange {
	if bloodPotency >= 2 && isAnimal {
		return HungerChange{
			Old:     current,
			New:     current,
			Message: "Animal blood no longer sustains you.",
		}
	}

	floor := MinHunger
	if bloodPotency >= 3 && isBagged {
		amount = 1
	}
	if bloodPotency >= 4 {
		floor = 2
	}
	if isAnimal {
		floor = max(floor, 1)
	}

	next := max(current-amount, floor)
	reduced := current - next

	var msg string
	switch {
	case reduced == 0:
		msg = "Feeding provides no relief."
	case next == 0:
		msg = "Hunger completely sated."
	default:
		msg = fmt.Sprintf("Hunger reduced to %d", next)
	}

	return HungerChange{
		Old:     current,
		New:     next,
		Change:  -reduced,
		Message: msg,
	}
}

// SlakeHunger drains a vessel. A kill always sates fully. Draining without a
// kill leaves Hunger at 1 from Blood Potency 4. Change is the amount slaked.
func SlakeHunger(current int, kill bool, bloodPotency int) HungerChange {
	next := 0
	msg := "Hunger fully sated from draining."

	switch {
	case kill:
		msg = "Hunger fully sated. The victim is dead."
	case bloodPotency >= 4:
		next = 1
		msg = "Hunger reduced to 1. Killing required to fully sate."
	}

	return HungerChange{
		Old:     current,
		New:     next,
		Change:  current - next,
		Message: msg,
	}
}

// IsStarving reports whether Hunger is at its maximum
func IsStarving(hunger int) bool {
	return hunger >= MaxHunger
}

// HungerFrenzyDifficulty is the base difficulty to resist a Hunger frenzy
func HungerFrenzyDifficulty(hunger int) int {
	switch {
	case hunger <= 1:
		return 2
	case hunger <= 3:
		return 3
	case hunger == 4:
		return 4
	default:
		return 5
	}
}
