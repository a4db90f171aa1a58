package v20

import "fmt"

const (
	defaultMaxPool  = 10
	defaultPerTurn  = 1
	aggravatedCost  = 5
	superficialCost = 1
	// DefaultGeneration is assumed for healing when none is known
	DefaultGeneration = 13
)

var maxPoolByGeneration = map[int]int{
	3: 100, 4: 50, 5: 40, 6: 30, 7: 20, 8: 15, 9: 14, 10: 13, 11: 12, 12: 11,
	13: 10, 14: 10, 15: 10,
}

var perTurnByGeneration = map[int]int{
	3: 20, 4: 10, 5: 8, 6: 6, 7: 5, 8: 4, 9: 3, 10: 2,
	11: 1, 12: 1, 13: 1, 14: 1, 15: 1,
}

// BloodPoolChange reports a transition of the Blood Pool. Callers persist New
// themselves.
type BloodPoolChange struct {
	Old     int    `json:"old_pool"`
	New     int    `json:"new_pool"`
	Max     int    `json:"max_pool"`
	Change  int    `json:"change"`
	Message string `json:"message"`
}

// HealResult reports blood spent on healing
type HealResult struct {
	Success bool   `json:"success"`
	Healed  int    `json:"healed"`
	Cost    int    `json:"cost"`
	Message string `json:"message"`
}

// BoostResult reports blood spent raising a Physical attribute
type BoostResult struct {
	Success bool   `json:"success"`
	Boost   int    `json:"boost"`
	Cost    int    `json:"cost"`
	Message string `json:"message"`
}

// MaxBloodPool is the pool size for generation, 10 when unlisted
func MaxBloodPool(generation int) int {
	if pool, ok := maxPoolByGeneration[generation]; ok {
		return pool
	}
	return defaultMaxPool
}

// BloodPerTurn is how much blood generation may spend in one turn, 1 when
// unlisted
func BloodPerTurn(generation int) int {
	if n, ok := perTurnByGeneration[generation]; ok {
		return n
	}
	return defaultPerTurn
}

// SpendBlood removes amount from the pool. Spending over the per-turn limit
// or more than the pool holds leaves the pool untouched.
func SpendBlood(current, amount, maxPool, generation int) BloodPoolChange {
	perTurn := BloodPerTurn(generation)
	unchanged := BloodPoolChange{Old: current, New: current, Max: maxPool}

	if amount > perTurn {
		unchanged.Message = fmt.Sprintf("Cannot spend more than %d blood per turn.", perTurn)
		return unchanged
	}
	if amount > current {
		unchanged.Message = "Not enough blood!"
		return unchanged
	}

	next := current - amount

	var msg string
	switch {
	case next == 0:
		msg = "Blood pool empty! Must feed immediately or enter torpor."
	case next <= 2:
		msg = fmt.Sprintf("Blood pool critically low (%d). Consider feeding.", next)
	default:
		msg = fmt.Sprintf("Spent %d blood. Pool now at %d.", amount, next)
	}

	return BloodPoolChange{
		Old:     current,
		New:     next,
		Max:     maxPool,
		Change:  -amount,
		Message: msg,
	}
}

// GainBlood adds amount up to maxPool and reports the actual gain
func GainBlood(current, amount, maxPool int) BloodPoolChange {
	next := min(current+amount, maxPool)
	gained := next - current

	msg := fmt.Sprintf("Gained %d blood. Pool now at %d.", gained, next)
	if gained < amount {
		msg = fmt.Sprintf("Gained %d blood (at maximum).", gained)
	}

	return BloodPoolChange{
		Old:     current,
		New:     next,
		Max:     maxPool,
		Change:  gained,
		Message: msg,
	}
}

// HealCost is the blood needed per health level of damageType
func HealCost(damageType DamageType) int {
	if damageType == DamageAggravated {
		return aggravatedCost
	}
	return superficialCost
}

// HealDamage spends blood to mend amount health levels. Bashing and lethal
// healing is limited by the per-turn spend; aggravated healing is not, but
// costs five per level.
func HealDamage(currentPool int, damageType DamageType, amount, generation int) HealResult {
	cost := HealCost(damageType)
	total := cost * amount
	perTurn := BloodPerTurn(generation)

	if total > currentPool {
		return HealResult{
			Message: fmt.Sprintf("Not enough blood to heal. Need %d, have %d.", total, currentPool),
		}
	}

	if damageType != DamageAggravated && total > perTurn {
		healable := perTurn / cost
		return HealResult{
			Success: true,
			Healed:  healable,
			Cost:    healable * cost,
			Message: fmt.Sprintf("Healed %d %s damage. Can heal more next turn.", healable, damageType),
		}
	}

	return HealResult{
		Success: true,
		Healed:  amount,
		Cost:    total,
		Message: fmt.Sprintf("Healed %d %s damage for %d blood.", amount, damageType, total),
	}
}

// BoostAttribute spends amount blood to raise attribute for one turn
func BoostAttribute(currentPool int, attribute Attribute, amount, generation int) BoostResult {
	perTurn := BloodPerTurn(generation)

	if amount > perTurn {
		return BoostResult{Message: fmt.Sprintf("Cannot spend more than %d blood per turn.", perTurn)}
	}
	if amount > currentPool {
		return BoostResult{Message: "Not enough blood."}
	}

	return BoostResult{
		Success: true,
		Boost:   amount,
		Cost:    amount,
		Message: fmt.Sprintf("Boosted %s by %d for one turn.", attribute, amount),
	}
}
