// Package v20 implements the twentieth anniversary rules: the difficulty and
// botch dice resolver and the Generation-bound Blood Pool.
package v20

import (
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	"github.com/KirkDiggler/vtm-api/internal/rules"
)

const (
	MinDifficulty     = 2
	MaxDifficulty     = 10
	DefaultDifficulty = 6
	// ExceptionalThreshold is the net success count for an exceptional result
	ExceptionalThreshold = 5
	// DefaultMaxRolls bounds an extended roll when the caller gives no limit
	DefaultMaxRolls = 10
	soakDifficulty  = 6
)

// RollResult is the immutable outcome of one V20 pool roll. Successes is net
// of ones and never negative.
type RollResult struct {
	Dice             []int      `json:"dice"`
	Difficulty       int        `json:"difficulty"`
	Successes        int        `json:"successes"`
	Ones             int        `json:"ones"`
	Tens             int        `json:"tens"`
	SpecialtyRerolls []int      `json:"specialty_rerolls"`
	Result           ResultKind `json:"result"`
}

// ExtendedResult accumulates successes across repeated rolls
type ExtendedResult struct {
	Rolls          []*RollResult `json:"rolls"`
	TotalSuccesses int           `json:"total_successes"`
	Target         int           `json:"target"`
	Success        bool          `json:"success"`
	Botched        bool          `json:"botched"`
	RollsTaken     int           `json:"rolls_taken"`
}

// ResistedResult compares two rolls at the same difficulty
type ResistedResult struct {
	Attacker     *RollResult  `json:"attacker_roll"`
	Defender     *RollResult  `json:"defender_roll"`
	Winner       rules.Winner `json:"winner"`
	NetSuccesses int          `json:"net_successes"`
}

// DamageResult is a damage roll
type DamageResult struct {
	Roll        *RollResult `json:"roll"`
	DamageDealt int         `json:"damage_dealt"`
	DamageType  DamageType  `json:"damage_type"`
	Botched     bool        `json:"botched"`
}

// SoakResult is a soak roll. Roll is nil when there was no pool to soak with.
type SoakResult struct {
	Roll         *RollResult `json:"roll"`
	DamageSoaked int         `json:"damage_soaked"`
	CanSoak      bool        `json:"can_soak"`
}

// Resolver rolls V20 pools against a Source
type Resolver struct {
	src roller.Source
}

// NewResolver creates a resolver. A nil source selects the default roller.
func NewResolver(src roller.Source) *Resolver {
	if src == nil {
		src = roller.NewDefault()
	}
	return &Resolver{src: src}
}

// Roll resolves a pool. Difficulty is clamped into [2, 10]. With a specialty
// every ten earns one extra die. Willpower adds one automatic success that
// ones can still cancel.
func (r *Resolver) Roll(pool, difficulty int, specialty, willpower bool) *RollResult {
	pool = rules.FloorPool(pool)
	difficulty = rules.Clamp(difficulty, MinDifficulty, MaxDifficulty)

	res := &RollResult{
		Dice:             roller.RollN(r.src, pool),
		Difficulty:       difficulty,
		SpecialtyRerolls: []int{},
	}

	successes := 0
	for _, face := range res.Dice {
		if face >= difficulty {
			successes++
		}
		switch face {
		case 1:
			res.Ones++
		case 10:
			res.Tens++
		}
	}

	if specialty && res.Tens > 0 {
		res.SpecialtyRerolls = roller.RollN(r.src, res.Tens)
		for _, face := range res.SpecialtyRerolls {
			if face >= difficulty {
				successes++
			}
			if face == 1 {
				res.Ones++
			}
		}
	}

	if willpower {
		successes++
	}

	net := successes - res.Ones
	switch {
	case net <= 0 && res.Ones > 0 && successes == 0:
		res.Result = ResultBotch
	case net <= 0:
		res.Result = ResultFailure
	case net >= ExceptionalThreshold:
		res.Result = ResultExceptional
		res.Successes = net
	default:
		res.Result = ResultSuccess
		res.Successes = net
	}

	return res
}

// Extended rolls repeatedly until target successes accumulate, a botch
// aborts the attempt or maxRolls is reached. A botched roll is recorded but
// its successes are not counted.
func (r *Resolver) Extended(pool, difficulty, target, maxRolls int, specialty bool) *ExtendedResult {
	if maxRolls <= 0 {
		maxRolls = DefaultMaxRolls
	}

	res := &ExtendedResult{
		Rolls:  make([]*RollResult, 0, maxRolls),
		Target: target,
	}

	for i := 0; i < maxRolls; i++ {
		roll := r.Roll(pool, difficulty, specialty, false)
		res.Rolls = append(res.Rolls, roll)

		if roll.Result == ResultBotch {
			res.Botched = true
			break
		}

		res.TotalSuccesses += roll.Successes
		if res.TotalSuccesses >= target {
			break
		}
	}

	res.RollsTaken = len(res.Rolls)
	res.Success = res.TotalSuccesses >= target && !res.Botched
	return res
}

// Resisted rolls attacker then defender at the same difficulty
func (r *Resolver) Resisted(attackerPool, defenderPool, difficulty int, attackerSpecialty, defenderSpecialty bool) *ResistedResult {
	attacker := r.Roll(attackerPool, difficulty, attackerSpecialty, false)
	defender := r.Roll(defenderPool, difficulty, defenderSpecialty, false)

	winner, net := rules.Compare(attacker.Successes, defender.Successes)
	return &ResistedResult{
		Attacker:     attacker,
		Defender:     defender,
		Winner:       winner,
		NetSuccesses: net,
	}
}

// Damage rolls a damage pool. Each success is one health level of lethal or,
// when aggravated, aggravated damage.
func (r *Resolver) Damage(pool, difficulty int, aggravated bool) *DamageResult {
	roll := r.Roll(pool, difficulty, false, false)

	damageType := DamageLethal
	if aggravated {
		damageType = DamageAggravated
	}

	return &DamageResult{
		Roll:        roll,
		DamageDealt: roll.Successes,
		DamageType:  damageType,
		Botched:     roll.Result == ResultBotch,
	}
}

// Soak rolls Stamina against bashing damage and Fortitude against lethal or
// aggravated damage, always at difficulty 6
func (r *Resolver) Soak(stamina, fortitude int, damageType DamageType) *SoakResult {
	pool := fortitude
	if damageType == DamageBashing {
		pool = stamina
	}

	if pool <= 0 {
		return &SoakResult{CanSoak: false}
	}

	roll := r.Roll(pool, soakDifficulty, false, false)
	return &SoakResult{
		Roll:         roll,
		DamageSoaked: roll.Successes,
		CanSoak:      true,
	}
}
