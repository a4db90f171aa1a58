// Package v5 implements the fifth edition rules: the Hunger dice resolver,
// the Hunger track, Blood Potency, Rouse Checks and Frenzy.
package v5

import (
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	"github.com/KirkDiggler/vtm-api/internal/rules"
)

const (
	// SuccessThreshold is the lowest face that counts as a success
	SuccessThreshold = 6
	// CriticalBonus is added per pair of tens on top of their base successes
	CriticalBonus = 2
)

// RollResult is the immutable outcome of one V5 pool roll. Regular dice are
// rolled before hunger dice.
type RollResult struct {
	RegularDice   []int      `json:"regular_dice"`
	HungerDice    []int      `json:"hunger_dice"`
	Difficulty    int        `json:"difficulty"`
	Successes     int        `json:"successes"`
	RegularTens   int        `json:"regular_tens"`
	HungerTens    int        `json:"hunger_tens"`
	HungerOnes    int        `json:"hunger_ones"`
	CriticalPairs int        `json:"critical_pairs"`
	Result        ResultKind `json:"result"`
	Margin        int        `json:"margin"`
}

// Pool returns the number of dice rolled
func (r *RollResult) Pool() int {
	return len(r.RegularDice) + len(r.HungerDice)
}

// RemorseResult is the outcome of a remorse check
type RemorseResult struct {
	Success bool        `json:"success"`
	Roll    *RollResult `json:"roll"`
}

// ContestedResult is the outcome of two opposed rolls at difficulty 0
type ContestedResult struct {
	Attacker *RollResult  `json:"attacker_roll"`
	Defender *RollResult  `json:"defender_roll"`
	Winner   rules.Winner `json:"winner"`
	Margin   int          `json:"margin"`
}

// Resolver rolls V5 pools against a Source
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

// Roll resolves a pool in which hunger dice replace regular dice. Pools of
// zero or less roll one die, hunger is capped at the pool and a negative
// difficulty counts as zero.
func (r *Resolver) Roll(pool, hunger, difficulty int) *RollResult {
	pool = rules.FloorPool(pool)
	hunger = rules.Clamp(hunger, 0, pool)
	if difficulty < 0 {
		difficulty = 0
	}

	regular := roller.RollN(r.src, pool-hunger)
	hungerDice := roller.RollN(r.src, hunger)

	return classify(regular, hungerDice, difficulty)
}

func classify(regular, hunger []int, difficulty int) *RollResult {
	res := &RollResult{
		RegularDice: regular,
		HungerDice:  hunger,
		Difficulty:  difficulty,
	}

	base := 0
	for _, face := range regular {
		if face >= SuccessThreshold {
			base++
		}
		if face == 10 {
			res.RegularTens++
		}
	}
	for _, face := range hunger {
		if face >= SuccessThreshold {
			base++
		}
		switch face {
		case 10:
			res.HungerTens++
		case 1:
			res.HungerOnes++
		}
	}

	res.CriticalPairs = (res.RegularTens + res.HungerTens) / 2
	res.Successes = base + res.CriticalPairs*CriticalBonus
	res.Margin = res.Successes - difficulty

	switch {
	case res.Margin >= 0 && res.CriticalPairs > 0 && res.HungerTens > 0:
		res.Result = ResultMessyCritical
	case res.Margin >= 0 && res.CriticalPairs > 0:
		res.Result = ResultCritical
	case res.Margin >= 0:
		res.Result = ResultSuccess
	case res.HungerOnes > 0:
		res.Result = ResultBestialFailure
	default:
		res.Result = ResultFailure
	}

	return res
}

// RouseRoll rolls one die and, on a failure with reroll allowed, one more
// whose result replaces the first. It returns the faces in roll order.
func (r *Resolver) RouseRoll(reroll bool) (bool, []int) {
	faces := []int{r.src.RollD10()}
	success := faces[0] >= SuccessThreshold

	if !success && reroll {
		next := r.src.RollD10()
		faces = append(faces, next)
		success = next >= SuccessThreshold
	}

	return success, faces
}

// FrenzyPool is Willpower plus a third of Humanity, rounded down
func FrenzyPool(willpower, humanity int) int {
	return willpower + humanity/3
}

// FrenzyCheck rolls the frenzy pool without hunger dice. Difficulty is at
// least 1.
func (r *Resolver) FrenzyCheck(willpower, humanity, difficulty int) *RollResult {
	return r.Roll(FrenzyPool(willpower, humanity), 0, max(1, difficulty))
}

// RemorseCheck rolls Humanity minus Stains (at least one die) at difficulty 1
func (r *Resolver) RemorseCheck(humanity, stains int) *RemorseResult {
	roll := r.Roll(max(1, humanity-stains), 0, 1)
	return &RemorseResult{
		Success: roll.Successes >= 1,
		Roll:    roll,
	}
}

// WillpowerRoll rolls a plain Willpower pool without hunger dice
func (r *Resolver) WillpowerRoll(willpower, difficulty int) *RollResult {
	return r.Roll(willpower, 0, difficulty)
}

// Contested rolls attacker then defender at difficulty 0 and compares
// successes
func (r *Resolver) Contested(attackerPool, attackerHunger, defenderPool, defenderHunger int) *ContestedResult {
	attacker := r.Roll(attackerPool, attackerHunger, 0)
	defender := r.Roll(defenderPool, defenderHunger, 0)

	winner, margin := rules.Compare(attacker.Successes, defender.Successes)
	return &ContestedResult{
		Attacker: attacker,
		Defender: defender,
		Winner:   winner,
		Margin:   margin,
	}
}
