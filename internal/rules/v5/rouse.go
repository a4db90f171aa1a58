package v5

// RouseResult reports one Rouse Check
type RouseResult struct {
	Success        bool   `json:"success"`
	Dice           []int  `json:"dice"`
	HungerIncrease int    `json:"hunger_increase"`
	Rerolled       bool   `json:"rerolled"`
	Message        string `json:"message"`
}

// CanRerollRouse reports whether bloodPotency grants a Rouse reroll
func CanRerollRouse(bloodPotency int) bool {
	bp, ok := LookupBloodPotency(bloodPotency)
	return ok && bp.RouseReroll > 0
}

// PerformRouseCheck wakes the blood once. A failure raises Hunger by one
// unless the vampire is already starving, in which case Hunger stays put and
// the message warns of a Hunger frenzy.
func (r *Resolver) PerformRouseCheck(bloodPotency, currentHunger int) *RouseResult {
	success, faces := r.RouseRoll(CanRerollRouse(bloodPotency))
	res := &RouseResult{
		Success:  success,
		Dice:     faces,
		Rerolled: len(faces) > 1,
	}

	switch {
	case success:
		res.Message = "Rouse Check successful. No Hunger gain."
	case IsStarving(currentHunger):
		res.Message = "Rouse Check failed! Already at maximum Hunger - must resist Hunger Frenzy!"
	default:
		res.HungerIncrease = 1
		res.Message = "Rouse Check failed. Hunger increases by 1."
	}

	return res
}

// MultipleRouseChecks performs count checks in sequence, carrying each Hunger
// gain into the next check
func (r *Resolver) MultipleRouseChecks(count, bloodPotency, currentHunger int) []*RouseResult {
	results := make([]*RouseResult, 0, max(count, 0))
	hunger := currentHunger

	for i := 0; i < count; i++ {
		res := r.PerformRouseCheck(bloodPotency, hunger)
		results = append(results, res)
		hunger += res.HungerIncrease
	}

	return results
}
