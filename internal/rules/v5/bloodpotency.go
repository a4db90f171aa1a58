package v5

// BloodPotency is one row of the Blood Potency table
type BloodPotency struct {
	Level          int    `json:"level"`
	BloodSurge     int    `json:"blood_surge"`
	MendAmount     int    `json:"mend_amount"`
	PowerBonus     int    `json:"power_bonus"`
	RouseReroll    int    `json:"rouse_reroll"`
	BaneSeverity   int    `json:"bane_severity"`
	FeedingPenalty string `json:"feeding_penalty"`
}

const (
	MinBloodPotency = 0
	MaxBloodPotency = 10
)

var bloodPotencyTable = map[int]BloodPotency{
	0:  {0, 1, 1, 0, 0, 0, "No penalty. Animal blood sustains."},
	1:  {1, 2, 1, 0, 0, 2, "No penalty. Animal blood sustains."},
	2:  {2, 2, 2, 1, 0, 2, "Animal blood no longer sustains."},
	3:  {3, 3, 2, 1, 1, 3, "Animal blood does not sustain. Blood bags slake only 1 Hunger."},
	4:  {4, 3, 3, 2, 1, 3, "Animal and bagged blood do not sustain. Must drain or kill to reduce Hunger below 2."},
	5:  {5, 4, 3, 2, 2, 4, "Must drain or kill to reduce Hunger. Ordinary mortals do not sustain below Hunger 2."},
	6:  {6, 4, 4, 3, 2, 4, "Must drain and kill to feed. Only exceptional blood satisfies."},
	7:  {7, 5, 4, 3, 3, 5, "Must kill to feed. Only Kindred, werewolf or supernatural blood satisfies."},
	8:  {8, 5, 5, 4, 3, 5, "Only supernatural blood satisfies. Kindred preferred."},
	9:  {9, 6, 5, 4, 4, 6, "Only Kindred blood satisfies."},
	10: {10, 6, 6, 5, 5, 6, "Only the blood of potent Kindred (Blood Potency 2+) satisfies."},
}

var startingBloodPotency = map[int]int{
	16: 0, 15: 0, 14: 0,
	13: 1, 12: 1,
	11: 2, 10: 2,
	9: 3, 8: 4, 7: 5, 6: 6, 5: 7, 4: 8, 3: 9, 2: 10,
}

var maxBloodPotencyByGeneration = map[int]int{
	16: 0, 15: 0, 14: 1, 13: 2, 12: 3, 11: 4, 10: 5, 9: 6, 8: 7, 7: 8, 6: 9,
	5: 10, 4: 10, 3: 10, 2: 10,
}

// LookupBloodPotency returns the row for level and whether it exists
func LookupBloodPotency(level int) (BloodPotency, bool) {
	bp, ok := bloodPotencyTable[level]
	return bp, ok
}

// BloodPotencyInfo returns the row for level, falling back to level 0
func BloodPotencyInfo(level int) BloodPotency {
	if bp, ok := bloodPotencyTable[level]; ok {
		return bp
	}
	return bloodPotencyTable[0]
}

// BloodPotencyLevels returns every row in ascending order
func BloodPotencyLevels() []BloodPotency {
	out := make([]BloodPotency, 0, len(bloodPotencyTable))
	for level := MinBloodPotency; level <= MaxBloodPotency; level++ {
		out = append(out, bloodPotencyTable[level])
	}
	return out
}

// StartingBloodPotency is the Blood Potency a fresh Embrace of generation
// starts with. Unknown generations start at 1.
func StartingBloodPotency(generation int) int {
	if bp, ok := startingBloodPotency[generation]; ok {
		return bp
	}
	return 1
}

// MaxBloodPotencyFor is the ceiling for generation. Unknown generations cap
// at 5.
func MaxBloodPotencyFor(generation int) int {
	if bp, ok := maxBloodPotencyByGeneration[generation]; ok {
		return bp
	}
	return 5
}

// BloodSurgePool adds the Blood Surge bonus to a base pool
func BloodSurgePool(basePool, bloodPotency int) int {
	return basePool + BloodPotencyInfo(bloodPotency).BloodSurge
}

// CanFeedOnAnimals reports whether animal blood still slakes Hunger
func CanFeedOnAnimals(bloodPotency int) bool {
	return bloodPotency <= 1
}

// CanUseBloodBags reports whether bagged blood slakes Hunger fully
func CanUseBloodBags(bloodPotency int) bool {
	return bloodPotency <= 2
}
