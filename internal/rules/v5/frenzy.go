package v5

import (
	"fmt"
	"slices"
)

// FrenzyType is the kind of frenzy a trigger provokes
type FrenzyType int

const (
	FrenzyNone FrenzyType = iota
	FrenzyFury
	FrenzyHunger
	FrenzyTerror
)

var frenzyTypeNames = map[FrenzyType]string{
	FrenzyNone:   "none",
	FrenzyFury:   "fury",
	FrenzyHunger: "hunger",
	FrenzyTerror: "terror",
}

func (f FrenzyType) String() string {
	if name, ok := frenzyTypeNames[f]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (f FrenzyType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FrenzyType) UnmarshalText(text []byte) error {
	for kind, name := range frenzyTypeNames {
		if name == string(text) {
			*f = kind
			return nil
		}
	}
	return fmt.Errorf("unknown frenzy type %q", text)
}

// Trigger names what provoked the Beast. Unknown triggers are allowed and
// resolve as fury at difficulty 3.
type Trigger string

const (
	TriggerSmellOfBlood          Trigger = "smell_of_blood"
	TriggerTasteOfBlood          Trigger = "taste_of_blood"
	TriggerLifeThreateningDanger Trigger = "life_threatening_danger"
	TriggerHumiliation           Trigger = "humiliation"
	TriggerPhysicalProvocation   Trigger = "physical_provocation"
	TriggerLovedOneThreatened    Trigger = "loved_one_threatened"
	TriggerMortalWound           Trigger = "mortal_wound"
	TriggerFireNearby            Trigger = "fire_nearby"
	TriggerFireTouching          Trigger = "fire_touching"
	TriggerSunlightExposure      Trigger = "sunlight_exposure"
	TriggerHunger5               Trigger = "hunger_5"
)

const (
	defaultFrenzyDifficulty = 3
	maxFrenzyDifficulty     = 6
	rideTheWaveDifficulty   = 4
)

var frenzyDifficulties = map[Trigger]int{
	TriggerSmellOfBlood:          2,
	TriggerTasteOfBlood:          3,
	TriggerLifeThreateningDanger: 3,
	TriggerHumiliation:           3,
	TriggerPhysicalProvocation:   3,
	TriggerLovedOneThreatened:    4,
	TriggerMortalWound:           4,
	TriggerFireNearby:            3,
	TriggerFireTouching:          4,
	TriggerSunlightExposure:      4,
	TriggerHunger5:               4,
}

var (
	terrorTriggers = []Trigger{TriggerFireNearby, TriggerFireTouching, TriggerSunlightExposure, TriggerLifeThreateningDanger}
	hungerTriggers = []Trigger{TriggerSmellOfBlood, TriggerTasteOfBlood, TriggerHunger5}
	brujahTriggers = []Trigger{TriggerHumiliation, TriggerPhysicalProvocation, TriggerLovedOneThreatened}
)

// FrenzyCheckResult is the outcome of resisting a frenzy. Type is FrenzyNone
// when the vampire held on.
type FrenzyCheckResult struct {
	Success    bool        `json:"success"`
	Roll       *RollResult `json:"roll"`
	Type       FrenzyType  `json:"frenzy_type"`
	Difficulty int         `json:"difficulty"`
	Message    string      `json:"message"`
}

// FrenzyDifficulty computes the difficulty for trigger. Hunger 4 adds one,
// Hunger 5 adds another, Brujah add two against rage triggers and the total
// never exceeds 6.
func FrenzyDifficulty(trigger Trigger, hunger int, brujah bool) int {
	difficulty, ok := frenzyDifficulties[trigger]
	if !ok {
		difficulty = defaultFrenzyDifficulty
	}

	if hunger >= 4 {
		difficulty++
	}
	if hunger >= 5 {
		difficulty++
	}
	if brujah && slices.Contains(brujahTriggers, trigger) {
		difficulty += 2
	}

	return min(difficulty, maxFrenzyDifficulty)
}

// ClassifyTrigger maps a trigger to the frenzy it provokes
func ClassifyTrigger(trigger Trigger) FrenzyType {
	switch {
	case slices.Contains(terrorTriggers, trigger):
		return FrenzyTerror
	case slices.Contains(hungerTriggers, trigger):
		return FrenzyHunger
	default:
		return FrenzyFury
	}
}

// ResistFrenzy rolls Willpower plus a third of Humanity against the trigger's
// difficulty
func (r *Resolver) ResistFrenzy(willpower, humanity int, trigger Trigger, hunger int, brujah bool) *FrenzyCheckResult {
	difficulty := FrenzyDifficulty(trigger, hunger, brujah)
	kind := ClassifyTrigger(trigger)
	roll := r.Roll(FrenzyPool(willpower, humanity), 0, difficulty)

	if roll.Margin >= 0 {
		return &FrenzyCheckResult{
			Success:    true,
			Roll:       roll,
			Type:       FrenzyNone,
			Difficulty: difficulty,
			Message: fmt.Sprintf("Resisted %s frenzy! (%d successes vs difficulty %d)",
				kind, roll.Successes, difficulty),
		}
	}

	return &FrenzyCheckResult{
		Success:    false,
		Roll:       roll,
		Type:       kind,
		Difficulty: difficulty,
		Message: fmt.Sprintf("Failed to resist! Entering %s frenzy. (%d successes vs difficulty %d)",
			kind, roll.Successes, difficulty),
	}
}

// RideTheWave tries to keep partial control inside a frenzy
func (r *Resolver) RideTheWave(willpower, humanity int) (bool, *RollResult) {
	roll := r.Roll(FrenzyPool(willpower, humanity), 0, rideTheWaveDifficulty)
	return roll.Margin >= 0, roll
}
