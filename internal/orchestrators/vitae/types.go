package vitae

import (
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

// IncreaseHungerInput defines the request for raising Hunger
type IncreaseHungerInput struct {
	Current int
	Amount  int
}

// IncreaseHungerOutput defines the response for raising Hunger
type IncreaseHungerOutput struct {
	Change v5.HungerChange
}

// DecreaseHungerInput defines the request for feeding
type DecreaseHungerInput struct {
	Current      int
	Amount       int
	BloodPotency int
	Animal       bool
	Bagged       bool
}

// DecreaseHungerOutput defines the response for feeding
type DecreaseHungerOutput struct {
	Change v5.HungerChange
}

// SlakeHungerInput defines the request for slaking Hunger from a vessel
type SlakeHungerInput struct {
	Current      int
	Kill         bool
	BloodPotency int
}

// SlakeHungerOutput defines the response for slaking Hunger
type SlakeHungerOutput struct {
	Change v5.HungerChange
}

// RouseCheckInput defines the request for one Rouse Check
type RouseCheckInput struct {
	history.RollContext
	BloodPotency int
	Hunger       int
}

// RouseCheckOutput defines the response for a Rouse Check
type RouseCheckOutput struct {
	Result    *v5.RouseResult
	NewHunger int
	RollID    string
}

// MultipleRouseChecksInput defines the request for several Rouse Checks in a row
type MultipleRouseChecksInput struct {
	history.RollContext
	Count        int
	BloodPotency int
	Hunger       int
}

// MultipleRouseChecksOutput defines the response for several Rouse Checks
type MultipleRouseChecksOutput struct {
	Results     []*v5.RouseResult
	FinalHunger int
	RollID      string
}

// FrenzyCheckInput defines the request for a plain frenzy check
type FrenzyCheckInput struct {
	history.RollContext
	Willpower int
	Humanity  int
	Hunger    int
	// Difficulty 0 selects the Hunger frenzy difficulty at Hunger 4 or more,
	// otherwise the default of 3
	Difficulty int
}

// FrenzyCheckOutput defines the response for a plain frenzy check
type FrenzyCheckOutput struct {
	Success bool
	Roll    *v5.RollResult
	RollID  string
}

// ResistFrenzyInput defines the request for resisting a triggered frenzy
type ResistFrenzyInput struct {
	history.RollContext
	Willpower int
	Humanity  int
	Trigger   v5.Trigger
	Hunger    int
	Brujah    bool
}

// ResistFrenzyOutput defines the response for resisting a frenzy
type ResistFrenzyOutput struct {
	Result *v5.FrenzyCheckResult
	RollID string
}

// RideTheWaveInput defines the request for riding the wave of a frenzy
type RideTheWaveInput struct {
	history.RollContext
	Willpower int
	Humanity  int
}

// RideTheWaveOutput defines the response for riding the wave
type RideTheWaveOutput struct {
	Success bool
	Roll    *v5.RollResult
	RollID  string
}

// GetBloodPotencyInput defines the request for one Blood Potency level
type GetBloodPotencyInput struct {
	Level int
}

// GetBloodPotencyOutput defines the response for a Blood Potency level
type GetBloodPotencyOutput struct {
	BloodPotency     v5.BloodPotency
	CanFeedOnAnimals bool
	CanUseBloodBags  bool
	CanRerollRouse   bool
}

// ListBloodPotencyInput defines the request for the full Blood Potency table
type ListBloodPotencyInput struct{}

// ListBloodPotencyOutput defines the response for the Blood Potency table
type ListBloodPotencyOutput struct {
	Levels []v5.BloodPotency
}

// GetGenerationInput defines the request for generation-derived limits
type GetGenerationInput struct {
	Generation int
}

// GetGenerationOutput defines the limits a generation imposes in both editions
type GetGenerationOutput struct {
	Generation           int
	MaxBloodPool         int
	BloodPerTurn         int
	StartingBloodPotency int
	MaxBloodPotency      int
}

// SpendBloodInput defines the request for spending blood
type SpendBloodInput struct {
	Current    int
	Amount     int
	Generation int
	// MaxPool 0 uses the generation's maximum
	MaxPool int
}

// SpendBloodOutput defines the response for spending blood
type SpendBloodOutput struct {
	Change v20.BloodPoolChange
}

// GainBloodInput defines the request for gaining blood
type GainBloodInput struct {
	Current    int
	Amount     int
	Generation int
	MaxPool    int
}

// GainBloodOutput defines the response for gaining blood
type GainBloodOutput struct {
	Change v20.BloodPoolChange
}

// HealDamageInput defines the request for healing with blood
type HealDamageInput struct {
	CurrentPool int
	DamageType  v20.DamageType
	Amount      int
	Generation  int
}

// HealDamageOutput defines the response for healing with blood
type HealDamageOutput struct {
	Result v20.HealResult
}

// BoostAttributeInput defines the request for boosting a Physical attribute
type BoostAttributeInput struct {
	CurrentPool int
	Attribute   v20.Attribute
	Amount      int
	Generation  int
}

// BoostAttributeOutput defines the response for a boost
type BoostAttributeOutput struct {
	Result v20.BoostResult
}

// GetDaytimePenaltyInput defines the request for the daytime dice penalty
type GetDaytimePenaltyInput struct {
	Humanity int
}

// GetDaytimePenaltyOutput defines the response for the daytime dice penalty
type GetDaytimePenaltyOutput struct {
	Penalty int
}
