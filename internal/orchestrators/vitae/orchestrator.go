// Package vitae implements the orchestrator for a vampire's blood: Hunger,
// Rouse Checks, frenzy, Blood Potency and the V20 Blood Pool
package vitae

//go:generate mockgen -destination=mock/mock_service.go -package=vitaemock github.com/KirkDiggler/vtm-api/internal/orchestrators/vitae Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

const (
	// DefaultFrenzyDifficulty applies when a frenzy check names no difficulty
	DefaultFrenzyDifficulty = 3
	// HungerFrenzyThreshold is the Hunger at which the Beast sets the difficulty
	HungerFrenzyThreshold = 4

	MinGeneration = 2
	MaxGeneration = 16

	// MaxPoolSize bounds Willpower, blood pools and amounts
	MaxPoolSize = 100
	// MaxRouseChecks bounds a batch of Rouse Checks
	MaxRouseChecks = 10

	KindRouse       = "rouse_check"
	KindFrenzy      = "frenzy"
	KindRideTheWave = "ride_the_wave"
)

// Service defines the interface for vitae operations
type Service interface {
	// Hunger
	IncreaseHunger(ctx context.Context, input *IncreaseHungerInput) (*IncreaseHungerOutput, error)
	DecreaseHunger(ctx context.Context, input *DecreaseHungerInput) (*DecreaseHungerOutput, error)
	SlakeHunger(ctx context.Context, input *SlakeHungerInput) (*SlakeHungerOutput, error)

	// Rouse
	RouseCheck(ctx context.Context, input *RouseCheckInput) (*RouseCheckOutput, error)
	MultipleRouseChecks(ctx context.Context, input *MultipleRouseChecksInput) (*MultipleRouseChecksOutput, error)

	// Frenzy
	FrenzyCheck(ctx context.Context, input *FrenzyCheckInput) (*FrenzyCheckOutput, error)
	ResistFrenzy(ctx context.Context, input *ResistFrenzyInput) (*ResistFrenzyOutput, error)
	RideTheWave(ctx context.Context, input *RideTheWaveInput) (*RideTheWaveOutput, error)

	// Blood Potency and generation
	GetBloodPotency(ctx context.Context, input *GetBloodPotencyInput) (*GetBloodPotencyOutput, error)
	ListBloodPotency(ctx context.Context, input *ListBloodPotencyInput) (*ListBloodPotencyOutput, error)
	GetGeneration(ctx context.Context, input *GetGenerationInput) (*GetGenerationOutput, error)

	// V20 Blood Pool
	SpendBlood(ctx context.Context, input *SpendBloodInput) (*SpendBloodOutput, error)
	GainBlood(ctx context.Context, input *GainBloodInput) (*GainBloodOutput, error)
	HealDamage(ctx context.Context, input *HealDamageInput) (*HealDamageOutput, error)
	BoostAttribute(ctx context.Context, input *BoostAttributeInput) (*BoostAttributeOutput, error)

	// Humanity
	GetDaytimePenalty(ctx context.Context, input *GetDaytimePenaltyInput) (*GetDaytimePenaltyOutput, error)
}

// Config holds the dependencies for the vitae orchestrator
type Config struct {
	Recorder *history.Recorder
	// Source defaults to the rpg-toolkit backed roller
	Source roller.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Recorder == nil {
		vb.RequiredField("Recorder")
	}

	return vb.Build()
}

type orchestrator struct {
	recorder *history.Recorder
	resolver *v5.Resolver
}

// NewOrchestrator creates a new vitae orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		recorder: cfg.Recorder,
		resolver: v5.NewResolver(cfg.Source),
	}, nil
}

// IncreaseHunger raises Hunger, capped at 5
func (o *orchestrator) IncreaseHunger(_ context.Context, input *IncreaseHungerInput) (*IncreaseHungerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateHunger("current", input.Current, vb)
	errors.ValidateRange("amount", input.Amount, 0, v5.MaxHunger, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &IncreaseHungerOutput{Change: v5.IncreaseHunger(input.Current, input.Amount)}, nil
}

// DecreaseHunger feeds. Animal and bagged blood only help vampires of low
// enough Blood Potency.
func (o *orchestrator) DecreaseHunger(_ context.Context, input *DecreaseHungerInput) (*DecreaseHungerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateHunger("current", input.Current, vb)
	errors.ValidateRange("amount", input.Amount, 0, v5.MaxHunger, vb)
	validateBloodPotency(input.BloodPotency, vb)
	if input.Animal && input.Bagged {
		vb.Field("source", "blood cannot be both animal and bagged")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	change := v5.DecreaseHunger(input.Current, input.Amount, input.BloodPotency, input.Animal, input.Bagged)

	slog.Info("Hunger decreased",
		"old", change.Old,
		"new", change.New,
		"blood_potency", input.BloodPotency,
		"animal", input.Animal,
		"bagged", input.Bagged,
	)

	return &DecreaseHungerOutput{Change: change}, nil
}

// SlakeHunger drains a human vessel. Only a kill takes Hunger to zero.
func (o *orchestrator) SlakeHunger(_ context.Context, input *SlakeHungerInput) (*SlakeHungerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateHunger("current", input.Current, vb)
	validateBloodPotency(input.BloodPotency, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &SlakeHungerOutput{Change: v5.SlakeHunger(input.Current, input.Kill, input.BloodPotency)}, nil
}

// RouseCheck wakes the blood once
func (o *orchestrator) RouseCheck(ctx context.Context, input *RouseCheckInput) (*RouseCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateBloodPotency(input.BloodPotency, vb)
	validateHunger("hunger", input.Hunger, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.resolver.PerformRouseCheck(input.BloodPotency, input.Hunger)
	newHunger := input.Hunger + result.HungerIncrease

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindRouse,
		Result:    rouseOutcome(result.Success),
		Successes: boolToInt(result.Success),
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Rouse check",
		"character_id", input.CharacterID,
		"success", result.Success,
		"rerolled", result.Rerolled,
		"hunger", newHunger,
	)

	return &RouseCheckOutput{Result: result, NewHunger: newHunger, RollID: rollID}, nil
}

// MultipleRouseChecks performs several checks, each at the Hunger the last
// one left behind
func (o *orchestrator) MultipleRouseChecks(ctx context.Context, input *MultipleRouseChecksInput) (*MultipleRouseChecksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", input.Count, 1, MaxRouseChecks, vb)
	validateBloodPotency(input.BloodPotency, vb)
	validateHunger("hunger", input.Hunger, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	results := o.resolver.MultipleRouseChecks(input.Count, input.BloodPotency, input.Hunger)

	hunger := input.Hunger
	successes := 0
	for _, r := range results {
		hunger += r.HungerIncrease
		successes += boolToInt(r.Success)
	}

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindRouse,
		Result:    rouseOutcome(successes == len(results)),
		Successes: successes,
		Detail:    results,
	})
	if err != nil {
		return nil, err
	}

	return &MultipleRouseChecksOutput{Results: results, FinalHunger: hunger, RollID: rollID}, nil
}

// FrenzyCheck rolls Willpower plus a third of Humanity at a fixed difficulty
func (o *orchestrator) FrenzyCheck(ctx context.Context, input *FrenzyCheckInput) (*FrenzyCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("willpower", input.Willpower, 0, MaxPoolSize, vb)
	validateHumanity(input.Humanity, vb)
	validateHunger("hunger", input.Hunger, vb)
	errors.ValidateNonNegative("difficulty", input.Difficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	difficulty := input.Difficulty
	switch {
	case difficulty != 0:
	case input.Hunger >= HungerFrenzyThreshold:
		difficulty = v5.HungerFrenzyDifficulty(input.Hunger)
	default:
		difficulty = DefaultFrenzyDifficulty
	}

	roll := o.resolver.FrenzyCheck(input.Willpower, input.Humanity, difficulty)
	success := roll.Margin >= 0

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindFrenzy,
		Result:    roll.Result.String(),
		Successes: roll.Successes,
		Detail:    roll,
	})
	if err != nil {
		return nil, err
	}

	return &FrenzyCheckOutput{Success: success, Roll: roll, RollID: rollID}, nil
}

// ResistFrenzy resists a named trigger
func (o *orchestrator) ResistFrenzy(ctx context.Context, input *ResistFrenzyInput) (*ResistFrenzyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("willpower", input.Willpower, 0, MaxPoolSize, vb)
	validateHumanity(input.Humanity, vb)
	validateHunger("hunger", input.Hunger, vb)
	if input.Trigger == "" {
		vb.RequiredField("trigger")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.resolver.ResistFrenzy(input.Willpower, input.Humanity, input.Trigger, input.Hunger, input.Brujah)

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindFrenzy,
		Result:    result.Roll.Result.String(),
		Successes: result.Roll.Successes,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Frenzy check",
		"character_id", input.CharacterID,
		"trigger", string(input.Trigger),
		"difficulty", result.Difficulty,
		"success", result.Success,
		"frenzy_type", result.Type.String(),
	)

	return &ResistFrenzyOutput{Result: result, RollID: rollID}, nil
}

// RideTheWave tries to keep partial control inside a frenzy
func (o *orchestrator) RideTheWave(ctx context.Context, input *RideTheWaveInput) (*RideTheWaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("willpower", input.Willpower, 0, MaxPoolSize, vb)
	validateHumanity(input.Humanity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	success, roll := o.resolver.RideTheWave(input.Willpower, input.Humanity)

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindRideTheWave,
		Result:    roll.Result.String(),
		Successes: roll.Successes,
		Detail:    roll,
	})
	if err != nil {
		return nil, err
	}

	return &RideTheWaveOutput{Success: success, Roll: roll, RollID: rollID}, nil
}

// GetBloodPotency returns one row of the Blood Potency table
func (o *orchestrator) GetBloodPotency(_ context.Context, input *GetBloodPotencyInput) (*GetBloodPotencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	bp, ok := v5.LookupBloodPotency(input.Level)
	if !ok {
		return nil, errors.NotFoundf("blood potency %d not found", input.Level)
	}

	return &GetBloodPotencyOutput{
		BloodPotency:     bp,
		CanFeedOnAnimals: v5.CanFeedOnAnimals(input.Level),
		CanUseBloodBags:  v5.CanUseBloodBags(input.Level),
		CanRerollRouse:   v5.CanRerollRouse(input.Level),
	}, nil
}

// ListBloodPotency returns the whole table in ascending order
func (o *orchestrator) ListBloodPotency(_ context.Context, _ *ListBloodPotencyInput) (*ListBloodPotencyOutput, error) {
	return &ListBloodPotencyOutput{Levels: v5.BloodPotencyLevels()}, nil
}

// GetGeneration reports the limits a generation sets in both editions
func (o *orchestrator) GetGeneration(_ context.Context, input *GetGenerationInput) (*GetGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("generation", input.Generation, MinGeneration, MaxGeneration, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &GetGenerationOutput{
		Generation:           input.Generation,
		MaxBloodPool:         v20.MaxBloodPool(input.Generation),
		BloodPerTurn:         v20.BloodPerTurn(input.Generation),
		StartingBloodPotency: v5.StartingBloodPotency(input.Generation),
		MaxBloodPotency:      v5.MaxBloodPotencyFor(input.Generation),
	}, nil
}

// SpendBlood removes blood within the per-turn limit
func (o *orchestrator) SpendBlood(_ context.Context, input *SpendBloodInput) (*SpendBloodOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	generation, maxPool, err := poolLimits(input.Current, input.Amount, input.Generation, input.MaxPool)
	if err != nil {
		return nil, err
	}

	change := v20.SpendBlood(input.Current, input.Amount, maxPool, generation)

	slog.Info("Blood spent",
		"old", change.Old,
		"new", change.New,
		"generation", generation,
	)

	return &SpendBloodOutput{Change: change}, nil
}

// GainBlood adds blood up to the pool maximum
func (o *orchestrator) GainBlood(_ context.Context, input *GainBloodInput) (*GainBloodOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, maxPool, err := poolLimits(input.Current, input.Amount, input.Generation, input.MaxPool)
	if err != nil {
		return nil, err
	}

	return &GainBloodOutput{Change: v20.GainBlood(input.Current, input.Amount, maxPool)}, nil
}

// HealDamage spends blood on health levels
func (o *orchestrator) HealDamage(_ context.Context, input *HealDamageInput) (*HealDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("current_pool", input.CurrentPool, 0, MaxPoolSize, vb)
	errors.ValidateEnum("damage_type", input.DamageType.String(), v20.DamageTypeNames(), vb)
	errors.ValidateRange("amount", input.Amount, 1, MaxPoolSize, vb)
	validateGeneration(input.Generation, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &HealDamageOutput{
		Result: v20.HealDamage(input.CurrentPool, input.DamageType, input.Amount, generationOrDefault(input.Generation)),
	}, nil
}

// BoostAttribute spends blood on a Physical attribute for one turn
func (o *orchestrator) BoostAttribute(_ context.Context, input *BoostAttributeInput) (*BoostAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("current_pool", input.CurrentPool, 0, MaxPoolSize, vb)
	if !input.Attribute.Valid() {
		vb.Fieldf("attribute", "must be one of: %s, %s, %s",
			v20.AttributeStrength, v20.AttributeDexterity, v20.AttributeStamina)
	}
	errors.ValidateRange("amount", input.Amount, 1, MaxPoolSize, vb)
	validateGeneration(input.Generation, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &BoostAttributeOutput{
		Result: v20.BoostAttribute(input.CurrentPool, input.Attribute, input.Amount, generationOrDefault(input.Generation)),
	}, nil
}

// GetDaytimePenalty returns the dice penalty for acting during the day
func (o *orchestrator) GetDaytimePenalty(_ context.Context, input *GetDaytimePenaltyInput) (*GetDaytimePenaltyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateHumanity(input.Humanity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &GetDaytimePenaltyOutput{Penalty: v5.DaytimePenalty(input.Humanity)}, nil
}

func poolLimits(current, amount, generation, maxPool int) (int, int, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("current", current, 0, MaxPoolSize, vb)
	errors.ValidateRange("amount", amount, 0, MaxPoolSize, vb)
	validateGeneration(generation, vb)
	errors.ValidateRange("max_pool", maxPool, 0, MaxPoolSize, vb)
	if err := vb.Build(); err != nil {
		return 0, 0, err
	}

	generation = generationOrDefault(generation)
	if maxPool == 0 {
		maxPool = v20.MaxBloodPool(generation)
	}
	return generation, maxPool, nil
}

func validateHunger(field string, hunger int, vb *errors.ValidationBuilder) {
	errors.ValidateRange(field, hunger, v5.MinHunger, v5.MaxHunger, vb)
}

func validateHumanity(humanity int, vb *errors.ValidationBuilder) {
	errors.ValidateRange("humanity", humanity, v5.MinHumanity, v5.MaxHumanity, vb)
}

func validateBloodPotency(bp int, vb *errors.ValidationBuilder) {
	errors.ValidateRange("blood_potency", bp, v5.MinBloodPotency, v5.MaxBloodPotency, vb)
}

// validateGeneration accepts 0 (default) or a listed generation
func validateGeneration(generation int, vb *errors.ValidationBuilder) {
	if generation == 0 {
		return
	}
	errors.ValidateRange("generation", generation, MinGeneration, MaxGeneration, vb)
}

func generationOrDefault(generation int) int {
	if generation == 0 {
		return v20.DefaultGeneration
	}
	return generation
}

func rouseOutcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
