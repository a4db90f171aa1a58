// Package dice implements the dice orchestrator for V5 and V20 rolls
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/vtm-api/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

const (
	// MaxPool bounds any single pool a caller may request
	MaxPool = 50

	// DefaultV5Difficulty applies when a V5 or Willpower roll names no difficulty
	DefaultV5Difficulty = 1

	// Roll kinds as logged
	KindRoll      = "roll"
	KindWillpower = "willpower"
	KindRemorse   = "remorse"
	KindContested = "contested"
	KindExtended  = "extended"
	KindResisted  = "resisted"
	KindDamage    = "damage"
	KindSoak      = "soak"
)

// Service defines the interface for dice operations
type Service interface {
	// V5
	RollV5(ctx context.Context, input *RollV5Input) (*RollV5Output, error)
	WillpowerRoll(ctx context.Context, input *WillpowerRollInput) (*WillpowerRollOutput, error)
	RemorseCheck(ctx context.Context, input *RemorseCheckInput) (*RemorseCheckOutput, error)
	ContestedV5(ctx context.Context, input *ContestedV5Input) (*ContestedV5Output, error)

	// V20
	RollV20(ctx context.Context, input *RollV20Input) (*RollV20Output, error)
	ExtendedV20(ctx context.Context, input *ExtendedV20Input) (*ExtendedV20Output, error)
	ResistedV20(ctx context.Context, input *ResistedV20Input) (*ResistedV20Output, error)
	DamageV20(ctx context.Context, input *DamageV20Input) (*DamageV20Output, error)
	SoakV20(ctx context.Context, input *SoakV20Input) (*SoakV20Output, error)

	// History
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)
}

// Config holds the dependencies for the dice orchestrator
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
	v5       *v5.Resolver
	v20      *v20.Resolver
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	src := cfg.Source
	if src == nil {
		src = roller.NewDefault()
	}

	return &orchestrator{
		recorder: cfg.Recorder,
		v5:       v5.NewResolver(src),
		v20:      v20.NewResolver(src),
	}, nil
}

// RollV5 rolls a pool in which Hunger dice replace regular dice
func (o *orchestrator) RollV5(ctx context.Context, input *RollV5Input) (*RollV5Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pool", input.Pool, 0, MaxPool, vb)
	errors.ValidateRange("hunger", input.Hunger, v5.MinHunger, v5.MaxHunger, vb)
	difficulty := v5Difficulty(input.Difficulty)
	errors.ValidateNonNegative("difficulty", difficulty, vb)
	if input.BloodSurge {
		errors.ValidateRange("blood_potency", input.BloodPotency, v5.MinBloodPotency, v5.MaxBloodPotency, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pool := input.Pool
	if input.BloodSurge {
		pool = v5.BloodSurgePool(pool, input.BloodPotency)
	}

	result := o.v5.Roll(pool, input.Hunger, difficulty)

	rollID, err := o.recordV5(ctx, input.RollContext, KindRoll, result)
	if err != nil {
		return nil, err
	}

	slog.Info("V5 dice rolled",
		"character_id", input.CharacterID,
		"pool", result.Pool(),
		"hunger", len(result.HungerDice),
		"difficulty", result.Difficulty,
		"successes", result.Successes,
		"result", result.Result.String(),
	)

	return &RollV5Output{Result: result, RollID: rollID}, nil
}

// WillpowerRoll rolls Willpower alone with no Hunger dice
func (o *orchestrator) WillpowerRoll(ctx context.Context, input *WillpowerRollInput) (*WillpowerRollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("willpower", input.Willpower, 0, MaxPool, vb)
	difficulty := v5Difficulty(input.Difficulty)
	errors.ValidateNonNegative("difficulty", difficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v5.WillpowerRoll(input.Willpower, difficulty)

	rollID, err := o.recordV5(ctx, input.RollContext, KindWillpower, result)
	if err != nil {
		return nil, err
	}

	return &WillpowerRollOutput{Result: result, RollID: rollID}, nil
}

// RemorseCheck rolls Humanity less Stains to see if the vampire keeps their Humanity
func (o *orchestrator) RemorseCheck(ctx context.Context, input *RemorseCheckInput) (*RemorseCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("humanity", input.Humanity, v5.MinHumanity, v5.MaxHumanity, vb)
	errors.ValidateRange("stains", input.Stains, 0, v5.MaxHumanity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v5.RemorseCheck(input.Humanity, input.Stains)

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindRemorse,
		Result:    result.Roll.Result.String(),
		Successes: result.Roll.Successes,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Remorse check",
		"character_id", input.CharacterID,
		"humanity", input.Humanity,
		"stains", input.Stains,
		"success", result.Success,
	)

	return &RemorseCheckOutput{Result: result, RollID: rollID}, nil
}

// ContestedV5 rolls two pools against each other
func (o *orchestrator) ContestedV5(ctx context.Context, input *ContestedV5Input) (*ContestedV5Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("attacker_pool", input.AttackerPool, 0, MaxPool, vb)
	errors.ValidateRange("attacker_hunger", input.AttackerHunger, v5.MinHunger, v5.MaxHunger, vb)
	errors.ValidateRange("defender_pool", input.DefenderPool, 0, MaxPool, vb)
	errors.ValidateRange("defender_hunger", input.DefenderHunger, v5.MinHunger, v5.MaxHunger, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v5.Contested(input.AttackerPool, input.AttackerHunger, input.DefenderPool, input.DefenderHunger)

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV5,
		Kind:      KindContested,
		Result:    result.Winner.String(),
		Successes: result.Margin,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	return &ContestedV5Output{Result: result, RollID: rollID}, nil
}

// RollV20 rolls a pool against a difficulty
func (o *orchestrator) RollV20(ctx context.Context, input *RollV20Input) (*RollV20Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateV20Pool("pool", input.Pool, input.Difficulty); err != nil {
		return nil, err
	}

	result := o.v20.Roll(input.Pool, v20Difficulty(input.Difficulty), input.Specialty, input.Willpower)

	rollID, err := o.recordV20(ctx, input.RollContext, KindRoll, result)
	if err != nil {
		return nil, err
	}

	slog.Info("V20 dice rolled",
		"character_id", input.CharacterID,
		"pool", input.Pool,
		"difficulty", result.Difficulty,
		"successes", result.Successes,
		"result", result.Result.String(),
	)

	return &RollV20Output{Result: result, RollID: rollID}, nil
}

// ExtendedV20 rolls repeatedly until the target is met, a botch, or the roll limit
func (o *orchestrator) ExtendedV20(ctx context.Context, input *ExtendedV20Input) (*ExtendedV20Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pool", input.Pool, 0, MaxPool, vb)
	validateV20Difficulty(input.Difficulty, vb)
	errors.ValidateRange("target", input.Target, 1, MaxPool*v20.DefaultMaxRolls, vb)
	errors.ValidateRange("max_rolls", input.MaxRolls, 0, MaxPool, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v20.Extended(input.Pool, v20Difficulty(input.Difficulty), input.Target, input.MaxRolls, input.Specialty)

	outcome := v20.ResultFailure.String()
	switch {
	case result.Botched:
		outcome = v20.ResultBotch.String()
	case result.Success:
		outcome = v20.ResultSuccess.String()
	}

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV20,
		Kind:      KindExtended,
		Result:    outcome,
		Successes: result.TotalSuccesses,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("V20 extended action",
		"character_id", input.CharacterID,
		"target", result.Target,
		"total", result.TotalSuccesses,
		"rolls_taken", result.RollsTaken,
		"botched", result.Botched,
	)

	return &ExtendedV20Output{Result: result, RollID: rollID}, nil
}

// ResistedV20 rolls two pools at the same difficulty
func (o *orchestrator) ResistedV20(ctx context.Context, input *ResistedV20Input) (*ResistedV20Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("attacker_pool", input.AttackerPool, 0, MaxPool, vb)
	errors.ValidateRange("defender_pool", input.DefenderPool, 0, MaxPool, vb)
	validateV20Difficulty(input.Difficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v20.Resisted(input.AttackerPool, input.DefenderPool, v20Difficulty(input.Difficulty),
		input.AttackerSpecialty, input.DefenderSpecialty)

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV20,
		Kind:      KindResisted,
		Result:    result.Winner.String(),
		Successes: result.NetSuccesses,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	return &ResistedV20Output{Result: result, RollID: rollID}, nil
}

// DamageV20 rolls damage; each success is one health level
func (o *orchestrator) DamageV20(ctx context.Context, input *DamageV20Input) (*DamageV20Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateV20Pool("pool", input.Pool, input.Difficulty); err != nil {
		return nil, err
	}

	result := o.v20.Damage(input.Pool, v20Difficulty(input.Difficulty), input.Aggravated)

	rollID, err := o.recordV20(ctx, input.RollContext, KindDamage, result.Roll)
	if err != nil {
		return nil, err
	}

	return &DamageV20Output{Result: result, RollID: rollID}, nil
}

// SoakV20 rolls Stamina or Fortitude against incoming damage
func (o *orchestrator) SoakV20(ctx context.Context, input *SoakV20Input) (*SoakV20Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("stamina", input.Stamina, 0, MaxPool, vb)
	errors.ValidateRange("fortitude", input.Fortitude, 0, MaxPool, vb)
	errors.ValidateEnum("damage_type", input.DamageType.String(), v20.DamageTypeNames(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := o.v20.Soak(input.Stamina, input.Fortitude, input.DamageType)

	outcome := "no_soak"
	if result.Roll != nil {
		outcome = result.Roll.Result.String()
	}

	rollID, err := o.recorder.Record(ctx, input.RollContext, history.Record{
		System:    history.SystemV20,
		Kind:      KindSoak,
		Result:    outcome,
		Successes: result.DamageSoaked,
		Detail:    result,
	})
	if err != nil {
		return nil, err
	}

	return &SoakV20Output{Result: result, RollID: rollID}, nil
}

// ListRolls returns the chronicle's roll history, newest first
func (o *orchestrator) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ChronicleID == "" {
		return nil, errors.InvalidArgument("chronicle ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}

	rolls, err := o.recorder.List(ctx, rolllog.ListInput{
		ChronicleID:   input.ChronicleID,
		Limit:         input.Limit,
		IncludeSecret: input.IncludeSecret,
	})
	if err != nil {
		return nil, err
	}

	return &ListRollsOutput{Rolls: rolls}, nil
}

func (o *orchestrator) recordV5(ctx context.Context, rc history.RollContext, kind string, result *v5.RollResult) (string, error) {
	return o.recorder.Record(ctx, rc, history.Record{
		System:    history.SystemV5,
		Kind:      kind,
		Result:    result.Result.String(),
		Successes: result.Successes,
		Detail:    result,
	})
}

func (o *orchestrator) recordV20(ctx context.Context, rc history.RollContext, kind string, result *v20.RollResult) (string, error) {
	return o.recorder.Record(ctx, rc, history.Record{
		System:    history.SystemV20,
		Kind:      kind,
		Result:    result.Result.String(),
		Successes: result.Successes,
		Detail:    result,
	})
}

func validateV20Pool(field string, pool, difficulty int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange(field, pool, 0, MaxPool, vb)
	validateV20Difficulty(difficulty, vb)
	return vb.Build()
}

// validateV20Difficulty accepts 0 (default) or the playable range
func validateV20Difficulty(difficulty int, vb *errors.ValidationBuilder) {
	if difficulty == 0 {
		return
	}
	errors.ValidateRange("difficulty", difficulty, v20.MinDifficulty, v20.MaxDifficulty, vb)
}

func v5Difficulty(difficulty *int) int {
	if difficulty == nil {
		return DefaultV5Difficulty
	}
	return *difficulty
}

func v20Difficulty(difficulty int) int {
	if difficulty == 0 {
		return v20.DefaultDifficulty
	}
	return difficulty
}
