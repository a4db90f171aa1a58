package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/vitae"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

// VitaeHandlerConfig holds dependencies for the vitae handler
type VitaeHandlerConfig struct {
	VitaeService vitae.Service
}

// Validate ensures all required dependencies are present
func (c *VitaeHandlerConfig) Validate() error {
	if c.VitaeService == nil {
		return errors.InvalidArgument("vitae service is required")
	}
	return nil
}

// VitaeHandler implements the VitaeService gRPC service
type VitaeHandler struct {
	vitaeService vitae.Service
}

var _ VitaeServiceServer = (*VitaeHandler)(nil)

// NewVitaeHandler creates a new vitae handler with the given configuration
func NewVitaeHandler(cfg *VitaeHandlerConfig) (*VitaeHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &VitaeHandler{
		vitaeService: cfg.VitaeService,
	}, nil
}

// IncreaseHunger raises Hunger
func (h *VitaeHandler) IncreaseHunger(ctx context.Context, req *IncreaseHungerRequest) (*HungerResponse, error) {
	out, err := h.vitaeService.IncreaseHunger(ctx, &vitae.IncreaseHungerInput{
		Current: req.Current,
		Amount:  req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return hungerResponse(out.Change), nil
}

// DecreaseHunger feeds
func (h *VitaeHandler) DecreaseHunger(ctx context.Context, req *DecreaseHungerRequest) (*HungerResponse, error) {
	out, err := h.vitaeService.DecreaseHunger(ctx, &vitae.DecreaseHungerInput{
		Current:      req.Current,
		Amount:       req.Amount,
		BloodPotency: req.BloodPotency,
		Animal:       req.Animal,
		Bagged:       req.Bagged,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return hungerResponse(out.Change), nil
}

// SlakeHunger drains a vessel
func (h *VitaeHandler) SlakeHunger(ctx context.Context, req *SlakeHungerRequest) (*HungerResponse, error) {
	out, err := h.vitaeService.SlakeHunger(ctx, &vitae.SlakeHungerInput{
		Current:      req.Current,
		Kill:         req.Kill,
		BloodPotency: req.BloodPotency,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return hungerResponse(out.Change), nil
}

// RouseCheck wakes the blood
func (h *VitaeHandler) RouseCheck(ctx context.Context, req *RouseCheckRequest) (*RouseCheckResponse, error) {
	out, err := h.vitaeService.RouseCheck(ctx, &vitae.RouseCheckInput{
		RollContext:  toRollContext(req.Context),
		BloodPotency: req.BloodPotency,
		Hunger:       req.Hunger,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RouseCheckResponse{Result: out.Result, NewHunger: out.NewHunger, RollID: out.RollID}, nil
}

// MultipleRouseChecks wakes the blood several times in a row
func (h *VitaeHandler) MultipleRouseChecks(ctx context.Context, req *MultipleRouseChecksRequest) (*MultipleRouseChecksResponse, error) {
	out, err := h.vitaeService.MultipleRouseChecks(ctx, &vitae.MultipleRouseChecksInput{
		RollContext:  toRollContext(req.Context),
		Count:        req.Count,
		BloodPotency: req.BloodPotency,
		Hunger:       req.Hunger,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &MultipleRouseChecksResponse{
		Results:     out.Results,
		FinalHunger: out.FinalHunger,
		RollID:      out.RollID,
	}, nil
}

// FrenzyCheck rolls against a fixed frenzy difficulty
func (h *VitaeHandler) FrenzyCheck(ctx context.Context, req *FrenzyCheckRequest) (*FrenzyRollResponse, error) {
	out, err := h.vitaeService.FrenzyCheck(ctx, &vitae.FrenzyCheckInput{
		RollContext: toRollContext(req.Context),
		Willpower:   req.Willpower,
		Humanity:    req.Humanity,
		Hunger:      req.Hunger,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FrenzyRollResponse{Success: out.Success, Roll: out.Roll, RollID: out.RollID}, nil
}

// ResistFrenzy resists a named trigger
func (h *VitaeHandler) ResistFrenzy(ctx context.Context, req *ResistFrenzyRequest) (*ResistFrenzyResponse, error) {
	out, err := h.vitaeService.ResistFrenzy(ctx, &vitae.ResistFrenzyInput{
		RollContext: toRollContext(req.Context),
		Willpower:   req.Willpower,
		Humanity:    req.Humanity,
		Trigger:     v5.Trigger(req.Trigger),
		Hunger:      req.Hunger,
		Brujah:      req.Brujah,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResistFrenzyResponse{Result: out.Result, RollID: out.RollID}, nil
}

// RideTheWave tries to keep partial control inside a frenzy
func (h *VitaeHandler) RideTheWave(ctx context.Context, req *RideTheWaveRequest) (*FrenzyRollResponse, error) {
	out, err := h.vitaeService.RideTheWave(ctx, &vitae.RideTheWaveInput{
		RollContext: toRollContext(req.Context),
		Willpower:   req.Willpower,
		Humanity:    req.Humanity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FrenzyRollResponse{Success: out.Success, Roll: out.Roll, RollID: out.RollID}, nil
}

// GetBloodPotency returns one row of the Blood Potency table
func (h *VitaeHandler) GetBloodPotency(ctx context.Context, req *GetBloodPotencyRequest) (*GetBloodPotencyResponse, error) {
	out, err := h.vitaeService.GetBloodPotency(ctx, &vitae.GetBloodPotencyInput{Level: req.Level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBloodPotencyResponse{
		BloodPotency:     out.BloodPotency,
		CanFeedOnAnimals: out.CanFeedOnAnimals,
		CanUseBloodBags:  out.CanUseBloodBags,
		CanRerollRouse:   out.CanRerollRouse,
	}, nil
}

// ListBloodPotency returns the whole Blood Potency table
func (h *VitaeHandler) ListBloodPotency(ctx context.Context, _ *ListBloodPotencyRequest) (*ListBloodPotencyResponse, error) {
	out, err := h.vitaeService.ListBloodPotency(ctx, &vitae.ListBloodPotencyInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListBloodPotencyResponse{Levels: out.Levels}, nil
}

// GetGeneration reports generation-derived limits
func (h *VitaeHandler) GetGeneration(ctx context.Context, req *GetGenerationRequest) (*GetGenerationResponse, error) {
	out, err := h.vitaeService.GetGeneration(ctx, &vitae.GetGenerationInput{Generation: req.Generation})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetGenerationResponse{
		Generation:           out.Generation,
		MaxBloodPool:         out.MaxBloodPool,
		BloodPerTurn:         out.BloodPerTurn,
		StartingBloodPotency: out.StartingBloodPotency,
		MaxBloodPotency:      out.MaxBloodPotency,
	}, nil
}

// SpendBlood removes blood from the pool
func (h *VitaeHandler) SpendBlood(ctx context.Context, req *BloodPoolRequest) (*BloodPoolResponse, error) {
	out, err := h.vitaeService.SpendBlood(ctx, &vitae.SpendBloodInput{
		Current:    req.Current,
		Amount:     req.Amount,
		Generation: req.Generation,
		MaxPool:    req.MaxPool,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BloodPoolResponse{Change: out.Change}, nil
}

// GainBlood adds blood to the pool
func (h *VitaeHandler) GainBlood(ctx context.Context, req *BloodPoolRequest) (*BloodPoolResponse, error) {
	out, err := h.vitaeService.GainBlood(ctx, &vitae.GainBloodInput{
		Current:    req.Current,
		Amount:     req.Amount,
		Generation: req.Generation,
		MaxPool:    req.MaxPool,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BloodPoolResponse{Change: out.Change}, nil
}

// HealDamage spends blood on health levels
func (h *VitaeHandler) HealDamage(ctx context.Context, req *HealDamageRequest) (*HealDamageResponse, error) {
	damageType, err := parseDamageType(req.DamageType)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.vitaeService.HealDamage(ctx, &vitae.HealDamageInput{
		CurrentPool: req.CurrentPool,
		DamageType:  damageType,
		Amount:      req.Amount,
		Generation:  req.Generation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &HealDamageResponse{Result: out.Result}, nil
}

// BoostAttribute spends blood on a Physical attribute
func (h *VitaeHandler) BoostAttribute(ctx context.Context, req *BoostAttributeRequest) (*BoostAttributeResponse, error) {
	out, err := h.vitaeService.BoostAttribute(ctx, &vitae.BoostAttributeInput{
		CurrentPool: req.CurrentPool,
		Attribute:   v20.Attribute(req.Attribute),
		Amount:      req.Amount,
		Generation:  req.Generation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BoostAttributeResponse{Result: out.Result}, nil
}

// GetDaytimePenalty returns the daytime dice penalty
func (h *VitaeHandler) GetDaytimePenalty(ctx context.Context, req *GetDaytimePenaltyRequest) (*GetDaytimePenaltyResponse, error) {
	out, err := h.vitaeService.GetDaytimePenalty(ctx, &vitae.GetDaytimePenaltyInput{Humanity: req.Humanity})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetDaytimePenaltyResponse{Penalty: out.Penalty}, nil
}

func hungerResponse(change v5.HungerChange) *HungerResponse {
	return &HungerResponse{Change: change, AtMaximum: change.AtMaximum()}
}
