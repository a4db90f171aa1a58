package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the DiceService gRPC service
type DiceHandler struct {
	diceService dice.Service
}

var _ DiceServiceServer = (*DiceHandler)(nil)

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollV5 rolls a pool in which Hunger dice replace regular dice
func (h *DiceHandler) RollV5(ctx context.Context, req *RollV5Request) (*V5RollResponse, error) {
	out, err := h.diceService.RollV5(ctx, &dice.RollV5Input{
		RollContext:  toRollContext(req.Context),
		Pool:         req.Pool,
		Hunger:       req.Hunger,
		Difficulty:   req.Difficulty,
		BloodSurge:   req.BloodSurge,
		BloodPotency: req.BloodPotency,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &V5RollResponse{Result: out.Result, RollID: out.RollID}, nil
}

// WillpowerRoll rolls Willpower alone
func (h *DiceHandler) WillpowerRoll(ctx context.Context, req *WillpowerRollRequest) (*V5RollResponse, error) {
	out, err := h.diceService.WillpowerRoll(ctx, &dice.WillpowerRollInput{
		RollContext: toRollContext(req.Context),
		Willpower:   req.Willpower,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &V5RollResponse{Result: out.Result, RollID: out.RollID}, nil
}

// RemorseCheck rolls Humanity less Stains
func (h *DiceHandler) RemorseCheck(ctx context.Context, req *RemorseCheckRequest) (*RemorseCheckResponse, error) {
	out, err := h.diceService.RemorseCheck(ctx, &dice.RemorseCheckInput{
		RollContext: toRollContext(req.Context),
		Humanity:    req.Humanity,
		Stains:      req.Stains,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemorseCheckResponse{Result: out.Result, RollID: out.RollID}, nil
}

// ContestedV5 rolls two V5 pools against each other
func (h *DiceHandler) ContestedV5(ctx context.Context, req *ContestedV5Request) (*ContestedV5Response, error) {
	out, err := h.diceService.ContestedV5(ctx, &dice.ContestedV5Input{
		RollContext:    toRollContext(req.Context),
		AttackerPool:   req.AttackerPool,
		AttackerHunger: req.AttackerHunger,
		DefenderPool:   req.DefenderPool,
		DefenderHunger: req.DefenderHunger,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ContestedV5Response{Result: out.Result, RollID: out.RollID}, nil
}

// RollV20 rolls a V20 pool against a difficulty
func (h *DiceHandler) RollV20(ctx context.Context, req *RollV20Request) (*RollV20Response, error) {
	out, err := h.diceService.RollV20(ctx, &dice.RollV20Input{
		RollContext: toRollContext(req.Context),
		Pool:        req.Pool,
		Difficulty:  req.Difficulty,
		Specialty:   req.Specialty,
		Willpower:   req.Willpower,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollV20Response{Result: out.Result, RollID: out.RollID}, nil
}

// ExtendedV20 rolls a V20 extended action
func (h *DiceHandler) ExtendedV20(ctx context.Context, req *ExtendedV20Request) (*ExtendedV20Response, error) {
	out, err := h.diceService.ExtendedV20(ctx, &dice.ExtendedV20Input{
		RollContext: toRollContext(req.Context),
		Pool:        req.Pool,
		Difficulty:  req.Difficulty,
		Target:      req.Target,
		MaxRolls:    req.MaxRolls,
		Specialty:   req.Specialty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExtendedV20Response{Result: out.Result, RollID: out.RollID}, nil
}

// ResistedV20 rolls a V20 resisted action
func (h *DiceHandler) ResistedV20(ctx context.Context, req *ResistedV20Request) (*ResistedV20Response, error) {
	out, err := h.diceService.ResistedV20(ctx, &dice.ResistedV20Input{
		RollContext:       toRollContext(req.Context),
		AttackerPool:      req.AttackerPool,
		DefenderPool:      req.DefenderPool,
		Difficulty:        req.Difficulty,
		AttackerSpecialty: req.AttackerSpecialty,
		DefenderSpecialty: req.DefenderSpecialty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResistedV20Response{Result: out.Result, RollID: out.RollID}, nil
}

// DamageV20 rolls V20 damage
func (h *DiceHandler) DamageV20(ctx context.Context, req *DamageV20Request) (*DamageV20Response, error) {
	out, err := h.diceService.DamageV20(ctx, &dice.DamageV20Input{
		RollContext: toRollContext(req.Context),
		Pool:        req.Pool,
		Difficulty:  req.Difficulty,
		Aggravated:  req.Aggravated,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DamageV20Response{Result: out.Result, RollID: out.RollID}, nil
}

// SoakV20 rolls V20 soak
func (h *DiceHandler) SoakV20(ctx context.Context, req *SoakV20Request) (*SoakV20Response, error) {
	damageType, err := parseDamageType(req.DamageType)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.SoakV20(ctx, &dice.SoakV20Input{
		RollContext: toRollContext(req.Context),
		Stamina:     req.Stamina,
		Fortitude:   req.Fortitude,
		DamageType:  damageType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SoakV20Response{Result: out.Result, RollID: out.RollID}, nil
}

// ListRolls lists a chronicle's roll history, newest first
func (h *DiceHandler) ListRolls(ctx context.Context, req *ListRollsRequest) (*ListRollsResponse, error) {
	if req.ChronicleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("chronicle_id is required"))
	}

	out, err := h.diceService.ListRolls(ctx, &dice.ListRollsInput{
		ChronicleID:   req.ChronicleID,
		Limit:         req.Limit,
		IncludeSecret: req.IncludeSecret,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListRollsResponse{Rolls: out.Rolls}, nil
}

func toRollContext(rc *RollContext) history.RollContext {
	if rc == nil {
		return history.RollContext{}
	}
	return history.RollContext{
		ChronicleID: rc.ChronicleID,
		SessionID:   rc.SessionID,
		CharacterID: rc.CharacterID,
		Description: rc.Description,
		Secret:      rc.Secret,
	}
}

// parseDamageType reads a damage type name; empty means bashing
func parseDamageType(name string) (v20.DamageType, error) {
	if name == "" {
		return v20.DamageBashing, nil
	}
	damageType, err := v20.ParseDamageType(name)
	if err != nil {
		return damageType, errors.InvalidArgumentf("invalid damage_type %q", name).
			WithMeta("allowed", v20.DamageTypeNames())
	}
	return damageType, nil
}
