package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/initiative"
	rules "github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// InitiativeHandlerConfig holds dependencies for the initiative handler
type InitiativeHandlerConfig struct {
	InitiativeService initiative.Service
}

// Validate ensures all required dependencies are present
func (c *InitiativeHandlerConfig) Validate() error {
	if c.InitiativeService == nil {
		return errors.InvalidArgument("initiative service is required")
	}
	return nil
}

// InitiativeHandler implements the InitiativeService gRPC service
type InitiativeHandler struct {
	initiativeService initiative.Service
}

var _ InitiativeServiceServer = (*InitiativeHandler)(nil)

// NewInitiativeHandler creates a new initiative handler with the given configuration
func NewInitiativeHandler(cfg *InitiativeHandlerConfig) (*InitiativeHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InitiativeHandler{
		initiativeService: cfg.InitiativeService,
	}, nil
}

// StartCombat opens combat for a session
func (h *InitiativeHandler) StartCombat(ctx context.Context, req *StartCombatRequest) (*OrderResponse, error) {
	out, err := h.initiativeService.StartCombat(ctx, &initiative.StartCombatInput{
		SessionID: req.SessionID,
		Name:      req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OrderResponse{View: toOrderView(out.View)}, nil
}

// AddCombatant adds a combatant
func (h *InitiativeHandler) AddCombatant(ctx context.Context, req *AddCombatantRequest) (*CombatantResponse, error) {
	out, err := h.initiativeService.AddCombatant(ctx, &initiative.AddCombatantInput{
		OrderID:            req.OrderID,
		CharacterID:        req.CharacterID,
		Name:               req.Name,
		InitiativeValue:    req.InitiativeValue,
		InitiativeModifier: req.InitiativeModifier,
		IsNPC:              req.IsNPC,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CombatantResponse{Entry: out.Entry, View: toOrderView(out.View)}, nil
}

// RemoveCombatant removes a combatant
func (h *InitiativeHandler) RemoveCombatant(ctx context.Context, req *RemoveCombatantRequest) (*OrderResponse, error) {
	out, err := h.initiativeService.RemoveCombatant(ctx, &initiative.RemoveCombatantInput{
		OrderID: req.OrderID,
		EntryID: req.EntryID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OrderResponse{View: toOrderView(out.View)}, nil
}

// UpdateCombatant patches a combatant
func (h *InitiativeHandler) UpdateCombatant(ctx context.Context, req *UpdateCombatantRequest) (*CombatantResponse, error) {
	out, err := h.initiativeService.UpdateCombatant(ctx, &initiative.UpdateCombatantInput{
		OrderID: req.OrderID,
		EntryID: req.EntryID,
		Patch: rules.EntryPatch{
			InitiativeValue: req.InitiativeValue,
			HasActed:        req.HasActed,
			IsDelayed:       req.IsDelayed,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CombatantResponse{Entry: out.Entry, View: toOrderView(out.View)}, nil
}

// RollInitiative rolls for every combatant
func (h *InitiativeHandler) RollInitiative(ctx context.Context, req *OrderRequest) (*RollInitiativeResponse, error) {
	out, err := h.initiativeService.RollInitiative(ctx, &initiative.RollInitiativeInput{OrderID: req.OrderID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]EntryRoll, 0, len(out.Rolls))
	for _, r := range out.Rolls {
		rolls = append(rolls, EntryRoll{EntryID: r.EntryID, Face: r.Face, Value: r.Value})
	}

	return &RollInitiativeResponse{Rolls: rolls, View: toOrderView(out.View)}, nil
}

// AdvanceTurn ends the current turn
func (h *InitiativeHandler) AdvanceTurn(ctx context.Context, req *OrderRequest) (*AdvanceTurnResponse, error) {
	out, err := h.initiativeService.AdvanceTurn(ctx, &initiative.AdvanceTurnInput{OrderID: req.OrderID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdvanceTurnResponse{NewRound: out.NewRound, View: toOrderView(out.View)}, nil
}

// EndCombat closes combat
func (h *InitiativeHandler) EndCombat(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	out, err := h.initiativeService.EndCombat(ctx, &initiative.EndCombatInput{OrderID: req.OrderID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OrderResponse{View: toOrderView(out.View)}, nil
}

// GetOrder fetches an order by ID
func (h *InitiativeHandler) GetOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	out, err := h.initiativeService.GetOrder(ctx, &initiative.GetOrderInput{OrderID: req.OrderID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OrderResponse{View: toOrderView(out.View)}, nil
}

// GetActiveOrder fetches the session's running combat
func (h *InitiativeHandler) GetActiveOrder(ctx context.Context, req *GetActiveOrderRequest) (*OrderResponse, error) {
	out, err := h.initiativeService.GetActiveOrder(ctx, &initiative.GetActiveOrderInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OrderResponse{View: toOrderView(out.View)}, nil
}

// DeleteOrder removes an order
func (h *InitiativeHandler) DeleteOrder(ctx context.Context, req *OrderRequest) (*DeleteOrderResponse, error) {
	if _, err := h.initiativeService.DeleteOrder(ctx, &initiative.DeleteOrderInput{OrderID: req.OrderID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteOrderResponse{}, nil
}

func toOrderView(v *initiative.OrderView) *OrderView {
	if v == nil {
		return nil
	}
	return &OrderView{
		Order:     v.Order,
		TurnOrder: v.Sorted,
		Current:   v.Current,
	}
}
