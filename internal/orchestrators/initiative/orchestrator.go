// Package initiative implements the orchestrator for combat turn order. It
// serializes load-mutate-save per order; the rules package does the state
// transitions.
package initiative

//go:generate mockgen -destination=mock/mock_service.go -package=initiativemock github.com/KirkDiggler/vtm-api/internal/orchestrators/initiative Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	initiativeorders "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// Service defines the interface for initiative operations
type Service interface {
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)
	AddCombatant(ctx context.Context, input *AddCombatantInput) (*AddCombatantOutput, error)
	RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error)
	UpdateCombatant(ctx context.Context, input *UpdateCombatantInput) (*UpdateCombatantOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)
	GetOrder(ctx context.Context, input *GetOrderInput) (*GetOrderOutput, error)
	GetActiveOrder(ctx context.Context, input *GetActiveOrderInput) (*GetActiveOrderOutput, error)
	DeleteOrder(ctx context.Context, input *DeleteOrderInput) (*DeleteOrderOutput, error)
}

// Config holds the dependencies for the initiative orchestrator
type Config struct {
	Repository  initiativeorders.Repository
	IDGenerator idgen.Generator
	// Clock defaults to the wall clock
	Clock clock.Clock
	// Source defaults to the rpg-toolkit backed roller
	Source roller.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  initiativeorders.Repository
	idGen idgen.Generator
	clock clock.Clock
	src   roller.Source

	// order ID -> *sync.Mutex
	locks sync.Map
}

// NewOrchestrator creates a new initiative orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	src := cfg.Source
	if src == nil {
		src = roller.NewDefault()
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		clock: clk,
		src:   src,
	}, nil
}

// StartCombat opens a new order for a session with no running combat
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	var active *initiative.Order
	existing, err := o.repo.GetActive(ctx, initiativeorders.GetActiveInput{SessionID: input.SessionID})
	switch {
	case err == nil:
		active = existing.Order
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to check for active combat")
	}

	order, err := initiative.Start(active, o.idGen.Generate(), input.SessionID, input.Name, o.clock.Now())
	if err != nil {
		return nil, err
	}

	if _, err := o.repo.Create(ctx, initiativeorders.CreateInput{Order: order}); err != nil {
		if errors.IsAlreadyExists(err) {
			// another start won the race
			return nil, errors.FailedPrecondition("combat already active for session").
				WithMeta("session_id", input.SessionID)
		}
		return nil, errors.Wrap(err, "failed to create initiative order")
	}

	slog.Info("Combat started",
		"order_id", order.ID,
		"session_id", order.SessionID,
		"name", order.Name,
	)

	return &StartCombatOutput{View: newView(order)}, nil
}

// AddCombatant appends a combatant to a running combat
func (o *orchestrator) AddCombatant(ctx context.Context, input *AddCombatantInput) (*AddCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("order_id", input.OrderID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var entry *initiative.Entry
	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		entry = &initiative.Entry{
			ID:                 o.idGen.Generate(),
			CharacterID:        input.CharacterID,
			Name:               input.Name,
			InitiativeModifier: input.InitiativeModifier,
			IsNPC:              input.IsNPC,
			CreatedAt:          o.clock.Now(),
		}
		if input.InitiativeValue != nil {
			entry.InitiativeValue = *input.InitiativeValue
		}
		return order.Add(entry)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Combatant added",
		"order_id", order.ID,
		"entry_id", entry.ID,
		"name", entry.Name,
		"is_npc", entry.IsNPC,
	)

	return &AddCombatantOutput{Entry: entry, View: newView(order)}, nil
}

// RemoveCombatant drops a combatant, whether or not combat is still running
func (o *orchestrator) RemoveCombatant(ctx context.Context, input *RemoveCombatantInput) (*RemoveCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEntryRef(input.OrderID, input.EntryID); err != nil {
		return nil, err
	}

	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		return order.Remove(input.EntryID)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Combatant removed", "order_id", order.ID, "entry_id", input.EntryID)

	return &RemoveCombatantOutput{View: newView(order)}, nil
}

// UpdateCombatant patches a combatant's value or turn flags
func (o *orchestrator) UpdateCombatant(ctx context.Context, input *UpdateCombatantInput) (*UpdateCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEntryRef(input.OrderID, input.EntryID); err != nil {
		return nil, err
	}

	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		return order.UpdateEntry(input.EntryID, input.Patch)
	})
	if err != nil {
		return nil, err
	}

	entry, _ := order.Entry(input.EntryID)
	return &UpdateCombatantOutput{Entry: entry, View: newView(order)}, nil
}

// RollInitiative rolls a d10 plus modifier for every combatant
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	var faces []int
	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		faces = order.RollAll(o.src)
		return nil
	})
	if err != nil {
		return nil, err
	}

	rolls := make([]EntryRoll, 0, len(faces))
	for i, face := range faces {
		e := order.Entries[i]
		rolls = append(rolls, EntryRoll{EntryID: e.ID, Face: face, Value: e.InitiativeValue})
	}

	slog.Info("Initiative rolled", "order_id", order.ID, "combatants", len(rolls))

	return &RollInitiativeOutput{Rolls: rolls, View: newView(order)}, nil
}

// AdvanceTurn ends the current combatant's turn
func (o *orchestrator) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	var round int
	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		round = order.CurrentRound
		return order.Advance()
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Advanced turn",
		"order_id", order.ID,
		"round", order.CurrentRound,
		"turn_index", order.CurrentTurnIndex,
	)

	return &AdvanceTurnOutput{NewRound: order.CurrentRound > round, View: newView(order)}, nil
}

// EndCombat closes an order. Ending an ended order changes nothing.
func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	order, err := o.mutate(ctx, input.OrderID, func(order *initiative.Order) error {
		order.End(o.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Combat ended",
		"order_id", order.ID,
		"session_id", order.SessionID,
		"rounds", order.CurrentRound,
	)

	return &EndCombatOutput{View: newView(order)}, nil
}

// GetOrder retrieves an order by ID
func (o *orchestrator) GetOrder(ctx context.Context, input *GetOrderInput) (*GetOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	out, err := o.repo.Get(ctx, initiativeorders.GetInput{OrderID: input.OrderID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get initiative order")
	}

	return &GetOrderOutput{View: newView(out.Order)}, nil
}

// GetActiveOrder retrieves the session's running combat
func (o *orchestrator) GetActiveOrder(ctx context.Context, input *GetActiveOrderInput) (*GetActiveOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.GetActive(ctx, initiativeorders.GetActiveInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active initiative order")
	}

	return &GetActiveOrderOutput{View: newView(out.Order)}, nil
}

// DeleteOrder removes an order and frees its session
func (o *orchestrator) DeleteOrder(ctx context.Context, input *DeleteOrderInput) (*DeleteOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	unlock := o.lock(input.OrderID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, initiativeorders.DeleteInput{OrderID: input.OrderID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete initiative order")
	}
	o.locks.Delete(input.OrderID)

	slog.Info("Initiative order deleted", "order_id", input.OrderID)

	return &DeleteOrderOutput{}, nil
}

// mutate loads an order, applies fn and saves the result under the order's lock
func (o *orchestrator) mutate(ctx context.Context, orderID string, fn func(*initiative.Order) error) (*initiative.Order, error) {
	unlock := o.lock(orderID)
	defer unlock()

	out, err := o.repo.Get(ctx, initiativeorders.GetInput{OrderID: orderID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get initiative order")
	}
	order := out.Order

	if err := fn(order); err != nil {
		return nil, fromEntityError(err, orderID)
	}

	if _, err := o.repo.Update(ctx, initiativeorders.UpdateInput{Order: order}); err != nil {
		return nil, errors.Wrap(err, "failed to save initiative order")
	}

	return order, nil
}

func (o *orchestrator) lock(orderID string) func() {
	mu, _ := o.locks.LoadOrStore(orderID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func newView(order *initiative.Order) *OrderView {
	return &OrderView{
		Order:   order,
		Sorted:  order.Sorted(),
		Current: order.Current(),
	}
}

func validateEntryRef(orderID, entryID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("order_id", orderID, vb)
	errors.ValidateRequired("entry_id", entryID, vb)
	return vb.Build()
}

// fromEntityError gives toolkit entity failures a status code. Other errors
// pass through unchanged.
func fromEntityError(err error, orderID string) error {
	entityErr, ok := errors.AsType[*core.EntityError](err)
	if !ok {
		return err
	}

	var wrapped *errors.Error
	switch {
	case errors.Is(err, core.ErrEntityNotFound):
		wrapped = errors.WrapWithCode(err, errors.CodeNotFound, "combatant not found")
	case errors.Is(err, core.ErrDuplicateEntity):
		wrapped = errors.WrapWithCode(err, errors.CodeAlreadyExists, "combatant already in order")
	default:
		wrapped = errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid combatant")
	}

	wrapped = wrapped.WithMeta("order_id", orderID)
	if entityErr.EntityID != "" {
		wrapped = wrapped.WithMeta("entry_id", entityErr.EntityID)
	}
	return wrapped
}
