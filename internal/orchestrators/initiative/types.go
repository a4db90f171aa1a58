package initiative

import (
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// OrderView is an order with its turn order computed for display
type OrderView struct {
	Order *initiative.Order
	// Sorted lists entries by initiative value, highest first
	Sorted []*initiative.Entry
	// Current is nil when combat has ended or has no combatants
	Current *initiative.Entry
}

// StartCombatInput defines the request for starting combat in a session
type StartCombatInput struct {
	SessionID string
	Name      string
}

// StartCombatOutput defines the response for starting combat
type StartCombatOutput struct {
	View *OrderView
}

// AddCombatantInput defines the request for adding a combatant
type AddCombatantInput struct {
	OrderID     string
	CharacterID string
	Name        string
	// InitiativeValue is set for manual initiative; nil waits for a roll
	InitiativeValue    *int
	InitiativeModifier int
	IsNPC              bool
}

// AddCombatantOutput defines the response for adding a combatant
type AddCombatantOutput struct {
	Entry *initiative.Entry
	View  *OrderView
}

// RemoveCombatantInput defines the request for removing a combatant
type RemoveCombatantInput struct {
	OrderID string
	EntryID string
}

// RemoveCombatantOutput defines the response for removing a combatant
type RemoveCombatantOutput struct {
	View *OrderView
}

// UpdateCombatantInput defines the request for patching a combatant
type UpdateCombatantInput struct {
	OrderID string
	EntryID string
	Patch   initiative.EntryPatch
}

// UpdateCombatantOutput defines the response for patching a combatant
type UpdateCombatantOutput struct {
	Entry *initiative.Entry
	View  *OrderView
}

// RollInitiativeInput defines the request for rolling everyone's initiative
type RollInitiativeInput struct {
	OrderID string
}

// EntryRoll is the die one combatant rolled
type EntryRoll struct {
	EntryID string
	Face    int
	Value   int
}

// RollInitiativeOutput defines the response for rolling initiative
type RollInitiativeOutput struct {
	Rolls []EntryRoll
	View  *OrderView
}

// AdvanceTurnInput defines the request for ending the current turn
type AdvanceTurnInput struct {
	OrderID string
}

// AdvanceTurnOutput defines the response for ending the current turn
type AdvanceTurnOutput struct {
	NewRound bool
	View     *OrderView
}

// EndCombatInput defines the request for ending combat
type EndCombatInput struct {
	OrderID string
}

// EndCombatOutput defines the response for ending combat
type EndCombatOutput struct {
	View *OrderView
}

// GetOrderInput defines the request for an order by ID
type GetOrderInput struct {
	OrderID string
}

// GetOrderOutput defines the response for an order
type GetOrderOutput struct {
	View *OrderView
}

// GetActiveOrderInput defines the request for a session's running combat
type GetActiveOrderInput struct {
	SessionID string
}

// GetActiveOrderOutput defines the response for a session's running combat
type GetActiveOrderOutput struct {
	View *OrderView
}

// DeleteOrderInput defines the request for deleting an order
type DeleteOrderInput struct {
	OrderID string
}

// DeleteOrderOutput defines the response for deleting an order
type DeleteOrderOutput struct{}
