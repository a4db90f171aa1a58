// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// OrderBuilder provides a fluent interface for building test Order instances
type OrderBuilder struct {
	order *initiative.Order
}

// NewOrderBuilder creates a new builder for an active order in round 1
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &initiative.Order{
			ID:           "order-test-123",
			SessionID:    "session-test-123",
			Name:         initiative.DefaultName,
			Active:       true,
			CurrentRound: 1,
			Entries:      []*initiative.Entry{},
			CreatedAt:    time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the order ID
func (b *OrderBuilder) WithID(id string) *OrderBuilder {
	b.order.ID = id
	return b
}

// WithSessionID sets the session ID
func (b *OrderBuilder) WithSessionID(sessionID string) *OrderBuilder {
	b.order.SessionID = sessionID
	return b
}

// WithName sets the combat name
func (b *OrderBuilder) WithName(name string) *OrderBuilder {
	b.order.Name = name
	return b
}

// WithCombatant adds a player character with a rolled initiative value.
// Entry IDs follow insertion order: entry-1, entry-2, ...
func (b *OrderBuilder) WithCombatant(name string, value int) *OrderBuilder {
	return b.withEntry(name, value, false)
}

// WithNPC adds a storyteller character with a rolled initiative value
func (b *OrderBuilder) WithNPC(name string, value int) *OrderBuilder {
	return b.withEntry(name, value, true)
}

func (b *OrderBuilder) withEntry(name string, value int, npc bool) *OrderBuilder {
	b.order.Entries = append(b.order.Entries, &initiative.Entry{
		ID:              fmt.Sprintf("entry-%d", len(b.order.Entries)+1),
		Name:            name,
		InitiativeValue: value,
		IsNPC:           npc,
		CreatedAt:       b.order.CreatedAt,
	})
	return b
}

// AtTurn moves the order to round and turn index
func (b *OrderBuilder) AtTurn(round, index int) *OrderBuilder {
	b.order.CurrentRound = round
	b.order.CurrentTurnIndex = index
	return b
}

// Ended closes the order at t
func (b *OrderBuilder) Ended(t time.Time) *OrderBuilder {
	b.order.Active = false
	b.order.EndedAt = &t
	return b
}

// Build returns a copy of the built order
func (b *OrderBuilder) Build() *initiative.Order {
	return b.order.Clone()
}
