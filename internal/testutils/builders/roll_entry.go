package builders

import (
	"encoding/json"
	"time"

	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
)

// RollEntryBuilder provides a fluent interface for building roll log entries
type RollEntryBuilder struct {
	entry *rolllog.Entry
}

// NewRollEntryBuilder creates a builder for a successful V5 roll
func NewRollEntryBuilder() *RollEntryBuilder {
	return &RollEntryBuilder{
		entry: &rolllog.Entry{
			ID:          "roll-test-123",
			ChronicleID: "chronicle-test-123",
			System:      "v5",
			Kind:        "roll",
			Result:      "success",
			Successes:   2,
			Detail:      json.RawMessage(`{}`),
			CreatedAt:   time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the entry ID
func (b *RollEntryBuilder) WithID(id string) *RollEntryBuilder {
	b.entry.ID = id
	return b
}

// WithChronicleID sets the chronicle
func (b *RollEntryBuilder) WithChronicleID(chronicleID string) *RollEntryBuilder {
	b.entry.ChronicleID = chronicleID
	return b
}

// WithCharacterID sets who rolled
func (b *RollEntryBuilder) WithCharacterID(characterID string) *RollEntryBuilder {
	b.entry.CharacterID = characterID
	return b
}

// WithV20 marks the entry as a V20 roll
func (b *RollEntryBuilder) WithV20() *RollEntryBuilder {
	b.entry.System = "v20"
	return b
}

// WithKind sets the operation name
func (b *RollEntryBuilder) WithKind(kind string) *RollEntryBuilder {
	b.entry.Kind = kind
	return b
}

// WithResult sets the outcome and success count
func (b *RollEntryBuilder) WithResult(result string, successes int) *RollEntryBuilder {
	b.entry.Result = result
	b.entry.Successes = successes
	return b
}

// Secret hides the entry from players
func (b *RollEntryBuilder) Secret() *RollEntryBuilder {
	b.entry.Secret = true
	return b
}

// WithDescription sets what the roll was for
func (b *RollEntryBuilder) WithDescription(description string) *RollEntryBuilder {
	b.entry.Description = description
	return b
}

// Build returns the built entry
func (b *RollEntryBuilder) Build() *rolllog.Entry {
	e := *b.entry
	return &e
}
