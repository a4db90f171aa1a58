// Package rolllog stores the dice history of a chronicle
package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/vtm-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/vtm-api/internal/repositories/roll_log Repository

// DefaultListLimit is used when a List call does not set one
const DefaultListLimit = 50

// Entry is one logged roll
type Entry struct {
	ID          string `json:"id"`
	ChronicleID string `json:"chronicle_id"`
	SessionID   string `json:"session_id,omitempty"`
	CharacterID string `json:"character_id,omitempty"`
	// System is "v5" or "v20"
	System string `json:"system"`
	// Kind names the operation, e.g. "roll", "rouse_check", "frenzy"
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	// Secret rolls are hidden from players; only the storyteller lists them
	Secret    bool   `json:"secret"`
	Result    string `json:"result"`
	Successes int    `json:"successes"`
	// Detail is the full result record as JSON
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AppendInput contains the roll to record
type AppendInput struct {
	Entry *Entry
}

// AppendOutput contains the stored roll
type AppendOutput struct {
	Entry *Entry
}

// ListInput selects history for a chronicle, newest first
type ListInput struct {
	ChronicleID   string
	Limit         int
	IncludeSecret bool
}

// ListOutput contains the selected rolls
type ListOutput struct {
	Entries []*Entry
}

// Repository defines roll history storage
type Repository interface {
	// Append records a roll
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns recent rolls for a chronicle, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

func validateAppend(input AppendInput) error {
	if input.Entry == nil {
		return errors.InvalidArgument("entry is required")
	}
	if input.Entry.ID == "" {
		return errors.InvalidArgument("entry ID is required")
	}
	if input.Entry.ChronicleID == "" {
		return errors.InvalidArgument("chronicle ID is required")
	}
	return nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func visible(e *Entry, includeSecret bool) bool {
	return includeSecret || !e.Secret
}
