package testutils

import (
	"time"

	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// Shared identifiers for test fixtures
const (
	TestChronicleID = "chronicle-test-001"
	TestSessionID   = "session-test-001"
	TestCharacterID = "char-test-001"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Theo Bell"
)

// TestTime is the fixed instant fixtures are stamped with
var TestTime = time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC)

// Combat stages for testing
const (
	StageEmpty    = "empty"
	StageRolled   = "rolled"
	StageMidRound = "mid_round"
	StageEnded    = "ended"
)

// CreateTestOrder creates an active order for sessionID with no combatants
func CreateTestOrder(sessionID string) *initiative.Order {
	return &initiative.Order{
		ID:           "order-test-001",
		SessionID:    sessionID,
		Name:         initiative.DefaultName,
		Active:       true,
		CurrentRound: 1,
		Entries:      []*initiative.Entry{},
		CreatedAt:    TestTime,
	}
}

// CreateTestOrderAtStage creates an order at various points of a combat.
// Rolled stages hold a vampire at 14 and a ghoul at 9.
func CreateTestOrderAtStage(sessionID string, stage string) *initiative.Order {
	order := CreateTestOrder(sessionID)
	if stage == StageEmpty {
		return order
	}

	order.Entries = []*initiative.Entry{
		{ID: "entry-test-001", CharacterID: TestCharacterID, Name: TestCharacterName, InitiativeValue: 14, InitiativeModifier: 6, CreatedAt: TestTime},
		{ID: "entry-test-002", Name: "Ghoul", InitiativeValue: 9, InitiativeModifier: 4, IsNPC: true, CreatedAt: TestTime},
	}

	switch stage {
	case StageMidRound:
		order.Entries[0].HasActed = true
		order.CurrentTurnIndex = 1

	case StageEnded:
		ended := TestTime.Add(time.Hour)
		order.Active = false
		order.EndedAt = &ended
	}

	return order
}
