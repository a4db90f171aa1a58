package v20_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v20 "github.com/KirkDiggler/vtm-api/internal/rules/v20"
)

func TestGenerationTables(t *testing.T) {
	pools := map[int]int{3: 100, 4: 50, 7: 20, 10: 13, 11: 12, 12: 11, 13: 10, 15: 10, 2: 10, 16: 10}
	for generation, pool := range pools {
		assert.Equal(t, pool, v20.MaxBloodPool(generation), "generation %d", generation)
	}

	perTurn := map[int]int{3: 20, 4: 10, 5: 8, 8: 4, 10: 2, 11: 1, 15: 1, 1: 1}
	for generation, n := range perTurn {
		assert.Equal(t, n, v20.BloodPerTurn(generation), "generation %d", generation)
	}
}

func TestSpendBlood(t *testing.T) {
	testCases := []struct {
		name       string
		current    int
		amount     int
		generation int
		wantNew    int
		wantChange int
		wantMsg    string
	}{
		{"spend within limits", 10, 1, 13, 9, -1, "Spent 1 blood. Pool now at 9."},
		{"over per-turn limit", 3, 2, 13, 3, 0, "Cannot spend more than 1 blood per turn."},
		{"more than the pool", 1, 2, 8, 1, 0, "Not enough blood!"},
		{"empties the pool", 2, 2, 8, 0, -2, "Blood pool empty! Must feed immediately or enter torpor."},
		{"critically low", 4, 2, 8, 2, -2, "Blood pool critically low (2). Consider feeding."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v20.SpendBlood(tc.current, tc.amount, 15, tc.generation)
			assert.Equal(t, tc.current, got.Old)
			assert.Equal(t, tc.wantNew, got.New)
			assert.Equal(t, 15, got.Max)
			assert.Equal(t, tc.wantChange, got.Change)
			assert.Equal(t, tc.wantMsg, got.Message)
		})
	}
}

func TestGainBlood(t *testing.T) {
	got := v20.GainBlood(8, 5, 10)
	assert.Equal(t, v20.BloodPoolChange{Old: 8, New: 10, Max: 10, Change: 2, Message: "Gained 2 blood (at maximum)."}, got)

	got = v20.GainBlood(3, 2, 10)
	assert.Equal(t, v20.BloodPoolChange{Old: 3, New: 5, Max: 10, Change: 2, Message: "Gained 2 blood. Pool now at 5."}, got)
}

func TestHealDamage(t *testing.T) {
	testCases := []struct {
		name       string
		pool       int
		damageType v20.DamageType
		amount     int
		generation int
		want       v20.HealResult
	}{
		{
			"lethal capped by per-turn", 10, v20.DamageLethal, 3, 13,
			v20.HealResult{Success: true, Healed: 1, Cost: 1, Message: "Healed 1 lethal damage. Can heal more next turn."},
		},
		{
			"aggravated without enough blood", 3, v20.DamageAggravated, 1, 13,
			v20.HealResult{Message: "Not enough blood to heal. Need 5, have 3."},
		},
		{
			"aggravated ignores per-turn", 10, v20.DamageAggravated, 1, 13,
			v20.HealResult{Success: true, Healed: 1, Cost: 5, Message: "Healed 1 aggravated damage for 5 blood."},
		},
		{
			"bashing within limit", 10, v20.DamageBashing, 2, 8,
			v20.HealResult{Success: true, Healed: 2, Cost: 2, Message: "Healed 2 bashing damage for 2 blood."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v20.HealDamage(tc.pool, tc.damageType, tc.amount, tc.generation))
		})
	}
}

func TestBoostAttribute(t *testing.T) {
	got := v20.BoostAttribute(5, v20.AttributeStrength, 2, 13)
	assert.Equal(t, v20.BoostResult{Message: "Cannot spend more than 1 blood per turn."}, got)

	got = v20.BoostAttribute(1, v20.AttributeDexterity, 2, 8)
	assert.Equal(t, v20.BoostResult{Message: "Not enough blood."}, got)

	got = v20.BoostAttribute(5, v20.AttributeStamina, 3, 8)
	assert.Equal(t, v20.BoostResult{Success: true, Boost: 3, Cost: 3, Message: "Boosted stamina by 3 for one turn."}, got)

	assert.True(t, v20.AttributeStamina.Valid())
	assert.False(t, v20.Attribute("charisma").Valid())
}
