package v5_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v5 "github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

func TestBloodPotencyTable(t *testing.T) {
	levels := v5.BloodPotencyLevels()
	require.Len(t, levels, 11)

	for i, bp := range levels {
		assert.Equal(t, i, bp.Level)
		assert.NotEmpty(t, bp.FeedingPenalty)
	}

	assert.Equal(t, v5.BloodPotency{
		Level: 5, BloodSurge: 4, MendAmount: 3, PowerBonus: 2, RouseReroll: 2, BaneSeverity: 4,
		FeedingPenalty: levels[5].FeedingPenalty,
	}, levels[5])
	assert.Equal(t, 6, levels[10].BloodSurge)
}

func TestBloodPotencyLookup(t *testing.T) {
	_, ok := v5.LookupBloodPotency(11)
	assert.False(t, ok)

	bp, ok := v5.LookupBloodPotency(3)
	assert.True(t, ok)
	assert.Equal(t, 1, bp.RouseReroll)

	assert.Equal(t, 0, v5.BloodPotencyInfo(42).Level)
	assert.Equal(t, 1, v5.BloodPotencyInfo(-1).BloodSurge)
}

func TestGenerationTables(t *testing.T) {
	assert.Equal(t, 1, v5.StartingBloodPotency(13))
	assert.Equal(t, 0, v5.StartingBloodPotency(14))
	assert.Equal(t, 3, v5.StartingBloodPotency(9))
	assert.Equal(t, 1, v5.StartingBloodPotency(1))

	assert.Equal(t, 2, v5.MaxBloodPotencyFor(13))
	assert.Equal(t, 10, v5.MaxBloodPotencyFor(4))
	assert.Equal(t, 5, v5.MaxBloodPotencyFor(20))
}

func TestFeedingGates(t *testing.T) {
	assert.True(t, v5.CanFeedOnAnimals(1))
	assert.False(t, v5.CanFeedOnAnimals(2))
	assert.True(t, v5.CanUseBloodBags(2))
	assert.False(t, v5.CanUseBloodBags(3))

	assert.Equal(t, 7, v5.BloodSurgePool(4, 3))
}

func TestDaytimePenalty(t *testing.T) {
	expected := map[int]int{10: -1, 9: -1, 8: -2, 7: -2, 6: -3, 5: -3, 4: -4, 3: -4, 2: -5, 0: -5}
	for humanity, penalty := range expected {
		assert.Equal(t, penalty, v5.DaytimePenalty(humanity), "humanity %d", humanity)
	}
}
