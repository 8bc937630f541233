package services

import (
	"math"
	"testing"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(addresses ...string) []*models.Participant {
	participants := make([]*models.Participant, 0, len(addresses))
	for i, address := range addresses {
		participants = append(participants, &models.Participant{Tier: 0, Address: address, Position: i})
	}
	return participants
}

func TestSelectWinnerModulus(t *testing.T) {
	r := roster("alice", "bob", "carol")

	tests := []struct {
		entropy uint64
		want    string
	}{
		{0, "alice"},
		{1, "bob"},
		{2, "carol"},
		{3, "alice"},
		{20, "carol"},
	}
	for _, tt := range tests {
		winner, err := selectWinner(r, tt.entropy)
		require.NoError(t, err)
		assert.Equal(t, tt.want, winner.Address, "entropy %d", tt.entropy)
	}
}

func TestSelectWinnerDeterministic(t *testing.T) {
	r := roster("alice", "bob", "carol", "dave")
	first, err := selectWinner(r, 987654321)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := selectWinner(r, 987654321)
		require.NoError(t, err)
		assert.Equal(t, first.Address, again.Address)
	}
}

func TestSelectWinnerEmptyRoster(t *testing.T) {
	_, err := selectWinner(nil, 42)
	assert.ErrorIs(t, err, models.ErrNoParticipants)
}

func TestComputePayoutFloors(t *testing.T) {
	prize, rewards := computePayout(200, 5000, 3000)
	assert.Equal(t, int64(100), prize)
	assert.Equal(t, int64(60), rewards)

	// Truncation toward zero, not rounding
	prize, rewards = computePayout(199, 5000, 3333)
	assert.Equal(t, int64(99), prize)
	assert.Equal(t, int64(66), rewards)

	prize, rewards = computePayout(0, 5000, 3000)
	assert.Equal(t, int64(0), prize)
	assert.Equal(t, int64(0), rewards)
}

func TestComputePayoutLargeTotals(t *testing.T) {
	// The intermediate product exceeds int64; the quotient must still be exact.
	prize, rewards := computePayout(math.MaxInt64, 5000, 3000)
	assert.Equal(t, int64(4611686018427387903), prize)   // floor(MaxInt64 * 5000 / 10000)
	assert.Equal(t, int64(2767011611056432742), rewards) // floor(MaxInt64 * 3000 / 10000)

	prize, rewards = computePayout(math.MaxInt64, 9999, 0)
	assert.Equal(t, int64(9222449699651090329), prize) // floor(MaxInt64 * 9999 / 10000)
	assert.Equal(t, int64(0), rewards)
}

func TestValidShares(t *testing.T) {
	assert.True(t, validShares(5000, 3000))
	assert.True(t, validShares(0, 0))
	assert.True(t, validShares(9999, 0))
	assert.False(t, validShares(5000, 5000)) // sum equals the basis
	assert.False(t, validShares(9000, 2000))
	assert.False(t, validShares(-1, 100))
	assert.False(t, validShares(100, -1))
}
