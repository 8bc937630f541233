package memory

import (
	"context"
	"testing"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRepository(t *testing.T) {
	repo := NewPoolRepository()
	ctx := context.Background()

	_, err := repo.FindByTier(ctx, 0)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Create(ctx, &models.Pool{Tier: 1, MinStake: 50, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &models.Pool{Tier: 0, MinStake: 100, IsActive: true}))

	pool, err := repo.FindByTier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), pool.MinStake)

	// Mutating the returned copy does not touch the stored pool
	pool.TotalStaked = 999
	again, err := repo.FindByTier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.TotalStaked)

	pool.TotalStaked = 250
	require.NoError(t, repo.Update(ctx, pool))
	again, err = repo.FindByTier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(250), again.TotalStaked)

	pools, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, 0, pools[0].Tier)
	assert.Equal(t, 1, pools[1].Tier)
}

func TestStakeRepositoryIncrement(t *testing.T) {
	repo := NewStakeRepository()
	ctx := context.Background()

	_, err := repo.FindByTierAndAddress(ctx, 0, "alice")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Increment(ctx, 0, "alice", 100))
	require.NoError(t, repo.Increment(ctx, 0, "bob", 150))
	require.NoError(t, repo.Increment(ctx, 0, "alice", 25))

	stake, err := repo.FindByTierAndAddress(ctx, 0, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(125), stake.Amount)

	// Same address in another tier is a distinct accumulator
	require.NoError(t, repo.Increment(ctx, 1, "alice", 7))
	stake, err = repo.FindByTierAndAddress(ctx, 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), stake.Amount)

	// FindByTier returns creation order, scoped to the tier
	stakes, err := repo.FindByTier(ctx, 0)
	require.NoError(t, err)
	require.Len(t, stakes, 2)
	assert.Equal(t, "alice", stakes[0].Address)
	assert.Equal(t, "bob", stakes[1].Address)
}

func TestStakeRepositoryDeleteByTier(t *testing.T) {
	repo := NewStakeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Increment(ctx, 0, "alice", 100))
	require.NoError(t, repo.Increment(ctx, 1, "bob", 50))

	require.NoError(t, repo.DeleteByTier(ctx, 0))

	_, err := repo.FindByTierAndAddress(ctx, 0, "alice")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	stakes, err := repo.FindByTier(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stakes, 1)
	assert.Equal(t, "bob", stakes[0].Address)
}

func TestParticipantRepositoryRosterOrder(t *testing.T) {
	repo := NewParticipantRepository()
	ctx := context.Background()

	for i, address := range []string{"alice", "bob", "carol"} {
		err := repo.Append(ctx, &models.Participant{Tier: 0, Address: address, Position: i})
		require.NoError(t, err)
	}

	roster, err := repo.FindByTier(ctx, 0)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	for i, address := range []string{"alice", "bob", "carol"} {
		assert.Equal(t, address, roster[i].Address)
		assert.Equal(t, i, roster[i].Position)
	}

	count, err := repo.CountByTier(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ok, err := repo.Exists(ctx, 0, "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 0, "dave")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Exists(ctx, 1, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.DeleteByTier(ctx, 0))
	count, err = repo.CountByTier(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTreasuryRepositoryLazyCreate(t *testing.T) {
	repo := NewTreasuryRepository()
	ctx := context.Background()

	treasury, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), treasury.Balance)

	treasury.Balance = 42
	require.NoError(t, repo.Save(ctx, treasury))

	treasury, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), treasury.Balance)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	user := &models.User{Email: "a@example.com", Address: "alice", Role: "user"}
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", byEmail.Address)

	byAddress, err := repo.FindByAddress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byAddress.Email)

	_, err = repo.FindByAddress(ctx, "bob")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
