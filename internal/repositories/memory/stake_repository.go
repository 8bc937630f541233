package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stakeKey struct {
	tier    int
	address string
}

// StakeRepository implements repositories.StakeRepository over a (tier, address)-keyed map
type StakeRepository struct {
	mu     sync.RWMutex
	stakes map[stakeKey]*models.Stake
	order  []stakeKey // creation order, so FindByTier is deterministic
}

// NewStakeRepository creates a new in-memory StakeRepository
func NewStakeRepository() repositories.StakeRepository {
	return &StakeRepository{stakes: make(map[stakeKey]*models.Stake)}
}

// FindByTierAndAddress finds the stake accumulator for a (tier, address) pair
func (r *StakeRepository) FindByTierAndAddress(ctx context.Context, tier int, address string) (*models.Stake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stake, ok := r.stakes[stakeKey{tier, address}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *stake
	return &copied, nil
}

// FindByTier finds all stake records for a tier in creation order
func (r *StakeRepository) FindByTier(ctx context.Context, tier int) ([]*models.Stake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stakes := []*models.Stake{}
	for _, key := range r.order {
		if key.tier != tier {
			continue
		}
		if stake, ok := r.stakes[key]; ok {
			copied := *stake
			stakes = append(stakes, &copied)
		}
	}
	return stakes, nil
}

// Increment adds amount to the accumulator, creating the record if absent
func (r *StakeRepository) Increment(ctx context.Context, tier int, address string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stakeKey{tier, address}
	stake, ok := r.stakes[key]
	if !ok {
		stake = &models.Stake{
			ID:        primitive.NewObjectID(),
			Tier:      tier,
			Address:   address,
			CreatedAt: time.Now(),
		}
		r.stakes[key] = stake
		r.order = append(r.order, key)
	}
	stake.Amount += amount
	stake.UpdatedAt = time.Now()
	return nil
}

// DeleteByTier removes all stake records for a tier
func (r *StakeRepository) DeleteByTier(ctx context.Context, tier int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	remaining := r.order[:0]
	for _, key := range r.order {
		if key.tier == tier {
			delete(r.stakes, key)
			continue
		}
		remaining = append(remaining, key)
	}
	r.order = remaining
	return nil
}
