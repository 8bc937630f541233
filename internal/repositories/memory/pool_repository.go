// Package memory provides in-memory repository implementations backed by explicit
// keyed maps. They serve tests and standalone deployments that run without MongoDB.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PoolRepository implements repositories.PoolRepository over a tier-keyed map
type PoolRepository struct {
	mu    sync.RWMutex
	pools map[int]*models.Pool
}

// NewPoolRepository creates a new in-memory PoolRepository
func NewPoolRepository() repositories.PoolRepository {
	return &PoolRepository{pools: make(map[int]*models.Pool)}
}

// Create creates a new pool, replacing any prior (inactive) pool for the tier
func (r *PoolRepository) Create(ctx context.Context, pool *models.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pool.ID = primitive.NewObjectID()
	pool.CreatedAt = time.Now()
	pool.UpdatedAt = time.Now()
	stored := *pool
	r.pools[pool.Tier] = &stored
	return nil
}

// FindByTier finds the pool for a tier
func (r *PoolRepository) FindByTier(ctx context.Context, tier int) (*models.Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pool, ok := r.pools[tier]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *pool
	return &copied, nil
}

// Update updates a pool
func (r *PoolRepository) Update(ctx context.Context, pool *models.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pool.UpdatedAt = time.Now()
	stored := *pool
	r.pools[pool.Tier] = &stored
	return nil
}

// FindAll finds all pools sorted by tier
func (r *PoolRepository) FindAll(ctx context.Context) ([]*models.Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pools := make([]*models.Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		copied := *pool
		pools = append(pools, &copied)
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].Tier < pools[j].Tier })
	return pools, nil
}
