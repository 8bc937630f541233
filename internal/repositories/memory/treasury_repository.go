package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TreasuryRepository implements repositories.TreasuryRepository over a single record
type TreasuryRepository struct {
	mu       sync.RWMutex
	treasury *models.Treasury
}

// NewTreasuryRepository creates a new in-memory TreasuryRepository
func NewTreasuryRepository() repositories.TreasuryRepository {
	return &TreasuryRepository{}
}

// Get returns the treasury record, creating a zero-balance one if none exists
func (r *TreasuryRepository) Get(ctx context.Context) (*models.Treasury, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.treasury == nil {
		r.treasury = &models.Treasury{
			ID:        primitive.NewObjectID(),
			Balance:   0,
			UpdatedAt: time.Now(),
		}
	}
	copied := *r.treasury
	return &copied, nil
}

// Save persists the treasury balance
func (r *TreasuryRepository) Save(ctx context.Context, treasury *models.Treasury) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	treasury.UpdatedAt = time.Now()
	stored := *treasury
	r.treasury = &stored
	return nil
}
