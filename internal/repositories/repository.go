package repositories

import (
	"context"
	"errors"

	"github.com/stakedraw/stakedraw-backend/internal/models"
)

// ErrNotFound is returned by every repository implementation when a record does not
// exist, so services stay independent of the storage backend.
var ErrNotFound = errors.New("record not found")

// PoolRepository defines the interface for pool data operations. Pools are keyed by
// tier; FindByTier returns the most recent pool for the tier regardless of state.
type PoolRepository interface {
	Create(ctx context.Context, pool *models.Pool) error
	FindByTier(ctx context.Context, tier int) (*models.Pool, error)
	Update(ctx context.Context, pool *models.Pool) error
	FindAll(ctx context.Context) ([]*models.Pool, error)
}

// StakeRepository defines the interface for per-(tier, address) stake accumulators.
type StakeRepository interface {
	FindByTierAndAddress(ctx context.Context, tier int, address string) (*models.Stake, error)
	FindByTier(ctx context.Context, tier int) ([]*models.Stake, error)
	// Increment adds amount to the accumulator, creating the record if absent.
	Increment(ctx context.Context, tier int, address string, amount int64) error
	// DeleteByTier clears a tier's stake records when the tier hosts a fresh pool.
	DeleteByTier(ctx context.Context, tier int) error
}

// ParticipantRepository defines the interface for tier rosters. FindByTier returns
// participants in insertion order; that order is load-bearing for winner selection.
type ParticipantRepository interface {
	Append(ctx context.Context, participant *models.Participant) error
	FindByTier(ctx context.Context, tier int) ([]*models.Participant, error)
	CountByTier(ctx context.Context, tier int) (int, error)
	Exists(ctx context.Context, tier int, address string) (bool, error)
	// DeleteByTier clears a tier's roster so the tier can host a fresh pool.
	DeleteByTier(ctx context.Context, tier int) error
}

// TreasuryRepository defines the interface for the single treasury balance document.
type TreasuryRepository interface {
	// Get returns the treasury record, creating a zero-balance one if none exists.
	Get(ctx context.Context) (*models.Treasury, error)
	Save(ctx context.Context, treasury *models.Treasury) error
}

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByAddress(ctx context.Context, address string) (*models.User, error)
}
