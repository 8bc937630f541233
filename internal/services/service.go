package services

import (
	"context"

	"github.com/stakedraw/stakedraw-backend/internal/models"
)

// LotteryService defines the interface for pool lifecycle and entry operations.
// Caller identity is an explicit parameter on every state-changing operation so
// authorization stays testable in isolation.
type LotteryService interface {
	// CreatePool opens a new pool for a tier. Owner only; fails while a pool for the
	// tier is still active or when winnerShare + stakingShare >= the share basis.
	CreatePool(ctx context.Context, tier int, minStake, duration, winnerShareBps, stakingShareBps int64, caller string) (*models.Pool, error)

	// UpdatePool overwrites an existing pool's parameters and resets its total staked
	// amount to zero without returning funds. Refused while stakes are outstanding
	// unless force is set.
	UpdatePool(ctx context.Context, tier int, minStake, duration, winnerShareBps, stakingShareBps int64, force bool, caller string) (*models.Pool, error)

	// CancelPool terminates an active pool without payout. Owner only.
	CancelPool(ctx context.Context, tier int, caller string) (*models.Pool, error)

	// Enter stakes amount into a tier's pool as one atomic unit: all preconditions are
	// checked before the external transfer, and no state is written on any failure.
	Enter(ctx context.Context, tier int, amount int64, caller string) (*models.Pool, error)

	// Close resolves an ended pool: selects the winner from the roster using
	// host-supplied entropy, pays the prize from custody, and marks the pool inactive.
	Close(ctx context.Context, tier int, caller string) (*models.ClosureResult, error)

	GetPool(ctx context.Context, tier int) (*models.Pool, error)
	ListPools(ctx context.Context) ([]*models.Pool, error)
	GetStake(ctx context.Context, tier int, address string) (*models.Stake, error)
	GetParticipants(ctx context.Context, tier int) ([]*models.Participant, error)
}

// TreasuryService defines the interface for treasury fee operations
type TreasuryService interface {
	// CollectFee records a fee against a caller-supplied nominal amount. Owner only.
	CollectFee(ctx context.Context, amount int64, caller string) (int64, error)

	// Withdraw transfers the full treasury balance to the owner and zeroes it.
	Withdraw(ctx context.Context, caller string) (int64, error)

	Balance(ctx context.Context) (int64, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
