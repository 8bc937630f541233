package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/chain"
	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"github.com/stakedraw/stakedraw-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure LotteryServiceImpl implements LotteryService
var _ LotteryService = (*LotteryServiceImpl)(nil)

// LotteryServiceImpl orchestrates the pool/stake/roster state machine. State-changing
// operations are serialized by a single mutex, mirroring the execution host's serial
// call model; every operation checks all preconditions before its first write.
type LotteryServiceImpl struct {
	mu              sync.Mutex
	poolRepo        repositories.PoolRepository
	stakeRepo       repositories.StakeRepository
	participantRepo repositories.ParticipantRepository
	clock           chain.Clock
	entropy         chain.EntropySource
	transfer        chain.TransferService
	ownerAddress    string
	custodyAddress  string
	maxParticipants int
}

// NewLotteryService creates a new LotteryServiceImpl
func NewLotteryService(
	poolRepo repositories.PoolRepository,
	stakeRepo repositories.StakeRepository,
	participantRepo repositories.ParticipantRepository,
	host chain.Host,
	cfg *config.Config,
) *LotteryServiceImpl {
	return &LotteryServiceImpl{
		poolRepo:        poolRepo,
		stakeRepo:       stakeRepo,
		participantRepo: participantRepo,
		clock:           host,
		entropy:         host,
		transfer:        host,
		ownerAddress:    cfg.Lottery.OwnerAddress,
		custodyAddress:  cfg.Lottery.CustodyAddress,
		maxParticipants: cfg.Lottery.MaxParticipants,
	}
}

// CreatePool opens a new pool for a tier. A tier is reusable once its prior pool has
// reached a terminal state; while one is active the call fails with ErrPoolAlreadyActive.
func (s *LotteryServiceImpl) CreatePool(ctx context.Context, tier int, minStake, duration, winnerShareBps, stakingShareBps int64, caller string) (*models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.ownerAddress {
		return nil, models.ErrNotOwner
	}
	if !validShares(winnerShareBps, stakingShareBps) {
		return nil, models.ErrInvalidShareConfig
	}

	existing, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		slog.Error("CreatePool: failed to check for existing pool", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to check for existing pool: %w", err)
	}
	if existing != nil && existing.IsActive {
		return nil, models.ErrPoolAlreadyActive
	}

	height, err := s.clock.Height(ctx)
	if err != nil {
		slog.Error("CreatePool: failed to query height", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to query height: %w", err)
	}

	pool := &models.Pool{
		Tier:            tier,
		MinStake:        minStake,
		TotalStaked:     0,
		WinnerShareBps:  winnerShareBps,
		StakingShareBps: stakingShareBps,
		EndHeight:       height + duration,
		MaxParticipants: s.maxParticipants,
		CustodyAddress:  s.custodyAddress,
		IsActive:        true,
	}
	if err := s.poolRepo.Create(ctx, pool); err != nil {
		slog.Error("CreatePool: failed to save pool", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to save pool: %w", err)
	}

	// A reused tier starts from a clean ledger: the prior round's stakes and roster
	// would otherwise leak into the new pool's bookkeeping. The clears follow the
	// pool write so a failed create leaves the prior round untouched.
	if existing != nil {
		if err := s.stakeRepo.DeleteByTier(ctx, tier); err != nil {
			slog.Error("CreatePool: CRITICAL: pool created but prior stake clear failed", "error", err, "tier", tier)
			return nil, fmt.Errorf("failed to clear prior stakes: %w", err)
		}
		if err := s.participantRepo.DeleteByTier(ctx, tier); err != nil {
			slog.Error("CreatePool: CRITICAL: pool created but prior roster clear failed", "error", err, "tier", tier)
			return nil, fmt.Errorf("failed to clear prior roster: %w", err)
		}
	}

	slog.Info("Pool created", "tier", tier, "minStake", minStake, "endHeight", pool.EndHeight,
		"winnerShareBps", winnerShareBps, "stakingShareBps", stakingShareBps)
	return pool, nil
}

// UpdatePool overwrites an existing pool's parameters and resets totalStaked to zero.
// The reset discards in-flight stake bookkeeping without returning funds, so the call
// is refused while totalStaked > 0 unless force is set.
func (s *LotteryServiceImpl) UpdatePool(ctx context.Context, tier int, minStake, duration, winnerShareBps, stakingShareBps int64, force bool, caller string) (*models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.ownerAddress {
		return nil, models.ErrNotOwner
	}
	if !validShares(winnerShareBps, stakingShareBps) {
		return nil, models.ErrInvalidShareConfig
	}

	pool, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrPoolNotActive
		}
		return nil, fmt.Errorf("failed to find pool: %w", err)
	}
	if pool.TotalStaked > 0 && !force {
		return nil, models.ErrPoolHasStakes
	}

	height, err := s.clock.Height(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query height: %w", err)
	}

	if pool.TotalStaked > 0 {
		slog.Warn("UpdatePool: discarding staked funds bookkeeping without refund",
			"tier", tier, "totalStaked", pool.TotalStaked)
	}

	pool.MinStake = minStake
	pool.WinnerShareBps = winnerShareBps
	pool.StakingShareBps = stakingShareBps
	pool.EndHeight = height + duration
	pool.TotalStaked = 0
	if err := s.poolRepo.Update(ctx, pool); err != nil {
		slog.Error("UpdatePool: failed to save pool", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to save pool: %w", err)
	}

	slog.Info("Pool updated", "tier", tier, "minStake", minStake, "endHeight", pool.EndHeight)
	return pool, nil
}

// CancelPool terminates an active pool without payout. The pool becomes permanently
// inactive with no winner recorded.
func (s *LotteryServiceImpl) CancelPool(ctx context.Context, tier int, caller string) (*models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.ownerAddress {
		return nil, models.ErrNotOwner
	}

	pool, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrPoolNotActive
		}
		return nil, fmt.Errorf("failed to find pool: %w", err)
	}
	if !pool.IsActive {
		return nil, models.ErrPoolNotActive
	}

	pool.IsActive = false
	pool.Winner = ""
	if err := s.poolRepo.Update(ctx, pool); err != nil {
		slog.Error("CancelPool: failed to save pool", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to save pool: %w", err)
	}

	slog.Info("Pool cancelled", "tier", tier, "totalStaked", pool.TotalStaked)
	return pool, nil
}

// Enter stakes amount into a tier's pool. Exactly one successful transfer and three
// keyed-state writes happen per successful call; a failed call writes nothing. Roster
// capacity is checked before the transfer so no funds can move into a full pool.
func (s *LotteryServiceImpl) Enter(ctx context.Context, tier int, amount int64, caller string) (*models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrPoolNotActive
		}
		return nil, fmt.Errorf("failed to find pool: %w", err)
	}
	if !pool.IsActive {
		return nil, models.ErrPoolNotActive
	}
	if amount < pool.MinStake {
		return nil, models.ErrInsufficientStake
	}

	height, err := s.clock.Height(ctx)
	if err != nil {
		slog.Error("Enter: failed to query height", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to query height: %w", err)
	}
	if pool.Ended(height) {
		return nil, models.ErrPoolClosed
	}

	entered, err := s.participantRepo.Exists(ctx, tier, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	if entered {
		return nil, models.ErrAlreadyEntered
	}

	count, err := s.participantRepo.CountByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to count roster: %w", err)
	}
	if count >= pool.MaxParticipants {
		return nil, models.ErrPoolFull
	}

	// All preconditions hold; the transfer is the last abort point before writes begin.
	if err := s.transfer.Transfer(ctx, caller, pool.CustodyAddress, amount); err != nil {
		slog.Warn("Enter: transfer failed", "error", err, "tier", tier, "address", utils.MaskAddress(caller), "amount", amount)
		return nil, fmt.Errorf("%w: %v", models.ErrTransferFailed, err)
	}

	pool.TotalStaked += amount
	if err := s.poolRepo.Update(ctx, pool); err != nil {
		slog.Error("Enter: CRITICAL: transfer committed but pool update failed", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to update pool: %w", err)
	}
	if err := s.stakeRepo.Increment(ctx, tier, caller, amount); err != nil {
		slog.Error("Enter: CRITICAL: transfer committed but stake update failed", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to update stake: %w", err)
	}
	participant := &models.Participant{
		Tier:     tier,
		Address:  caller,
		Position: count,
		JoinedAt: time.Now(),
	}
	if err := s.participantRepo.Append(ctx, participant); err != nil {
		slog.Error("Enter: CRITICAL: transfer committed but roster append failed", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to append to roster: %w", err)
	}

	slog.Info("Entry accepted", "tier", tier, "address", utils.MaskAddress(caller),
		"amount", amount, "position", count, "totalStaked", pool.TotalStaked)
	return pool, nil
}

// Close resolves an ended pool. The prize transfer precedes the terminal state write:
// if the transfer fails the pool stays active and unclosed, and closure may be retried.
func (s *LotteryServiceImpl) Close(ctx context.Context, tier int, caller string) (*models.ClosureResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrPoolNotActive
		}
		return nil, fmt.Errorf("failed to find pool: %w", err)
	}
	if !pool.IsActive {
		return nil, models.ErrPoolNotActive
	}

	height, err := s.clock.Height(ctx)
	if err != nil {
		slog.Error("Close: failed to query height", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to query height: %w", err)
	}
	if !pool.Ended(height) {
		return nil, models.ErrPoolNotYetEnded
	}

	roster, err := s.participantRepo.FindByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(roster) == 0 {
		return nil, models.ErrNoParticipants
	}

	// Entropy for the block immediately preceding closure.
	entropy, err := s.entropy.EntropyAt(ctx, height-1)
	if err != nil {
		slog.Warn("Close: entropy unavailable", "error", err, "tier", tier, "height", height-1)
		return nil, fmt.Errorf("%w: %v", models.ErrEntropyUnavailable, err)
	}

	winner, err := selectWinner(roster, entropy)
	if err != nil {
		return nil, err
	}
	prize, stakingRewards := computePayout(pool.TotalStaked, pool.WinnerShareBps, pool.StakingShareBps)

	// A zero winner share yields a zero prize; there is nothing to move, so the
	// closure proceeds straight to the terminal write.
	if prize > 0 {
		if err := s.transfer.Transfer(ctx, pool.CustodyAddress, winner.Address, prize); err != nil {
			slog.Warn("Close: prize transfer failed, pool remains open", "error", err, "tier", tier,
				"winner", utils.MaskAddress(winner.Address), "prize", prize)
			return nil, fmt.Errorf("%w: %v", models.ErrTransferFailed, err)
		}
	}

	pool.IsActive = false
	pool.Winner = winner.Address
	if err := s.poolRepo.Update(ctx, pool); err != nil {
		slog.Error("Close: CRITICAL: prize paid but pool update failed", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to update pool: %w", err)
	}

	slog.Info("Pool closed", "tier", tier, "winner", utils.MaskAddress(winner.Address),
		"prize", prize, "stakingRewards", stakingRewards, "participants", len(roster),
		"caller", utils.MaskAddress(caller))
	return &models.ClosureResult{
		Tier:           tier,
		Winner:         winner.Address,
		Prize:          prize,
		StakingRewards: stakingRewards,
		Entropy:        entropy,
		ClosedAtHeight: height,
	}, nil
}

// GetPool retrieves the pool for a tier
func (s *LotteryServiceImpl) GetPool(ctx context.Context, tier int) (*models.Pool, error) {
	pool, err := s.poolRepo.FindByTier(ctx, tier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrPoolNotActive
		}
		return nil, fmt.Errorf("failed to retrieve pool: %w", err)
	}
	return pool, nil
}

// ListPools retrieves all pools
func (s *LotteryServiceImpl) ListPools(ctx context.Context) ([]*models.Pool, error) {
	pools, err := s.poolRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	return pools, nil
}

// GetStake retrieves the cumulative stake for a (tier, address) pair. A missing record
// is reported as a zero stake rather than an error.
func (s *LotteryServiceImpl) GetStake(ctx context.Context, tier int, address string) (*models.Stake, error) {
	stake, err := s.stakeRepo.FindByTierAndAddress(ctx, tier, address)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.Stake{Tier: tier, Address: address, Amount: 0}, nil
		}
		return nil, fmt.Errorf("failed to retrieve stake: %w", err)
	}
	return stake, nil
}

// GetParticipants retrieves a tier's roster in insertion order
func (s *LotteryServiceImpl) GetParticipants(ctx context.Context, tier int) ([]*models.Participant, error) {
	roster, err := s.participantRepo.FindByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve participants: %w", err)
	}
	return roster, nil
}
