package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/stakedraw/stakedraw-backend/internal/chain"
	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TreasuryServiceImpl implements TreasuryService
var _ TreasuryService = (*TreasuryServiceImpl)(nil)

// TreasuryServiceImpl accumulates basis-point fees on nominal amounts and pays the balance
// out to the owner on demand. Fees are recorded, not escrowed: no value moves on
// CollectFee, only on Withdraw.
type TreasuryServiceImpl struct {
	mu             sync.Mutex
	treasuryRepo   repositories.TreasuryRepository
	transfer       chain.TransferService
	ownerAddress   string
	custodyAddress string
	feeRateBps     int64
}

// NewTreasuryService creates a new TreasuryServiceImpl
func NewTreasuryService(treasuryRepo repositories.TreasuryRepository, transfer chain.TransferService, cfg *config.Config) *TreasuryServiceImpl {
	return &TreasuryServiceImpl{
		treasuryRepo:   treasuryRepo,
		transfer:       transfer,
		ownerAddress:   cfg.Lottery.OwnerAddress,
		custodyAddress: cfg.Lottery.CustodyAddress,
		feeRateBps:     cfg.Treasury.FeeRateBps,
	}
}

// CollectFee records fee = floor(amount * feeRate / basis) against the balance and
// returns the fee taken.
func (s *TreasuryServiceImpl) CollectFee(ctx context.Context, amount int64, caller string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.ownerAddress {
		return 0, models.ErrNotOwner
	}

	treasury, err := s.treasuryRepo.Get(ctx)
	if err != nil {
		slog.Error("CollectFee: failed to load treasury", "error", err)
		return 0, fmt.Errorf("failed to load treasury: %w", err)
	}

	fee := amount * s.feeRateBps / models.ShareBasis
	treasury.Balance += fee
	if err := s.treasuryRepo.Save(ctx, treasury); err != nil {
		slog.Error("CollectFee: failed to save treasury", "error", err)
		return 0, fmt.Errorf("failed to save treasury: %w", err)
	}

	slog.Info("Fee collected", "amount", amount, "fee", fee, "balance", treasury.Balance)
	return fee, nil
}

// Withdraw transfers the full balance from custody to the owner, then zeroes it. If the
// transfer fails the balance is left untouched and the call may be retried.
func (s *TreasuryServiceImpl) Withdraw(ctx context.Context, caller string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.ownerAddress {
		return 0, models.ErrNotOwner
	}

	treasury, err := s.treasuryRepo.Get(ctx)
	if err != nil {
		slog.Error("Withdraw: failed to load treasury", "error", err)
		return 0, fmt.Errorf("failed to load treasury: %w", err)
	}
	if treasury.Balance == 0 {
		return 0, nil
	}

	amount := treasury.Balance
	if err := s.transfer.Transfer(ctx, s.custodyAddress, s.ownerAddress, amount); err != nil {
		slog.Warn("Withdraw: transfer failed, balance retained", "error", err, "amount", amount)
		return 0, fmt.Errorf("%w: %v", models.ErrTransferFailed, err)
	}

	treasury.Balance = 0
	if err := s.treasuryRepo.Save(ctx, treasury); err != nil {
		slog.Error("Withdraw: CRITICAL: transfer committed but balance reset failed", "error", err)
		return 0, fmt.Errorf("failed to save treasury: %w", err)
	}

	slog.Info("Treasury withdrawn", "amount", amount)
	return amount, nil
}

// Balance returns the current treasury balance
func (s *TreasuryServiceImpl) Balance(ctx context.Context) (int64, error) {
	treasury, err := s.treasuryRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load treasury: %w", err)
	}
	return treasury.Balance, nil
}
