package models

import "errors"

// Categorical operation errors. Authorization/validation errors are caller mistakes and
// are recoverable by correcting the input; host-dependency errors (ErrTransferFailed,
// ErrEntropyUnavailable) mean an external primitive could not complete and the operation
// may be retried later. No error leaves partial state behind.
var (
	ErrNotOwner           = errors.New("caller is not the pool owner")
	ErrPoolAlreadyActive  = errors.New("an active pool already exists for this tier")
	ErrInvalidShareConfig = errors.New("winner and staking shares must sum to less than the share basis")
	ErrPoolNotActive      = errors.New("no active pool for this tier")
	ErrInsufficientStake  = errors.New("amount is below the pool minimum stake")
	ErrPoolClosed         = errors.New("pool has reached its end height and no longer accepts entries")
	ErrAlreadyEntered     = errors.New("address has already entered this pool")
	ErrPoolFull           = errors.New("pool roster is at capacity")
	ErrPoolNotYetEnded    = errors.New("pool has not reached its end height")
	ErrNoParticipants     = errors.New("pool has no participants")
	ErrTransferFailed     = errors.New("value transfer failed")
	ErrEntropyUnavailable = errors.New("entropy unavailable for the required height")
	ErrPoolHasStakes      = errors.New("pool has staked funds; pass force to overwrite")
)
