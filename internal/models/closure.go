package models

// ClosureResult is the outcome of a successful pool closure. StakingRewards is computed
// from the pool's staking share but retained by custody; it is not disbursed to
// non-winning participants.
type ClosureResult struct {
	Tier           int    `json:"tier"`
	Winner         string `json:"winner"`
	Prize          int64  `json:"prize"`
	StakingRewards int64  `json:"stakingRewards"`
	Entropy        uint64 `json:"entropy"`
	ClosedAtHeight int64  `json:"closedAtHeight"`
}
