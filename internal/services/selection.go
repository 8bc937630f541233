package services

import (
	"math/big"

	"github.com/stakedraw/stakedraw-backend/internal/models"
)

// selectWinner picks the winning participant from an insertion-ordered roster using
// host-supplied entropy: the winner is roster[entropy mod len(roster)]. Deterministic
// for a fixed roster and entropy value.
func selectWinner(roster []*models.Participant, entropy uint64) (*models.Participant, error) {
	if len(roster) == 0 {
		return nil, models.ErrNoParticipants
	}
	index := entropy % uint64(len(roster))
	return roster[index], nil
}

// computePayout splits a pool's total between the winner prize and the staking-reward
// remainder. Both divisions truncate toward zero over the 10,000-unit share basis.
// The intermediate product is taken in big.Int: totalStaked is externally supplied and
// totalStaked * share can exceed int64 even when the final quotient fits.
func computePayout(totalStaked, winnerShareBps, stakingShareBps int64) (prize, stakingRewards int64) {
	prize = shareOf(totalStaked, winnerShareBps)
	stakingRewards = shareOf(totalStaked, stakingShareBps)
	return prize, stakingRewards
}

func shareOf(total, shareBps int64) int64 {
	product := new(big.Int).Mul(big.NewInt(total), big.NewInt(shareBps))
	return product.Div(product, big.NewInt(models.ShareBasis)).Int64()
}

// validShares reports whether a share configuration is storable: both non-negative and
// summing to strictly less than the basis.
func validShares(winnerShareBps, stakingShareBps int64) bool {
	if winnerShareBps < 0 || stakingShareBps < 0 {
		return false
	}
	return winnerShareBps+stakingShareBps < models.ShareBasis
}
