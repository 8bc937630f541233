package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShareBasis is the denominator for all share and fee fractions (parts per 10,000).
const ShareBasis = 10000

// Pool represents one lottery round's configuration and accumulated state for a tier.
// A tier has at most one active pool at a time; once a pool is closed or cancelled it is
// terminal and the tier may be reused for a new pool.
type Pool struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Tier            int                `bson:"tier" json:"tier"`
	MinStake        int64              `bson:"minStake" json:"minStake"`
	TotalStaked     int64              `bson:"totalStaked" json:"totalStaked"`
	WinnerShareBps  int64              `bson:"winnerShareBps" json:"winnerShareBps"`
	StakingShareBps int64              `bson:"stakingShareBps" json:"stakingShareBps"`
	EndHeight       int64              `bson:"endHeight" json:"endHeight"`
	MaxParticipants int                `bson:"maxParticipants" json:"maxParticipants"`
	CustodyAddress  string             `bson:"custodyAddress" json:"custodyAddress"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	Winner          string             `bson:"winner,omitempty" json:"winner,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Ended reports whether the pool may be closed at the given height. Entries are rejected
// from this height onward even though the winner is not yet fixed.
func (p *Pool) Ended(height int64) bool {
	return height >= p.EndHeight
}
