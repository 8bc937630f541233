package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stake tracks the cumulative amount a single address has committed to a tier's pool.
// Multiple accepted entries by the same address accumulate into one record.
type Stake struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Tier      int                `bson:"tier" json:"tier"`
	Address   string             `bson:"address" json:"address"`
	Amount    int64              `bson:"amount" json:"amount"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
