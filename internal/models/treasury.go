package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Treasury is the single running fee balance. Fees are recorded against caller-supplied
// nominal amounts; no value moves until Withdraw transfers the full balance to the owner.
type Treasury struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Balance   int64              `bson:"balance" json:"balance"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
