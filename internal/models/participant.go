package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant is one entrant in a tier's roster. Position records insertion order,
// which winner selection depends on: the winner is the participant at index
// (entropy mod roster length).
type Participant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Tier     int                `bson:"tier" json:"tier"`
	Address  string             `bson:"address" json:"address"`
	Position int                `bson:"position" json:"position"`
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}
