package mongodb

import (
	"context"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParticipantRepository implements the repositories.ParticipantRepository interface
type ParticipantRepository struct {
	collection *mongo.Collection
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *mongo.Database) repositories.ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection("participants"),
	}
}

// Append adds a participant to a tier's roster
func (r *ParticipantRepository) Append(ctx context.Context, participant *models.Participant) error {
	res, err := r.collection.InsertOne(ctx, participant)
	if err != nil {
		return err
	}
	participant.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByTier returns a tier's roster in insertion order
func (r *ParticipantRepository) FindByTier(ctx context.Context, tier int) ([]*models.Participant, error) {
	opts := options.Find().SetSort(bson.M{"position": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"tier": tier}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*models.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*models.Participant{}
	}
	return participants, nil
}

// CountByTier counts the entrants in a tier's roster
func (r *ParticipantRepository) CountByTier(ctx context.Context, tier int) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"tier": tier})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Exists reports whether an address already appears in a tier's roster
func (r *ParticipantRepository) Exists(ctx context.Context, tier int, address string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"tier": tier, "address": address})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByTier clears a tier's roster
func (r *ParticipantRepository) DeleteByTier(ctx context.Context, tier int) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"tier": tier})
	return err
}
