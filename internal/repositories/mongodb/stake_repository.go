package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StakeRepository implements the repositories.StakeRepository interface
type StakeRepository struct {
	collection *mongo.Collection
}

// NewStakeRepository creates a new StakeRepository
func NewStakeRepository(db *mongo.Database) repositories.StakeRepository {
	return &StakeRepository{
		collection: db.Collection("stakes"),
	}
}

// FindByTierAndAddress finds the stake accumulator for a (tier, address) pair
func (r *StakeRepository) FindByTierAndAddress(ctx context.Context, tier int, address string) (*models.Stake, error) {
	var stake models.Stake
	err := r.collection.FindOne(ctx, bson.M{"tier": tier, "address": address}).Decode(&stake)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &stake, nil
}

// FindByTier finds all stake records for a tier
func (r *StakeRepository) FindByTier(ctx context.Context, tier int) ([]*models.Stake, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"tier": tier})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakes []*models.Stake
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}
	if stakes == nil {
		stakes = []*models.Stake{}
	}
	return stakes, nil
}

// Increment atomically adds amount to the accumulator, creating the record if absent
func (r *StakeRepository) Increment(ctx context.Context, tier int, address string, amount int64) error {
	now := time.Now()
	filter := bson.M{"tier": tier, "address": address}
	update := bson.M{
		"$inc": bson.M{"amount": amount},
		"$set": bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{
			"tier":      tier,
			"address":   address,
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// DeleteByTier removes all stake records for a tier
func (r *StakeRepository) DeleteByTier(ctx context.Context, tier int) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"tier": tier})
	return err
}
