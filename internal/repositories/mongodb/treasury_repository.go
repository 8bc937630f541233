package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TreasuryRepository implements the repositories.TreasuryRepository interface.
// The treasury is a single document; Get creates it lazily.
type TreasuryRepository struct {
	collection *mongo.Collection
}

// NewTreasuryRepository creates a new TreasuryRepository
func NewTreasuryRepository(db *mongo.Database) repositories.TreasuryRepository {
	return &TreasuryRepository{
		collection: db.Collection("treasury"),
	}
}

// Get returns the treasury record, creating a zero-balance one if none exists
func (r *TreasuryRepository) Get(ctx context.Context) (*models.Treasury, error) {
	var treasury models.Treasury
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&treasury)
	if err == nil {
		return &treasury, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	treasury = models.Treasury{Balance: 0, UpdatedAt: time.Now()}
	res, insertErr := r.collection.InsertOne(ctx, &treasury)
	if insertErr != nil {
		return nil, insertErr
	}
	treasury.ID = res.InsertedID.(primitive.ObjectID)
	return &treasury, nil
}

// Save persists the treasury balance
func (r *TreasuryRepository) Save(ctx context.Context, treasury *models.Treasury) error {
	treasury.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": treasury.ID}, treasury)
	return err
}
