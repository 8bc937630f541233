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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PoolRepository implements the repositories.PoolRepository interface
type PoolRepository struct {
	collection *mongo.Collection
}

// NewPoolRepository creates a new PoolRepository
func NewPoolRepository(db *mongo.Database) repositories.PoolRepository {
	return &PoolRepository{
		collection: db.Collection("pools"),
	}
}

// Create creates a new pool
func (r *PoolRepository) Create(ctx context.Context, pool *models.Pool) error {
	pool.CreatedAt = time.Now()
	pool.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, pool)
	if err != nil {
		return err
	}
	pool.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByTier finds the most recent pool for a tier
func (r *PoolRepository) FindByTier(ctx context.Context, tier int) (*models.Pool, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var pool models.Pool
	err := r.collection.FindOne(ctx, bson.M{"tier": tier}, opts).Decode(&pool)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &pool, nil
}

// Update updates a pool
func (r *PoolRepository) Update(ctx context.Context, pool *models.Pool) error {
	pool.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": pool.ID}, pool)
	return err
}

// FindAll finds all pools sorted by tier
func (r *PoolRepository) FindAll(ctx context.Context) ([]*models.Pool, error) {
	opts := options.Find().SetSort(bson.M{"tier": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pools []*models.Pool
	if err := cursor.All(ctx, &pools); err != nil {
		return nil, err
	}
	if pools == nil {
		pools = []*models.Pool{}
	}
	return pools, nil
}
