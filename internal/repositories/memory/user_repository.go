package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository implements repositories.UserRepository over email- and address-keyed maps
type UserRepository struct {
	mu        sync.RWMutex
	byEmail   map[string]*models.User
	byAddress map[string]*models.User
}

// NewUserRepository creates a new in-memory UserRepository
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		byEmail:   make(map[string]*models.User),
		byAddress: make(map[string]*models.User),
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := *user
	r.byEmail[user.Email] = &stored
	r.byAddress[user.Address] = &stored
	return nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByAddress finds a user by chain address
func (r *UserRepository) FindByAddress(ctx context.Context, address string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byAddress[address]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
