package memory

import (
	"context"
	"sync"

	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipantRepository implements repositories.ParticipantRepository over tier-keyed
// slices, preserving insertion order.
type ParticipantRepository struct {
	mu      sync.RWMutex
	rosters map[int][]*models.Participant
}

// NewParticipantRepository creates a new in-memory ParticipantRepository
func NewParticipantRepository() repositories.ParticipantRepository {
	return &ParticipantRepository{rosters: make(map[int][]*models.Participant)}
}

// Append adds a participant to a tier's roster
func (r *ParticipantRepository) Append(ctx context.Context, participant *models.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	participant.ID = primitive.NewObjectID()
	stored := *participant
	r.rosters[participant.Tier] = append(r.rosters[participant.Tier], &stored)
	return nil
}

// FindByTier returns a tier's roster in insertion order
func (r *ParticipantRepository) FindByTier(ctx context.Context, tier int) ([]*models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	roster := r.rosters[tier]
	participants := make([]*models.Participant, 0, len(roster))
	for _, p := range roster {
		copied := *p
		participants = append(participants, &copied)
	}
	return participants, nil
}

// CountByTier counts the entrants in a tier's roster
func (r *ParticipantRepository) CountByTier(ctx context.Context, tier int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rosters[tier]), nil
}

// Exists reports whether an address already appears in a tier's roster
func (r *ParticipantRepository) Exists(ctx context.Context, tier int, address string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.rosters[tier] {
		if p.Address == address {
			return true, nil
		}
	}
	return false, nil
}

// DeleteByTier clears a tier's roster
func (r *ParticipantRepository) DeleteByTier(ctx context.Context, tier int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rosters, tier)
	return nil
}
