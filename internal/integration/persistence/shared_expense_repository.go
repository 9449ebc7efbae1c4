// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/integration/persistence/model"
)

// sharedExpenseRepository implements the adapter.SharedExpenseRepository interface.
type sharedExpenseRepository struct {
	db *gorm.DB
}

// NewSharedExpenseRepository creates a new shared expense repository instance.
func NewSharedExpenseRepository(db *gorm.DB) adapter.SharedExpenseRepository {
	return &sharedExpenseRepository{
		db: db,
	}
}

// CreateParticipant stores a participant owing money to the user.
func (r *sharedExpenseRepository) CreateParticipant(ctx context.Context, participant *entity.SharedExpenseParticipant) error {
	participantModel := model.SharedExpenseParticipantFromEntity(participant)
	result := r.db.WithContext(ctx).Create(participantModel)
	if result.Error != nil {
		return result.Error
	}
	participant.CreatedAt = participantModel.CreatedAt
	return nil
}

// FindParticipantsByCreditor retrieves every participant owing money to the given user.
func (r *sharedExpenseRepository) FindParticipantsByCreditor(ctx context.Context, userID uuid.UUID) ([]*entity.SharedExpenseParticipant, error) {
	var participantModels []model.SharedExpenseParticipantModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&participantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	participants := make([]*entity.SharedExpenseParticipant, len(participantModels))
	for i, pm := range participantModels {
		participants[i] = pm.ToEntity()
	}
	return participants, nil
}
