// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// SharedExpenseRepository defines the interface for shared-expense participant persistence operations.
type SharedExpenseRepository interface {
	// CreateParticipant stores a participant owing money to the user.
	CreateParticipant(ctx context.Context, participant *entity.SharedExpenseParticipant) error

	// FindParticipantsByCreditor retrieves every participant owing money to the given user.
	FindParticipantsByCreditor(ctx context.Context, userID uuid.UUID) ([]*entity.SharedExpenseParticipant, error)
}
