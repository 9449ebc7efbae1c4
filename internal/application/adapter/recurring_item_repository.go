// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// RecurringItemRepository defines the interface for recurring expense persistence operations.
type RecurringItemRepository interface {
	// Create creates a new recurring item in the database.
	Create(ctx context.Context, item *entity.RecurringItem) error

	// FindByUser retrieves all recurring items, active or not, for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error)
}
