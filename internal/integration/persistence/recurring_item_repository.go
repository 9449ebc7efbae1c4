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

// recurringItemRepository implements the adapter.RecurringItemRepository interface.
type recurringItemRepository struct {
	db *gorm.DB
}

// NewRecurringItemRepository creates a new recurring item repository instance.
func NewRecurringItemRepository(db *gorm.DB) adapter.RecurringItemRepository {
	return &recurringItemRepository{
		db: db,
	}
}

// Create creates a new recurring item in the database.
// Inactive items are written explicitly since IsActive defaults to true.
func (r *recurringItemRepository) Create(ctx context.Context, item *entity.RecurringItem) error {
	itemModel := model.RecurringItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}

	if !item.IsActive {
		result = r.db.WithContext(ctx).
			Model(&model.RecurringItemModel{}).
			Where("id = ?", item.ID).
			Update("is_active", false)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// FindByUser retrieves all recurring items, active or not, for a given user.
func (r *recurringItemRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error) {
	var itemModels []model.RecurringItemModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_date ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.RecurringItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}
