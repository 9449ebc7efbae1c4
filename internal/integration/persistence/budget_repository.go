// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// GetMonthlyBudget returns the user's monthly budget, or zero when none is set.
func (r *budgetRepository) GetMonthlyBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var setting model.BudgetSettingModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, result.Error
	}
	return setting.MonthlyBudget, nil
}

// SetMonthlyBudget creates or replaces the user's monthly budget.
func (r *budgetRepository) SetMonthlyBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	var setting model.BudgetSettingModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	setting.UserID = userID
	setting.MonthlyBudget = amount
	return r.db.WithContext(ctx).Save(&setting).Error
}
