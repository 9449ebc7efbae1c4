// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetSettingModel represents the budget_settings table in the database.
// There is at most one row per user.
type BudgetSettingModel struct {
	UserID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetSettingModel.
func (BudgetSettingModel) TableName() string {
	return "budget_settings"
}

// All returns every model of the schema in migration order.
func All() []any {
	return []any{
		&TransactionModel{},
		&CategoryModel{},
		&GoalModel{},
		&RecurringItemModel{},
		&SharedExpenseParticipantModel{},
		&BudgetSettingModel{},
	}
}
