// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// RecurringItemModel represents the recurring_items table in the database.
type RecurringItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency   string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	NextDate    *time.Time      `gorm:"type:date"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecurringItemModel.
func (RecurringItemModel) TableName() string {
	return "recurring_items"
}

// ToEntity converts a RecurringItemModel to a domain RecurringItem entity.
func (m *RecurringItemModel) ToEntity() *entity.RecurringItem {
	var nextDate time.Time
	if m.NextDate != nil {
		nextDate = *m.NextDate
	}

	return &entity.RecurringItem{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Frequency:   entity.RecurringFrequency(m.Frequency),
		NextDate:    nextDate,
		IsActive:    m.IsActive,
	}
}

// RecurringItemFromEntity creates a RecurringItemModel from a domain RecurringItem entity.
func RecurringItemFromEntity(item *entity.RecurringItem) *RecurringItemModel {
	var nextDate *time.Time
	if !item.NextDate.IsZero() {
		d := item.NextDate
		nextDate = &d
	}

	return &RecurringItemModel{
		ID:          item.ID,
		UserID:      item.UserID,
		Description: item.Description,
		Amount:      item.Amount,
		Frequency:   string(item.Frequency),
		NextDate:    nextDate,
		IsActive:    item.IsActive,
	}
}
