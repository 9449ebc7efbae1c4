// Package model defines database models for persistence layer.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date       *time.Time      `gorm:"type:date;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Tags       string          `gorm:"type:text"` // Comma-separated
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var date time.Time
	if m.Date != nil {
		date = *m.Date
	}

	var tags []string
	if m.Tags != "" {
		tags = strings.Split(m.Tags, ",")
	}

	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       entity.TransactionType(m.Type),
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		Date:       date,
		Tags:       tags,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
// A zero date is stored as NULL.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var date *time.Time
	if transaction.HasDate() {
		d := transaction.Date
		date = &d
	}

	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		Date:       date,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		CategoryID: transaction.CategoryID,
		Tags:       strings.Join(transaction.Tags, ","),
	}
}
