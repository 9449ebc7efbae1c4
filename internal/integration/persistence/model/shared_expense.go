// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// SharedExpenseParticipantModel represents the shared_expense_participants table in the database.
type SharedExpenseParticipantModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"` // Creditor
	Name       string          `gorm:"type:varchar(100)"`
	AmountOwed decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsPaid     bool            `gorm:"not null;default:false;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SharedExpenseParticipantModel.
func (SharedExpenseParticipantModel) TableName() string {
	return "shared_expense_participants"
}

// ToEntity converts a SharedExpenseParticipantModel to a domain SharedExpenseParticipant entity.
func (m *SharedExpenseParticipantModel) ToEntity() *entity.SharedExpenseParticipant {
	return &entity.SharedExpenseParticipant{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		AmountOwed: m.AmountOwed,
		IsPaid:     m.IsPaid,
		CreatedAt:  m.CreatedAt,
	}
}

// SharedExpenseParticipantFromEntity creates a SharedExpenseParticipantModel from a domain entity.
// A zero CreatedAt is filled by gorm on insert.
func SharedExpenseParticipantFromEntity(participant *entity.SharedExpenseParticipant) *SharedExpenseParticipantModel {
	return &SharedExpenseParticipantModel{
		ID:         participant.ID,
		UserID:     participant.UserID,
		Name:       participant.Name,
		AmountOwed: participant.AmountOwed,
		IsPaid:     participant.IsPaid,
		CreatedAt:  participant.CreatedAt,
	}
}
