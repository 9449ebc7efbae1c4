// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SharedExpenseParticipant represents money owed to the user by a third party
// for a split expense.
type SharedExpenseParticipant struct {
	ID         uuid.UUID
	UserID     uuid.UUID // Creditor
	Name       string    // Debtor display name, may be empty
	AmountOwed decimal.Decimal
	IsPaid     bool
	CreatedAt  time.Time
}
