// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction as seen by the insight engine.
// Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       TransactionType
	Amount     decimal.Decimal
	CategoryID *uuid.UUID // Optional, can be uncategorized
	Date       time.Time  // Zero value means the date is missing
	Tags       []string
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	date time.Time,
	tags []string,
) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       transactionType,
		Amount:     amount,
		CategoryID: categoryID,
		Date:       date,
		Tags:       tags,
	}
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is an income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// HasDate reports whether the transaction carries a usable date.
func (t *Transaction) HasDate() bool {
	return !t.Date.IsZero()
}
