// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring expense is billed.
type RecurringFrequency string

const (
	RecurringFrequencyMonthly   RecurringFrequency = "monthly"
	RecurringFrequencyQuarterly RecurringFrequency = "quarterly"
	RecurringFrequencyYearly    RecurringFrequency = "yearly"
)

// RecurringItem represents a scheduled expense that has not been materialized as a transaction yet.
type RecurringItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Frequency   RecurringFrequency
	NextDate    time.Time
	IsActive    bool
}

// NewRecurringItem creates a new active RecurringItem entity.
func NewRecurringItem(userID uuid.UUID, description string, amount decimal.Decimal, frequency RecurringFrequency, nextDate time.Time) *RecurringItem {
	return &RecurringItem{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Frequency:   frequency,
		NextDate:    nextDate,
		IsActive:    true,
	}
}

// MonthlyEquivalent normalizes the item's cost to a per-month amount.
// Unknown frequencies are treated as monthly.
func (r *RecurringItem) MonthlyEquivalent() decimal.Decimal {
	switch r.Frequency {
	case RecurringFrequencyQuarterly:
		return r.Amount.Div(decimal.NewFromInt(3))
	case RecurringFrequencyYearly:
		return r.Amount.Div(decimal.NewFromInt(12))
	default:
		return r.Amount
	}
}

// IsOverdue reports whether the next billing date is strictly before now.
func (r *RecurringItem) IsOverdue(now time.Time) bool {
	return !r.NextDate.IsZero() && r.NextDate.Before(now)
}
