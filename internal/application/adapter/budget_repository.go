// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRepository defines the interface for the user's global monthly budget.
type BudgetRepository interface {
	// GetMonthlyBudget returns the user's monthly budget, or zero when none is set.
	GetMonthlyBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SetMonthlyBudget creates or replaces the user's monthly budget.
	SetMonthlyBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}
