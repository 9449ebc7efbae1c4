// Package insight contains insight-related use cases.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/adapter"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
	engine "github.com/finance-tracker/insights/internal/domain/insight"
)

// SnapshotLoader reads everything the insight engine needs for one user.
type SnapshotLoader struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	goalRepo          adapter.GoalRepository
	budgetRepo        adapter.BudgetRepository
	recurringRepo     adapter.RecurringItemRepository
	sharedExpenseRepo adapter.SharedExpenseRepository
}

// NewSnapshotLoader creates a new SnapshotLoader instance.
func NewSnapshotLoader(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	recurringRepo adapter.RecurringItemRepository,
	sharedExpenseRepo adapter.SharedExpenseRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		goalRepo:          goalRepo,
		budgetRepo:        budgetRepo,
		recurringRepo:     recurringRepo,
		sharedExpenseRepo: sharedExpenseRepo,
	}
}

// Load builds the engine input for the user, anchored at now.
// Any repository failure aborts the load with an INS-990001 error.
func (l *SnapshotLoader) Load(ctx context.Context, userID uuid.UUID, now time.Time) (engine.Input, error) {
	in := engine.Input{Now: now}
	var err error

	if in.Transactions, err = l.transactionRepo.FindByUser(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "transactions", err)
	}
	if in.Categories, err = l.categoryRepo.FindByUser(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "categories", err)
	}
	if in.Goals, err = l.goalRepo.FindByUserID(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "goals", err)
	}
	if in.MonthlyBudget, err = l.budgetRepo.GetMonthlyBudget(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "monthly budget", err)
	}
	if in.RecurringItems, err = l.recurringRepo.FindByUser(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "recurring items", err)
	}
	if in.Participants, err = l.sharedExpenseRepo.FindParticipantsByCreditor(ctx, userID); err != nil {
		return engine.Input{}, sourceError(userID, "shared expenses", err)
	}

	return in, nil
}

func sourceError(userID uuid.UUID, source string, err error) error {
	slog.Error("Failed to load insight source", "user_id", userID, "source", source, "error", err)
	return domainerror.NewInsightError(
		domainerror.ErrCodeInsightSourceUnavailable,
		fmt.Sprintf("failed to load %s", source),
		fmt.Errorf("%w: %v", domainerror.ErrInsightSourceUnavailable, err),
	)
}
