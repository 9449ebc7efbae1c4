// Package insight contains insight-related use cases.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	engine "github.com/finance-tracker/insights/internal/domain/insight"
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput holds the month figures the insights are based on.
// SavingsRate and BudgetUsed are nil when their denominator is not positive.
type GetSummaryOutput struct {
	PeriodLabel       string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	LastMonthExpenses decimal.Decimal
	Balance           decimal.Decimal
	SavingsRate       *decimal.Decimal
	MonthlyBudget     decimal.Decimal
	BudgetUsed        *decimal.Decimal
}

// GetSummaryUseCase exposes the aggregates behind the current insights.
type GetSummaryUseCase struct {
	loader    *SnapshotLoader
	generator *engine.Generator
	now       func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(loader *SnapshotLoader, generator *engine.Generator, now func() time.Time) *GetSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetSummaryUseCase{
		loader:    loader,
		generator: generator,
		now:       now,
	}
}

// Execute computes the summary of the current calendar month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.now().UTC()

	snapshot, err := uc.loader.Load(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	agg := uc.generator.Summarize(snapshot)
	start, end := monthBounds(now)

	output := &GetSummaryOutput{
		PeriodLabel:       periodLabel(now),
		PeriodStart:       start,
		PeriodEnd:         end,
		Income:            agg.ThisMonthIncome,
		Expenses:          agg.ThisMonthExpenses,
		LastMonthExpenses: agg.LastMonthExpenses,
		Balance:           agg.ThisMonthIncome.Sub(agg.ThisMonthExpenses),
		MonthlyBudget:     snapshot.MonthlyBudget,
	}

	if output.Income.IsPositive() {
		rate := output.Balance.Div(output.Income).Mul(decimal.NewFromInt(100)).Round(2)
		output.SavingsRate = &rate
	}
	if output.MonthlyBudget.IsPositive() {
		used := output.Expenses.Div(output.MonthlyBudget).Mul(decimal.NewFromInt(100)).Round(2)
		output.BudgetUsed = &used
	}

	return output, nil
}

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// periodLabel formats a month as "{month_abbr} {year}" (e.g., "Mar 2025").
func periodLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}

// monthBounds returns the first and last day of the month containing date.
func monthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}
