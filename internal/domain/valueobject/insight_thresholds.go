// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightThresholds contains every constant the insight rules compare against.
// Percentages are expressed in points (95 = 95%).
type InsightThresholds struct {
	// Global monthly budget
	BudgetNearLimitPercent decimal.Decimal // 95
	BudgetSlowDownPercent  decimal.Decimal // 85

	// Per-category budget
	CategoryExceededPercent decimal.Decimal // 100
	CategoryWarningPercent  decimal.Decimal // 95

	// Month-over-month spending change
	SpendingChangePercent decimal.Decimal // 20
	WeekendFactor         decimal.Decimal // 1.5

	// Goals
	GoalRiskWindowDays      int             // 30
	GoalRiskProgressPercent decimal.Decimal // 80
	GoalAlmostThereMinimum  decimal.Decimal // 90
	GoalCelebrationLookback time.Duration   // 7 days

	// Savings rate
	LowSavingsRatePercent   decimal.Decimal // 10
	IdealSavingsRatePercent decimal.Decimal // 20

	// Waste detection
	MicroExpenseAmount   decimal.Decimal // 10 currency units
	MicroExpenseMaxCount int             // 20

	// Credits and recurring expenses
	CreditOverdueAfter     time.Duration   // 30 days
	CreditMediumAmount     decimal.Decimal // 100
	RecurringMediumMonthly decimal.Decimal // 100
}

// DefaultInsightThresholds returns the default insight thresholds.
func DefaultInsightThresholds() InsightThresholds {
	return InsightThresholds{
		BudgetNearLimitPercent:  decimal.NewFromInt(95),
		BudgetSlowDownPercent:   decimal.NewFromInt(85),
		CategoryExceededPercent: decimal.NewFromInt(100),
		CategoryWarningPercent:  decimal.NewFromInt(95),
		SpendingChangePercent:   decimal.NewFromInt(20),
		WeekendFactor:           decimal.NewFromFloat(1.5),
		GoalRiskWindowDays:      30,
		GoalRiskProgressPercent: decimal.NewFromInt(80),
		GoalAlmostThereMinimum:  decimal.NewFromInt(90),
		GoalCelebrationLookback: 7 * 24 * time.Hour,
		LowSavingsRatePercent:   decimal.NewFromInt(10),
		IdealSavingsRatePercent: decimal.NewFromInt(20),
		MicroExpenseAmount:      decimal.NewFromInt(10),
		MicroExpenseMaxCount:    20,
		CreditOverdueAfter:      30 * 24 * time.Hour,
		CreditMediumAmount:      decimal.NewFromInt(100),
		RecurringMediumMonthly:  decimal.NewFromInt(100),
	}
}

// WithIdealSavingsRate returns a copy with a different ideal savings rate.
// Non-positive values keep the current rate.
func (t InsightThresholds) WithIdealSavingsRate(percent decimal.Decimal) InsightThresholds {
	if percent.IsPositive() {
		t.IdealSavingsRatePercent = percent
	}
	return t
}

// WithMicroExpenseAmount returns a copy with a different micro-expense cutoff.
// Non-positive values keep the current cutoff.
func (t InsightThresholds) WithMicroExpenseAmount(amount decimal.Decimal) InsightThresholds {
	if amount.IsPositive() {
		t.MicroExpenseAmount = amount
	}
	return t
}
