package insight

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// Aggregates holds the numbers shared by all evaluators, computed once per call
// and anchored to the same reference time.
type Aggregates struct {
	Now time.Time

	ThisMonthExpenses decimal.Decimal
	LastMonthExpenses decimal.Decimal
	ThisMonthIncome   decimal.Decimal

	// Expense sums per category id.
	CategoryThisMonth map[uuid.UUID]decimal.Decimal
	CategoryAllTime   map[uuid.UUID]decimal.Decimal

	// Weekend/weekday mean expense. HasWeekdaySplit is false when either group is empty.
	WeekendAverage  decimal.Decimal
	WeekdayAverage  decimal.Decimal
	HasWeekdaySplit bool

	// Expenses of this month below the micro-expense cutoff.
	MicroExpenseCount int
	MicroExpenseTotal decimal.Decimal
}

// Aggregate computes the shared aggregates for a snapshot.
func Aggregate(in Input, t valueobject.InsightThresholds) *Aggregates {
	agg := &Aggregates{
		Now:               in.Now,
		ThisMonthExpenses: MonthlyExpenseTotal(in.Transactions, in.Now),
		LastMonthExpenses: MonthlyExpenseTotal(in.Transactions, previousMonth(in.Now)),
		ThisMonthIncome:   MonthlyIncomeTotal(in.Transactions, in.Now),
		CategoryThisMonth: make(map[uuid.UUID]decimal.Decimal),
		CategoryAllTime:   make(map[uuid.UUID]decimal.Decimal),
		MicroExpenseTotal: decimal.Zero,
	}

	for _, tx := range in.Transactions {
		if tx == nil || !tx.IsExpense() {
			continue
		}

		if tx.CategoryID != nil {
			id := *tx.CategoryID
			agg.CategoryAllTime[id] = agg.CategoryAllTime[id].Add(tx.Amount)
			if inMonth(tx, in.Now) {
				agg.CategoryThisMonth[id] = agg.CategoryThisMonth[id].Add(tx.Amount)
			}
		}

		if inMonth(tx, in.Now) && tx.Amount.LessThan(t.MicroExpenseAmount) {
			agg.MicroExpenseCount++
			agg.MicroExpenseTotal = agg.MicroExpenseTotal.Add(tx.Amount)
		}
	}

	agg.WeekendAverage, agg.WeekdayAverage, agg.HasWeekdaySplit = WeekendVsWeekdayAverages(in.Transactions)

	return agg
}

// MonthlyExpenseTotal sums expense amounts dated in the calendar month containing anchor.
func MonthlyExpenseTotal(transactions []*entity.Transaction, anchor time.Time) decimal.Decimal {
	return monthlyTotal(transactions, anchor, entity.TransactionTypeExpense, nil)
}

// MonthlyIncomeTotal sums income amounts dated in the calendar month containing anchor.
func MonthlyIncomeTotal(transactions []*entity.Transaction, anchor time.Time) decimal.Decimal {
	return monthlyTotal(transactions, anchor, entity.TransactionTypeIncome, nil)
}

// CategoryMonthlyExpense sums expense amounts of one category in the calendar month containing anchor.
func CategoryMonthlyExpense(transactions []*entity.Transaction, categoryID uuid.UUID, anchor time.Time) decimal.Decimal {
	return monthlyTotal(transactions, anchor, entity.TransactionTypeExpense, &categoryID)
}

// WeekendVsWeekdayAverages returns the mean expense amount on weekend days and on weekdays.
// ok is false when either group has no dated expense, in which case both averages are zero.
func WeekendVsWeekdayAverages(transactions []*entity.Transaction) (weekend, weekday decimal.Decimal, ok bool) {
	weekendTotal, weekdayTotal := decimal.Zero, decimal.Zero
	weekendCount, weekdayCount := 0, 0

	for _, tx := range transactions {
		if tx == nil || !tx.IsExpense() || !tx.HasDate() {
			continue
		}
		switch tx.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendTotal = weekendTotal.Add(tx.Amount)
			weekendCount++
		default:
			weekdayTotal = weekdayTotal.Add(tx.Amount)
			weekdayCount++
		}
	}

	if weekendCount == 0 || weekdayCount == 0 {
		return decimal.Zero, decimal.Zero, false
	}

	weekend = weekendTotal.Div(decimal.NewFromInt(int64(weekendCount)))
	weekday = weekdayTotal.Div(decimal.NewFromInt(int64(weekdayCount)))
	return weekend, weekday, true
}

func monthlyTotal(transactions []*entity.Transaction, anchor time.Time, txType entity.TransactionType, categoryID *uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	if anchor.IsZero() {
		return total
	}

	for _, tx := range transactions {
		if tx == nil || tx.Type != txType || !inMonth(tx, anchor) {
			continue
		}
		if categoryID != nil && (tx.CategoryID == nil || *tx.CategoryID != *categoryID) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// inMonth compares the transaction's calendar date with the anchor's month.
// Transactions without a date never match.
func inMonth(tx *entity.Transaction, anchor time.Time) bool {
	if !tx.HasDate() || anchor.IsZero() {
		return false
	}
	return tx.Date.Year() == anchor.Year() && tx.Date.Month() == anchor.Month()
}

// previousMonth returns the first day of the month before anchor.
func previousMonth(anchor time.Time) time.Time {
	if anchor.IsZero() {
		return anchor
	}
	return time.Date(anchor.Year(), anchor.Month()-1, 1, 0, 0, 0, 0, anchor.Location())
}

// daysUntil returns the number of calendar days from now to date.
func daysUntil(now, date time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
