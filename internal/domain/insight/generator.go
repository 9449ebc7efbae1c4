// Package insight implements the financial coaching rule engine.
//
// The engine is a pure function of a user's snapshot: transactions, categories,
// goals, the global monthly budget, recurring items, shared-expense participants
// and an explicit reference time. It aggregates the snapshot once, runs every
// rule evaluator against the same aggregates, and ranks the resulting candidates
// by priority. It performs no I/O, never reads the wall clock, and never mutates
// or retains its input.
package insight

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// Input is the immutable snapshot the engine evaluates.
type Input struct {
	Transactions   []*entity.Transaction
	Categories     []*entity.Category
	Goals          []*entity.Goal
	MonthlyBudget  decimal.Decimal
	Now            time.Time
	RecurringItems []*entity.RecurringItem
	Participants   []*entity.SharedExpenseParticipant
}

// Evaluator inspects the aggregates and the snapshot and emits zero or more candidates.
// Evaluators are independent of each other.
type Evaluator func(agg *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate

// evaluators lists every rule family. Order only affects ties inside a priority.
var evaluators = []Evaluator{
	EvaluateBudget,
	EvaluatePatterns,
	EvaluateGoals,
	EvaluateFinancialHealth,
	EvaluateWaste,
	EvaluateMotivation,
	EvaluateCredits,
	EvaluateRecurring,
}

// Generator runs the insight pipeline with a fixed set of thresholds.
// A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	thresholds valueobject.InsightThresholds
}

// NewGenerator creates a Generator using the given thresholds.
func NewGenerator(thresholds valueobject.InsightThresholds) *Generator {
	return &Generator{thresholds: thresholds}
}

// Generate aggregates the snapshot, runs every evaluator and returns the ranked candidates.
// It always returns a non-nil slice.
func (g *Generator) Generate(in Input) []entity.InsightCandidate {
	agg := Aggregate(in, g.thresholds)

	candidates := make([]entity.InsightCandidate, 0)
	for _, evaluate := range evaluators {
		candidates = append(candidates, evaluate(agg, in, g.thresholds)...)
	}

	return Rank(candidates)
}

// Generate runs the pipeline with the default thresholds.
func Generate(in Input) []entity.InsightCandidate {
	return NewGenerator(valueobject.DefaultInsightThresholds()).Generate(in)
}

// Summarize computes only the aggregates, using the generator's thresholds.
func (g *Generator) Summarize(in Input) *Aggregates {
	return Aggregate(in, g.thresholds)
}
