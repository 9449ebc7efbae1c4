package insight

import (
	"fmt"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluatePatterns compares this month with last month and weekend spending with weekday spending.
func EvaluatePatterns(agg *Aggregates, _ Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	// No comparison without last month's spending.
	if agg.LastMonthExpenses.IsPositive() {
		change, _ := percentOf(agg.ThisMonthExpenses.Sub(agg.LastMonthExpenses), agg.LastMonthExpenses)

		switch {
		case change.GreaterThan(t.SpendingChangePercent):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeSpendingPattern,
				Priority: entity.InsightPriorityMedium,
				Message:  fmt.Sprintf("Seus gastos aumentaram %s%% em relacao ao mes passado.", percent(change)),
			})
		case change.LessThan(t.SpendingChangePercent.Neg()):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeSpendingPattern,
				Priority: entity.InsightPriorityLow,
				Message: fmt.Sprintf("Seus gastos cairam %s%% em relacao ao mes passado. Muito bem!",
					percent(change.Abs())),
			})
		}
	}

	if agg.HasWeekdaySplit && agg.WeekendAverage.GreaterThan(agg.WeekdayAverage.Mul(t.WeekendFactor)) {
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeSpendingPattern,
			Priority: entity.InsightPriorityLow,
			Message: fmt.Sprintf("Voce gasta em media %s nos fins de semana contra %s nos dias uteis.",
				money(agg.WeekendAverage), money(agg.WeekdayAverage)),
		})
	}

	return out
}
