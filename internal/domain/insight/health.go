package insight

import (
	"fmt"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateFinancialHealth rates this month's savings rate.
// Rates between the low and the ideal threshold intentionally produce nothing.
func EvaluateFinancialHealth(agg *Aggregates, _ Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	income := agg.ThisMonthIncome
	if !income.IsPositive() {
		return nil
	}

	rate, _ := percentOf(income.Sub(agg.ThisMonthExpenses), income)

	switch {
	case rate.IsNegative():
		return []entity.InsightCandidate{{
			Type:     entity.InsightTypeFinancialHealth,
			Priority: entity.InsightPriorityHigh,
			Message: fmt.Sprintf("Voce esta gastando mais do que ganha este mes: %s de despesas para %s de receitas.",
				money(agg.ThisMonthExpenses), money(income)),
		}}
	case rate.LessThan(t.LowSavingsRatePercent):
		return []entity.InsightCandidate{{
			Type:     entity.InsightTypeFinancialHealth,
			Priority: entity.InsightPriorityMedium,
			Message: fmt.Sprintf("Sua taxa de poupanca esta em %s%%. Tente guardar pelo menos %s%% da renda.",
				percent(rate), percent(t.LowSavingsRatePercent)),
		}}
	case rate.GreaterThanOrEqual(t.IdealSavingsRatePercent):
		return []entity.InsightCandidate{{
			Type:     entity.InsightTypeFinancialHealth,
			Priority: entity.InsightPriorityLow,
			Message:  fmt.Sprintf("Parabens! Sua taxa de poupanca esta em %s%%.", percent(rate)),
		}}
	}

	return nil
}
