package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateRecurring summarizes the monthly cost of active recurring expenses and
// flags the ones whose next billing date already passed.
func EvaluateRecurring(_ *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	monthly := decimal.Zero
	overdue := 0
	for _, item := range in.RecurringItems {
		if item == nil || !item.IsActive {
			continue
		}
		monthly = monthly.Add(item.MonthlyEquivalent())
		if !in.Now.IsZero() && item.IsOverdue(in.Now) {
			overdue++
		}
	}

	if monthly.IsPositive() {
		priority := entity.InsightPriorityLow
		if monthly.GreaterThan(t.RecurringMediumMonthly) {
			priority = entity.InsightPriorityMedium
		}
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeRecurring,
			Priority: priority,
			Message: fmt.Sprintf("Suas despesas recorrentes somam %s por mes (%s por ano).",
				money(monthly), money(monthly.Mul(decimal.NewFromInt(12)))),
			Action: entity.NavigateTo(entity.ScreenRecurring, "Revisar recorrentes"),
		})
	}

	if overdue > 0 {
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeRecurring,
			Priority: entity.InsightPriorityHigh,
			Message:  fmt.Sprintf("%d despesa(s) recorrente(s) com vencimento atrasado.", overdue),
			Action:   entity.NavigateTo(entity.ScreenRecurring, "Atualizar recorrentes"),
		})
	}

	return out
}
