package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateCredits reminds the user of money owed by other people and escalates
// debts older than the overdue window.
func EvaluateCredits(_ *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	owed := decimal.Zero
	debtors := make(map[string]bool)
	unnamed := 0

	overdue := decimal.Zero
	overdueCount := 0

	for _, p := range in.Participants {
		if p == nil || p.IsPaid {
			continue
		}
		owed = owed.Add(p.AmountOwed)
		if p.Name == "" {
			unnamed++
		} else {
			debtors[p.Name] = true
		}

		if !p.CreatedAt.IsZero() && !in.Now.IsZero() && in.Now.Sub(p.CreatedAt) > t.CreditOverdueAfter {
			overdue = overdue.Add(p.AmountOwed)
			overdueCount++
		}
	}

	if owed.IsPositive() {
		priority := entity.InsightPriorityLow
		if owed.GreaterThan(t.CreditMediumAmount) {
			priority = entity.InsightPriorityMedium
		}
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeCreditReminder,
			Priority: priority,
			Message: fmt.Sprintf("Voce tem %s a receber de %d pessoa(s).",
				money(owed), len(debtors)+unnamed),
			Action: entity.NavigateTo(entity.ScreenSharedExpenses, "Ver despesas compartilhadas"),
		})
	}

	if overdueCount > 0 {
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeCreditReminder,
			Priority: entity.InsightPriorityHigh,
			Message: fmt.Sprintf("%s a receber estao pendentes ha mais de %d dias.",
				money(overdue), int(t.CreditOverdueAfter.Hours()/24)),
		})
	}

	return out
}
