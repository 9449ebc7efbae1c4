package insight

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateBudget compares this month's spending with the global monthly budget
// and with every category that has a monthly cap.
func EvaluateBudget(agg *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	if in.MonthlyBudget.IsPositive() {
		spent := agg.ThisMonthExpenses
		used, _ := percentOf(spent, in.MonthlyBudget)

		switch {
		case spent.GreaterThanOrEqual(in.MonthlyBudget):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeBudgetAlert,
				Priority: entity.InsightPriorityHigh,
				Message: fmt.Sprintf("Voce ultrapassou o orcamento mensal: gastou %s de %s.",
					money(spent), money(in.MonthlyBudget)),
				Action: entity.NavigateTo(entity.ScreenBudgets, "Revisar orcamento"),
			})
		case used.GreaterThanOrEqual(t.BudgetNearLimitPercent):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeBudgetAlert,
				Priority: entity.InsightPriorityHigh,
				Message:  fmt.Sprintf("Atencao: voce ja usou %s%% do orcamento mensal.", percent(used)),
			})
		case used.GreaterThanOrEqual(t.BudgetSlowDownPercent):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeBudgetAlert,
				Priority: entity.InsightPriorityMedium,
				Message:  fmt.Sprintf("Voce ja usou %s%% do orcamento mensal. Desacelere os gastos.", percent(used)),
			})
		}
	}

	seen := make(map[uuid.UUID]bool, len(in.Categories))
	for _, category := range in.Categories {
		if category == nil || !category.HasBudget() || seen[category.ID] {
			continue
		}
		seen[category.ID] = true

		spent := agg.CategoryThisMonth[category.ID]
		used, _ := percentOf(spent, *category.Budget)

		switch {
		case used.GreaterThanOrEqual(t.CategoryExceededPercent):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeBudgetAlert,
				Priority: entity.InsightPriorityHigh,
				Message: fmt.Sprintf("Voce estourou o orcamento de %s: %s de %s.",
					category.Name, money(spent), money(*category.Budget)),
				CategoryID: categoryRef(category.ID),
			})
		case used.GreaterThanOrEqual(t.CategoryWarningPercent):
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeBudgetAlert,
				Priority: entity.InsightPriorityMedium,
				Message: fmt.Sprintf("O orcamento de %s esta quase esgotado (%s%% usado).",
					category.Name, percent(used)),
				CategoryID: categoryRef(category.ID),
			})
		}
	}

	return out
}
