package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateWaste flags an excess of micro-expenses this month and names the
// category with the highest all-time spending.
func EvaluateWaste(agg *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	if agg.MicroExpenseCount > t.MicroExpenseMaxCount {
		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeWasteDetection,
			Priority: entity.InsightPriorityMedium,
			Message: fmt.Sprintf("Voce fez %d pequenos gastos abaixo de %s este mes, somando %s.",
				agg.MicroExpenseCount, money(t.MicroExpenseAmount), money(agg.MicroExpenseTotal)),
		})
	}

	// Only categories from the snapshot are eligible; ties keep the first in input order.
	var top *entity.Category
	topTotal := decimal.Zero
	for _, category := range in.Categories {
		if category == nil {
			continue
		}
		total := agg.CategoryAllTime[category.ID]
		if total.GreaterThan(topTotal) {
			top = category
			topTotal = total
		}
	}

	if top != nil {
		out = append(out, entity.InsightCandidate{
			Type:       entity.InsightTypeWasteDetection,
			Priority:   entity.InsightPriorityLow,
			Message:    fmt.Sprintf("%s e sua maior categoria de gastos, com %s no total.", top.Name, money(topTotal)),
			CategoryID: categoryRef(top.ID),
		})
	}

	return out
}
