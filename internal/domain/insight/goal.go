package insight

import (
	"fmt"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateGoals flags incomplete goals that are at risk of missing their deadline
// and goals that are close to completion. Both checks run for every goal.
func EvaluateGoals(_ *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	var out []entity.InsightCandidate

	for _, goal := range in.Goals {
		if goal == nil || goal.IsCompleted {
			continue
		}
		progress, ok := goal.Progress()
		if !ok {
			continue
		}

		if goal.TargetDate != nil && !goal.TargetDate.IsZero() && !in.Now.IsZero() {
			days := daysUntil(in.Now, *goal.TargetDate)
			if days > 0 && days < t.GoalRiskWindowDays && progress.LessThan(t.GoalRiskProgressPercent) {
				out = append(out, entity.InsightCandidate{
					Type:     entity.InsightTypeGoalProgress,
					Priority: entity.InsightPriorityHigh,
					Message: fmt.Sprintf("A meta %s esta em risco: faltam %s em %d dias.",
						goal.Name, money(goal.Remaining()), days),
				})
			}
		}

		if progress.GreaterThanOrEqual(t.GoalAlmostThereMinimum) && progress.LessThan(hundred) {
			out = append(out, entity.InsightCandidate{
				Type:     entity.InsightTypeGoalProgress,
				Priority: entity.InsightPriorityLow,
				Message:  fmt.Sprintf("Falta pouco para a meta %s: %s%% concluida.", goal.Name, percent(progress)),
			})
		}
	}

	return out
}
