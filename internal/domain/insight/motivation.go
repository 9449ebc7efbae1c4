package insight

import (
	"fmt"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// EvaluateMotivation celebrates goals completed within the lookback window.
func EvaluateMotivation(_ *Aggregates, in Input, t valueobject.InsightThresholds) []entity.InsightCandidate {
	if in.Now.IsZero() {
		return nil
	}
	since := in.Now.Add(-t.GoalCelebrationLookback)

	var out []entity.InsightCandidate
	for _, goal := range in.Goals {
		if goal == nil || !goal.IsCompleted || goal.CompletedAt == nil || goal.CompletedAt.IsZero() {
			continue
		}
		completedAt := *goal.CompletedAt
		if completedAt.Before(since) || completedAt.After(in.Now) {
			continue
		}

		out = append(out, entity.InsightCandidate{
			Type:     entity.InsightTypeMotivation,
			Priority: entity.InsightPriorityLow,
			Message:  fmt.Sprintf("Parabens! Voce alcancou a meta %s.", goal.Name),
		})
	}

	return out
}
