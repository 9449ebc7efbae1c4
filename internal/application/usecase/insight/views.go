// Package insight contains insight-related use cases.
package insight

import "github.com/finance-tracker/insights/internal/domain/entity"

// UnreadCount returns how many insights have not been read.
func UnreadCount(insights []*entity.Insight) int {
	count := 0
	for _, i := range insights {
		if !i.IsRead {
			count++
		}
	}
	return count
}

// HighPriority returns the high-priority subset, keeping order.
func HighPriority(insights []*entity.Insight) []*entity.Insight {
	return filter(insights, func(i *entity.Insight) bool {
		return i.Priority == entity.InsightPriorityHigh
	})
}

// ByType returns the insights of one type, keeping order.
func ByType(insights []*entity.Insight, insightType entity.InsightType) []*entity.Insight {
	return filter(insights, func(i *entity.Insight) bool {
		return i.Type == insightType
	})
}

func filter(insights []*entity.Insight, keep func(*entity.Insight) bool) []*entity.Insight {
	out := make([]*entity.Insight, 0, len(insights))
	for _, i := range insights {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
