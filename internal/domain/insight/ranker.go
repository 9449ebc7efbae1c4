package insight

import (
	"slices"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// Rank orders candidates high > medium > low. The sort is stable, so candidates
// of equal priority keep their emission order. The input slice is not modified.
func Rank(candidates []entity.InsightCandidate) []entity.InsightCandidate {
	ranked := make([]entity.InsightCandidate, len(candidates))
	copy(ranked, candidates)

	slices.SortStableFunc(ranked, func(a, b entity.InsightCandidate) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})

	return ranked
}
