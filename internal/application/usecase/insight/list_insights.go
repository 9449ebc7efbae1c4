// Package insight contains insight-related use cases.
package insight

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

// ListInsightsInput represents the input for listing insights.
type ListInsightsInput struct {
	UserID     uuid.UUID
	Priority   *entity.InsightPriority
	Type       *entity.InsightType
	UnreadOnly bool
}

// ListInsightsOutput represents the output of listing insights.
// The counters always describe the whole working set, not the filtered page.
type ListInsightsOutput struct {
	Insights          []*entity.Insight
	Total             int
	UnreadCount       int
	HighPriorityCount int
}

// ListInsightsUseCase handles reading the user's working set of insights.
type ListInsightsUseCase struct {
	store adapter.InsightStore
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(store adapter.InsightStore) *ListInsightsUseCase {
	return &ListInsightsUseCase{
		store: store,
	}
}

// Execute returns the filtered insights plus counters.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	all, err := uc.store.List(ctx, input.UserID)
	if err != nil {
		slog.Error("Failed to list insights", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightStoreUnavailable,
			"failed to list insights",
			domainerror.ErrInsightStoreUnavailable,
		)
	}

	insights := all
	if input.Priority != nil {
		priority := *input.Priority
		insights = filter(insights, func(i *entity.Insight) bool { return i.Priority == priority })
	}
	if input.Type != nil {
		insights = ByType(insights, *input.Type)
	}
	if input.UnreadOnly {
		insights = filter(insights, func(i *entity.Insight) bool { return !i.IsRead })
	}

	return &ListInsightsOutput{
		Insights:          insights,
		Total:             len(all),
		UnreadCount:       UnreadCount(all),
		HighPriorityCount: len(HighPriority(all)),
	}, nil
}

// validateInput validates the filter values.
func (uc *ListInsightsUseCase) validateInput(input ListInsightsInput) error {
	if input.Priority != nil && !input.Priority.IsValid() {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInvalidInsightPriority,
			"priority must be: high, medium, or low",
			domainerror.ErrInvalidInsightPriority,
		)
	}

	if input.Type != nil && !input.Type.IsValid() {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInvalidInsightType,
			"unknown insight type",
			domainerror.ErrInvalidInsightType,
		)
	}

	return nil
}
