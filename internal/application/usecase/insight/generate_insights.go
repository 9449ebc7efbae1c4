// Package insight contains insight-related use cases.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
	engine "github.com/finance-tracker/insights/internal/domain/insight"
)

// GenerateInsightsInput represents the input for generating insights.
type GenerateInsightsInput struct {
	UserID uuid.UUID
}

// GenerateInsightsOutput represents the output of generating insights.
type GenerateInsightsOutput struct {
	Insights    []*entity.Insight
	UnreadCount int
}

// GenerateInsightsUseCase loads a user's snapshot, runs the insight engine and
// replaces the user's working set with the result.
type GenerateInsightsUseCase struct {
	loader    *SnapshotLoader
	store     adapter.InsightStore
	generator *engine.Generator
	now       func() time.Time
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
// A nil clock defaults to time.Now.
func NewGenerateInsightsUseCase(
	loader *SnapshotLoader,
	store adapter.InsightStore,
	generator *engine.Generator,
	now func() time.Time,
) *GenerateInsightsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GenerateInsightsUseCase{
		loader:    loader,
		store:     store,
		generator: generator,
		now:       now,
	}
}

// Execute regenerates the user's insights.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	now := uc.now().UTC()

	snapshot, err := uc.loader.Load(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	candidates := uc.generator.Generate(snapshot)

	insights := make([]*entity.Insight, 0, len(candidates))
	for _, candidate := range candidates {
		insights = append(insights, entity.NewInsight(input.UserID, candidate, now))
	}

	if err := uc.store.Replace(ctx, input.UserID, insights); err != nil {
		slog.Error("Failed to store insights", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightStoreUnavailable,
			"failed to store insights",
			domainerror.ErrInsightStoreUnavailable,
		)
	}

	slog.Info("Insights generated",
		"user_id", input.UserID,
		"count", len(insights),
		"high_priority", len(HighPriority(insights)),
	)

	return &GenerateInsightsOutput{
		Insights:    insights,
		UnreadCount: UnreadCount(insights),
	}, nil
}
