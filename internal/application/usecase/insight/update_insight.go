// Package insight contains insight-related use cases.
package insight

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/adapter"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

// InsightRefInput identifies one insight in a user's working set.
type InsightRefInput struct {
	UserID    uuid.UUID
	InsightID uuid.UUID
}

// MarkInsightReadUseCase handles flagging an insight as read.
type MarkInsightReadUseCase struct {
	store adapter.InsightStore
}

// NewMarkInsightReadUseCase creates a new MarkInsightReadUseCase instance.
func NewMarkInsightReadUseCase(store adapter.InsightStore) *MarkInsightReadUseCase {
	return &MarkInsightReadUseCase{
		store: store,
	}
}

// Execute marks the insight as read.
func (uc *MarkInsightReadUseCase) Execute(ctx context.Context, input InsightRefInput) error {
	return storeResult(input, "mark insight as read", uc.store.MarkAsRead(ctx, input.UserID, input.InsightID))
}

// DismissInsightUseCase handles removing an insight from the working set.
type DismissInsightUseCase struct {
	store adapter.InsightStore
}

// NewDismissInsightUseCase creates a new DismissInsightUseCase instance.
func NewDismissInsightUseCase(store adapter.InsightStore) *DismissInsightUseCase {
	return &DismissInsightUseCase{
		store: store,
	}
}

// Execute dismisses the insight. The underlying financial data is untouched.
func (uc *DismissInsightUseCase) Execute(ctx context.Context, input InsightRefInput) error {
	return storeResult(input, "dismiss insight", uc.store.Dismiss(ctx, input.UserID, input.InsightID))
}

func storeResult(input InsightRefInput, operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domainerror.ErrInsightNotFound) {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightNotFound,
			"insight not found",
			domainerror.ErrInsightNotFound,
		)
	}

	slog.Error("Failed to "+operation, "user_id", input.UserID, "insight_id", input.InsightID, "error", err)
	return domainerror.NewInsightError(
		domainerror.ErrCodeInsightStoreUnavailable,
		"failed to "+operation,
		domainerror.ErrInsightStoreUnavailable,
	)
}
