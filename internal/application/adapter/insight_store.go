// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// InsightStore holds each user's working set of generated insights.
type InsightStore interface {
	// Replace discards the user's current insights and stores the given list in order.
	Replace(ctx context.Context, userID uuid.UUID, insights []*entity.Insight) error

	// List returns the user's insights in stored order.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error)

	// MarkAsRead flags one insight as read.
	// Returns domainerror.ErrInsightNotFound when the insight is not in the working set.
	MarkAsRead(ctx context.Context, userID, insightID uuid.UUID) error

	// Dismiss removes one insight from the working set.
	// Returns domainerror.ErrInsightNotFound when the insight is not in the working set.
	Dismiss(ctx context.Context, userID, insightID uuid.UUID) error
}
