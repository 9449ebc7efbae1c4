// Package cache implements the InsightStore adapter.
package cache

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

// memoryInsightStore keeps working sets in process. Used by the CLI and
// when INSIGHTS_MEMORY_STORE is enabled.
type memoryInsightStore struct {
	mu       sync.RWMutex
	insights map[uuid.UUID][]*entity.Insight
}

// NewMemoryInsightStore creates an in-process insight store.
func NewMemoryInsightStore() adapter.InsightStore {
	return &memoryInsightStore{
		insights: make(map[uuid.UUID][]*entity.Insight),
	}
}

// Replace discards the user's current insights and stores the given list in order.
func (s *memoryInsightStore) Replace(ctx context.Context, userID uuid.UUID, insights []*entity.Insight) error {
	stored := make([]*entity.Insight, len(insights))
	for i, insight := range insights {
		stored[i] = cloneInsight(insight)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights[userID] = stored
	return nil
}

// List returns the user's insights in stored order.
func (s *memoryInsightStore) List(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.insights[userID]
	out := make([]*entity.Insight, len(stored))
	for i, insight := range stored {
		out[i] = cloneInsight(insight)
	}
	return out, nil
}

// MarkAsRead flags one insight as read.
func (s *memoryInsightStore) MarkAsRead(ctx context.Context, userID, insightID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(userID, insightID)
	if idx < 0 {
		return domainerror.ErrInsightNotFound
	}
	s.insights[userID][idx].IsRead = true
	return nil
}

// Dismiss removes one insight from the working set.
func (s *memoryInsightStore) Dismiss(ctx context.Context, userID, insightID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(userID, insightID)
	if idx < 0 {
		return domainerror.ErrInsightNotFound
	}
	s.insights[userID] = slices.Delete(s.insights[userID], idx, idx+1)
	return nil
}

// indexOf must be called with the lock held.
func (s *memoryInsightStore) indexOf(userID, insightID uuid.UUID) int {
	return slices.IndexFunc(s.insights[userID], func(i *entity.Insight) bool {
		return i.ID == insightID
	})
}
