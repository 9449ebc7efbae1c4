package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

var createdAt = time.Date(2025, time.March, 19, 10, 0, 0, 0, time.UTC)

func newInsight(userID uuid.UUID, insightType entity.InsightType, priority entity.InsightPriority) *entity.Insight {
	categoryID := uuid.New()
	return entity.NewInsight(userID, entity.InsightCandidate{
		Type:       insightType,
		Message:    "Voce ultrapassou o orcamento",
		Priority:   priority,
		Action:     entity.NavigateTo(entity.ScreenBudgets, "Ver orcamento"),
		CategoryID: &categoryID,
	}, createdAt)
}

func newRedisStore(t *testing.T) (adapter.InsightStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisInsightStore(client, time.Hour), server
}

func stores(t *testing.T) map[string]adapter.InsightStore {
	redisStore, _ := newRedisStore(t)
	return map[string]adapter.InsightStore{
		"redis":  redisStore,
		"memory": NewMemoryInsightStore(),
	}
}

func TestInsightStore_ReplaceAndList(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()

			empty, err := store.List(ctx, userID)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			first := []*entity.Insight{
				newInsight(userID, entity.InsightTypeBudgetAlert, entity.InsightPriorityHigh),
				newInsight(userID, entity.InsightTypeSpendingPattern, entity.InsightPriorityMedium),
			}
			require.NoError(t, store.Replace(ctx, userID, first))

			listed, err := store.List(ctx, userID)
			require.NoError(t, err)
			require.Len(t, listed, 2)
			assert.Equal(t, first[0].ID, listed[0].ID)
			assert.Equal(t, first[1].ID, listed[1].ID)
			assert.Equal(t, first[0].Message, listed[0].Message)
			assert.Equal(t, first[0].Priority, listed[0].Priority)
			require.NotNil(t, listed[0].Action)
			assert.Equal(t, *first[0].Action, *listed[0].Action)
			require.NotNil(t, listed[0].CategoryID)
			assert.Equal(t, *first[0].CategoryID, *listed[0].CategoryID)
			assert.True(t, createdAt.Equal(listed[0].CreatedAt))
			assert.False(t, listed[0].IsRead)

			second := []*entity.Insight{
				newInsight(userID, entity.InsightTypeMotivation, entity.InsightPriorityLow),
			}
			require.NoError(t, store.Replace(ctx, userID, second))

			listed, err = store.List(ctx, userID)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, second[0].ID, listed[0].ID)

			require.NoError(t, store.Replace(ctx, userID, nil))
			listed, err = store.List(ctx, userID)
			require.NoError(t, err)
			assert.Empty(t, listed)
		})
	}
}

func TestInsightStore_UsersAreIsolated(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			alice, bob := uuid.New(), uuid.New()
			insight := newInsight(alice, entity.InsightTypeGoalProgress, entity.InsightPriorityHigh)

			require.NoError(t, store.Replace(ctx, alice, []*entity.Insight{insight}))

			listed, err := store.List(ctx, bob)
			require.NoError(t, err)
			assert.Empty(t, listed)

			assert.ErrorIs(t, store.MarkAsRead(ctx, bob, insight.ID), domainerror.ErrInsightNotFound)
			assert.ErrorIs(t, store.Dismiss(ctx, bob, insight.ID), domainerror.ErrInsightNotFound)
		})
	}
}

func TestInsightStore_MarkAsRead(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()
			insights := []*entity.Insight{
				newInsight(userID, entity.InsightTypeBudgetAlert, entity.InsightPriorityHigh),
				newInsight(userID, entity.InsightTypeWasteDetection, entity.InsightPriorityMedium),
			}
			require.NoError(t, store.Replace(ctx, userID, insights))

			require.NoError(t, store.MarkAsRead(ctx, userID, insights[1].ID))
			require.NoError(t, store.MarkAsRead(ctx, userID, insights[1].ID))

			listed, err := store.List(ctx, userID)
			require.NoError(t, err)
			require.Len(t, listed, 2)
			assert.False(t, listed[0].IsRead)
			assert.True(t, listed[1].IsRead)
			assert.Equal(t, insights[1].ID, listed[1].ID)

			assert.ErrorIs(t, store.MarkAsRead(ctx, userID, uuid.New()), domainerror.ErrInsightNotFound)
		})
	}
}

func TestInsightStore_Dismiss(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()
			insights := []*entity.Insight{
				newInsight(userID, entity.InsightTypeBudgetAlert, entity.InsightPriorityHigh),
				newInsight(userID, entity.InsightTypeCreditReminder, entity.InsightPriorityMedium),
				newInsight(userID, entity.InsightTypeMotivation, entity.InsightPriorityLow),
			}
			require.NoError(t, store.Replace(ctx, userID, insights))

			require.NoError(t, store.Dismiss(ctx, userID, insights[1].ID))

			listed, err := store.List(ctx, userID)
			require.NoError(t, err)
			require.Len(t, listed, 2)
			assert.Equal(t, insights[0].ID, listed[0].ID)
			assert.Equal(t, insights[2].ID, listed[1].ID)

			assert.ErrorIs(t, store.Dismiss(ctx, userID, insights[1].ID), domainerror.ErrInsightNotFound)
		})
	}
}

func TestInsightStore_CallersCannotMutateStoredState(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()
			insight := newInsight(userID, entity.InsightTypeBudgetAlert, entity.InsightPriorityHigh)
			require.NoError(t, store.Replace(ctx, userID, []*entity.Insight{insight}))

			insight.IsRead = true
			listed, err := store.List(ctx, userID)
			require.NoError(t, err)
			listed[0].Message = "changed"

			again, err := store.List(ctx, userID)
			require.NoError(t, err)
			assert.False(t, again[0].IsRead)
			assert.NotEqual(t, "changed", again[0].Message)
		})
	}
}

func TestRedisInsightStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)
	userID := uuid.New()

	require.NoError(t, store.Replace(ctx, userID, []*entity.Insight{
		newInsight(userID, entity.InsightTypeBudgetAlert, entity.InsightPriorityHigh),
	}))

	assert.Equal(t, time.Hour, server.TTL(orderKey(userID)))
	assert.Equal(t, time.Hour, server.TTL(itemsKey(userID)))

	server.FastForward(2 * time.Hour)

	listed, err := store.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRedisInsightStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)
	server.Close()

	_, err := store.List(ctx, uuid.New())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerror.ErrInsightNotFound)
}
