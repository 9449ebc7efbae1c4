// Package cache implements the InsightStore adapter.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

const (
	keyPrefix = "insights:"

	// maxWatchRetries bounds optimistic-lock retries on concurrent updates.
	maxWatchRetries = 3
)

// redisInsightStore keeps each user's working set as an ordered id list
// plus a hash of JSON-encoded insights, both sharing the same TTL.
type redisInsightStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInsightStore creates a Redis-backed insight store.
// A zero ttl keeps working sets until they are replaced.
func NewRedisInsightStore(client *redis.Client, ttl time.Duration) adapter.InsightStore {
	return &redisInsightStore{
		client: client,
		ttl:    ttl,
	}
}

func orderKey(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":order"
}

func itemsKey(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":items"
}

// Replace discards the user's current insights and stores the given list in order.
func (s *redisInsightStore) Replace(ctx context.Context, userID uuid.UUID, insights []*entity.Insight) error {
	ids := make([]any, 0, len(insights))
	fields := make([]any, 0, 2*len(insights))
	for _, insight := range insights {
		data, err := json.Marshal(recordFromEntity(insight))
		if err != nil {
			return fmt.Errorf("failed to encode insight %s: %w", insight.ID, err)
		}
		ids = append(ids, insight.ID.String())
		fields = append(fields, insight.ID.String(), data)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, orderKey(userID), itemsKey(userID))
		if len(ids) == 0 {
			return nil
		}
		pipe.RPush(ctx, orderKey(userID), ids...)
		pipe.HSet(ctx, itemsKey(userID), fields...)
		if s.ttl > 0 {
			pipe.Expire(ctx, orderKey(userID), s.ttl)
			pipe.Expire(ctx, itemsKey(userID), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace insights: %w", err)
	}
	return nil
}

// List returns the user's insights in stored order.
func (s *redisInsightStore) List(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error) {
	ids, err := s.client.LRange(ctx, orderKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read insight order: %w", err)
	}
	if len(ids) == 0 {
		return []*entity.Insight{}, nil
	}

	values, err := s.client.HMGet(ctx, itemsKey(userID), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read insights: %w", err)
	}

	insights := make([]*entity.Insight, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		insight, err := decode(raw)
		if err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

// MarkAsRead flags one insight as read.
func (s *redisInsightStore) MarkAsRead(ctx context.Context, userID, insightID uuid.UUID) error {
	key := itemsKey(userID)
	field := insightID.String()

	return s.watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, field).Result()
		if errors.Is(err, redis.Nil) {
			return domainerror.ErrInsightNotFound
		}
		if err != nil {
			return err
		}

		insight, err := decode(raw)
		if err != nil {
			return err
		}
		if insight.IsRead {
			return nil
		}
		insight.IsRead = true

		data, err := json.Marshal(recordFromEntity(insight))
		if err != nil {
			return fmt.Errorf("failed to encode insight %s: %w", insightID, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, field, data)
			return nil
		})
		return err
	}, key)
}

// Dismiss removes one insight from the working set.
func (s *redisInsightStore) Dismiss(ctx context.Context, userID, insightID uuid.UUID) error {
	key := itemsKey(userID)
	field := insightID.String()

	return s.watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, key, field).Result()
		if err != nil {
			return err
		}
		if !exists {
			return domainerror.ErrInsightNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, key, field)
			pipe.LRem(ctx, orderKey(userID), 0, field)
			return nil
		})
		return err
	}, key, orderKey(userID))
}

// watch runs fn under WATCH on keys, retrying when another client changed them.
func (s *redisInsightStore) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, fn, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("insight update kept conflicting after %d attempts", maxWatchRetries)
}

func decode(raw string) (*entity.Insight, error) {
	var record insightRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to decode insight: %w", err)
	}
	return record.toEntity(), nil
}
