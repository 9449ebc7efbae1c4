// Package cache implements the InsightStore adapter.
package cache

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

// insightRecord is the JSON form of an insight kept in Redis.
type insightRecord struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	Type       string        `json:"type"`
	Message    string        `json:"message"`
	Priority   string        `json:"priority"`
	Action     *actionRecord `json:"action,omitempty"`
	CategoryID *uuid.UUID    `json:"category_id,omitempty"`
	IsRead     bool          `json:"is_read"`
	CreatedAt  time.Time     `json:"created_at"`
}

type actionRecord struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

func recordFromEntity(insight *entity.Insight) insightRecord {
	record := insightRecord{
		ID:         insight.ID,
		UserID:     insight.UserID,
		Type:       string(insight.Type),
		Message:    insight.Message,
		Priority:   string(insight.Priority),
		CategoryID: insight.CategoryID,
		IsRead:     insight.IsRead,
		CreatedAt:  insight.CreatedAt,
	}
	if insight.Action != nil {
		record.Action = &actionRecord{
			Kind:   string(insight.Action.Kind),
			Label:  insight.Action.Label,
			Target: string(insight.Action.Target),
		}
	}
	return record
}

func (r insightRecord) toEntity() *entity.Insight {
	insight := &entity.Insight{
		ID:     r.ID,
		UserID: r.UserID,
		InsightCandidate: entity.InsightCandidate{
			Type:       entity.InsightType(r.Type),
			Message:    r.Message,
			Priority:   entity.InsightPriority(r.Priority),
			CategoryID: r.CategoryID,
		},
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
	if r.Action != nil {
		insight.Action = &entity.InsightAction{
			Kind:   entity.ActionKind(r.Action.Kind),
			Label:  r.Action.Label,
			Target: entity.Screen(r.Action.Target),
		}
	}
	return insight
}

// cloneInsight returns a deep copy so callers never share state with a store.
func cloneInsight(insight *entity.Insight) *entity.Insight {
	clone := *insight
	if insight.Action != nil {
		action := *insight.Action
		clone.Action = &action
	}
	if insight.CategoryID != nil {
		id := *insight.CategoryID
		clone.CategoryID = &id
	}
	return &clone
}
