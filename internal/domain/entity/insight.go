// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InsightType identifies the rule family that produced an insight.
type InsightType string

const (
	InsightTypeBudgetAlert     InsightType = "budget_alert"
	InsightTypeSpendingPattern InsightType = "spending_pattern"
	InsightTypeGoalProgress    InsightType = "goal_progress"
	InsightTypeFinancialHealth InsightType = "financial_health"
	InsightTypeWasteDetection  InsightType = "waste_detection"
	InsightTypeMotivation      InsightType = "motivation"
	InsightTypeCreditReminder  InsightType = "credit_reminder"
	InsightTypeRecurring       InsightType = "recurring_optimization"
)

// IsValid reports whether the type is one of the known insight types.
func (t InsightType) IsValid() bool {
	switch t {
	case InsightTypeBudgetAlert, InsightTypeSpendingPattern, InsightTypeGoalProgress,
		InsightTypeFinancialHealth, InsightTypeWasteDetection, InsightTypeMotivation,
		InsightTypeCreditReminder, InsightTypeRecurring:
		return true
	}
	return false
}

// InsightPriority is the ordinal urgency of an insight.
type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "high"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityLow    InsightPriority = "low"
)

// Rank returns the sort rank of the priority; lower ranks come first.
func (p InsightPriority) Rank() int {
	switch p {
	case InsightPriorityHigh:
		return 0
	case InsightPriorityMedium:
		return 1
	default:
		return 2
	}
}

// IsValid reports whether the priority is one of the known priorities.
func (p InsightPriority) IsValid() bool {
	return p == InsightPriorityHigh || p == InsightPriorityMedium || p == InsightPriorityLow
}

// ActionKind is the discriminator of an InsightAction.
type ActionKind string

// ActionKindNavigate opens a screen of the client application.
const ActionKindNavigate ActionKind = "navigate"

// Screen is a navigation target understood by the clients.
type Screen string

const (
	ScreenBudgets        Screen = "budgets"
	ScreenTransactions   Screen = "transactions"
	ScreenGoals          Screen = "goals"
	ScreenSharedExpenses Screen = "shared_expenses"
	ScreenRecurring      Screen = "recurring"
)

// InsightAction is a suggested follow-up attached to an insight.
type InsightAction struct {
	Kind   ActionKind
	Label  string
	Target Screen
}

// NavigateTo builds a navigate action to the given screen.
func NavigateTo(target Screen, label string) *InsightAction {
	return &InsightAction{
		Kind:   ActionKindNavigate,
		Label:  label,
		Target: target,
	}
}

// InsightCandidate is one observation about the user's finances before it gets
// an identity and read state.
type InsightCandidate struct {
	Type       InsightType
	Message    string
	Priority   InsightPriority
	Action     *InsightAction
	CategoryID *uuid.UUID
}

// Insight is an InsightCandidate owned by a user's working set.
type Insight struct {
	ID     uuid.UUID
	UserID uuid.UUID
	InsightCandidate
	IsRead    bool
	CreatedAt time.Time
}

// NewInsight wraps a candidate with a fresh identifier and unread state.
func NewInsight(userID uuid.UUID, candidate InsightCandidate, createdAt time.Time) *Insight {
	return &Insight{
		ID:               uuid.New(),
		UserID:           userID,
		InsightCandidate: candidate,
		IsRead:           false,
		CreatedAt:        createdAt,
	}
}
