package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	engine "github.com/finance-tracker/insights/internal/domain/insight"
)

// snapshot is the JSON document accepted by the generate command.
type snapshot struct {
	MonthlyBudget  decimal.Decimal       `json:"monthly_budget"`
	Transactions   []transactionRecord   `json:"transactions"`
	Categories     []categoryRecord      `json:"categories"`
	Goals          []goalRecord          `json:"goals"`
	RecurringItems []recurringItemRecord `json:"recurring_items"`
	Participants   []participantRecord   `json:"shared_expense_participants"`
}

type transactionRecord struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Date       lenientTime     `json:"date"`
	Tags       []string        `json:"tags"`
}

type categoryRecord struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Budget *decimal.Decimal `json:"budget"`
}

type goalRecord struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    lenientTime     `json:"target_date"`
	IsCompleted   bool            `json:"is_completed"`
	CompletedAt   lenientTime     `json:"completed_at"`
}

type recurringItemRecord struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	NextDate    lenientTime     `json:"next_date"`
	IsActive    *bool           `json:"is_active"`
}

type participantRecord struct {
	Name       string          `json:"name"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
	IsPaid     bool            `json:"is_paid"`
	CreatedAt  lenientTime     `json:"created_at"`
}

// lenientTime accepts RFC 3339 timestamps and YYYY-MM-DD dates.
// Anything else decodes to the zero time so the record drops out of date-based rules.
type lenientTime struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (t *lenientTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parseTime(raw)
	return nil
}

func (t lenientTime) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// toInput converts the snapshot into engine input for a single synthetic user.
func (s snapshot) toInput(now time.Time) engine.Input {
	userID := uuid.New()

	in := engine.Input{
		MonthlyBudget:  s.MonthlyBudget,
		Now:            now,
		Transactions:   make([]*entity.Transaction, 0, len(s.Transactions)),
		Categories:     make([]*entity.Category, 0, len(s.Categories)),
		Goals:          make([]*entity.Goal, 0, len(s.Goals)),
		RecurringItems: make([]*entity.RecurringItem, 0, len(s.RecurringItems)),
		Participants:   make([]*entity.SharedExpenseParticipant, 0, len(s.Participants)),
	}

	for _, r := range s.Transactions {
		in.Transactions = append(in.Transactions, entity.NewTransaction(
			userID, entity.TransactionType(r.Type), r.Amount, r.CategoryID, r.Date.Time, r.Tags,
		))
	}

	for _, r := range s.Categories {
		category := entity.NewCategory(userID, r.Name, r.Budget)
		if r.ID != uuid.Nil {
			category.ID = r.ID
		}
		in.Categories = append(in.Categories, category)
	}

	for _, r := range s.Goals {
		goal := entity.NewGoal(userID, r.Name, r.TargetAmount, r.CurrentAmount, r.TargetDate.ptr())
		goal.IsCompleted = r.IsCompleted
		goal.CompletedAt = r.CompletedAt.ptr()
		in.Goals = append(in.Goals, goal)
	}

	for _, r := range s.RecurringItems {
		item := entity.NewRecurringItem(userID, r.Description, r.Amount, entity.RecurringFrequency(r.Frequency), r.NextDate.Time)
		if r.IsActive != nil {
			item.IsActive = *r.IsActive
		}
		in.RecurringItems = append(in.RecurringItems, item)
	}

	for _, r := range s.Participants {
		in.Participants = append(in.Participants, &entity.SharedExpenseParticipant{
			ID:         uuid.New(),
			UserID:     userID,
			Name:       r.Name,
			AmountOwed: r.AmountOwed,
			IsPaid:     r.IsPaid,
			CreatedAt:  r.CreatedAt.Time,
		})
	}

	return in
}
