// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/insights/internal/application/usecase/insight"
	"github.com/finance-tracker/insights/internal/domain/entity"
)

// ListInsightsQuery represents the query parameters for listing insights.
type ListInsightsQuery struct {
	Priority *string `form:"priority"`
	Type     *string `form:"type"`
	Unread   bool    `form:"unread"`
}

// InsightActionResponse represents the suggested follow-up of an insight.
type InsightActionResponse struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Message    string                 `json:"message"`
	Priority   string                 `json:"priority"`
	Action     *InsightActionResponse `json:"action,omitempty"`
	CategoryID *string                `json:"category_id,omitempty"`
	IsRead     bool                   `json:"is_read"`
	CreatedAt  time.Time              `json:"created_at"`
}

// InsightListResponse represents the response for listing insights.
type InsightListResponse struct {
	Insights          []InsightResponse `json:"insights"`
	Total             int               `json:"total"`
	UnreadCount       int               `json:"unread_count"`
	HighPriorityCount int               `json:"high_priority_count"`
}

// RefreshInsightsResponse represents the response for regenerating insights.
type RefreshInsightsResponse struct {
	Insights    []InsightResponse `json:"insights"`
	UnreadCount int               `json:"unread_count"`
}

// InsightSummaryResponse represents the month figures behind the insights.
type InsightSummaryResponse struct {
	PeriodLabel       string   `json:"period_label"`
	PeriodStart       string   `json:"period_start"`
	PeriodEnd         string   `json:"period_end"`
	Income            float64  `json:"income"`
	Expenses          float64  `json:"expenses"`
	LastMonthExpenses float64  `json:"last_month_expenses"`
	Balance           float64  `json:"balance"`
	SavingsRate       *float64 `json:"savings_rate,omitempty"`
	MonthlyBudget     float64  `json:"monthly_budget"`
	BudgetUsed        *float64 `json:"budget_used,omitempty"`
}

// ToInsightResponse converts a domain Insight entity to an InsightResponse DTO.
func ToInsightResponse(i *entity.Insight) InsightResponse {
	response := InsightResponse{
		ID:        i.ID.String(),
		Type:      string(i.Type),
		Message:   i.Message,
		Priority:  string(i.Priority),
		IsRead:    i.IsRead,
		CreatedAt: i.CreatedAt,
	}

	if i.Action != nil {
		response.Action = &InsightActionResponse{
			Type:   string(i.Action.Kind),
			Label:  i.Action.Label,
			Target: string(i.Action.Target),
		}
	}

	if i.CategoryID != nil {
		categoryID := i.CategoryID.String()
		response.CategoryID = &categoryID
	}

	return response
}

// ToInsightResponses converts a list of insights, never returning nil.
func ToInsightResponses(insights []*entity.Insight) []InsightResponse {
	responses := make([]InsightResponse, len(insights))
	for i, in := range insights {
		responses[i] = ToInsightResponse(in)
	}
	return responses
}

// ToInsightListResponse converts the list use case output to a response DTO.
func ToInsightListResponse(output *insight.ListInsightsOutput) InsightListResponse {
	return InsightListResponse{
		Insights:          ToInsightResponses(output.Insights),
		Total:             output.Total,
		UnreadCount:       output.UnreadCount,
		HighPriorityCount: output.HighPriorityCount,
	}
}

// ToInsightSummaryResponse converts the summary use case output to a response DTO.
func ToInsightSummaryResponse(output *insight.GetSummaryOutput) InsightSummaryResponse {
	response := InsightSummaryResponse{
		PeriodLabel:       output.PeriodLabel,
		PeriodStart:       output.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         output.PeriodEnd.Format("2006-01-02"),
		Income:            output.Income.InexactFloat64(),
		Expenses:          output.Expenses.InexactFloat64(),
		LastMonthExpenses: output.LastMonthExpenses.InexactFloat64(),
		Balance:           output.Balance.InexactFloat64(),
		MonthlyBudget:     output.MonthlyBudget.InexactFloat64(),
	}

	if output.SavingsRate != nil {
		rate := output.SavingsRate.InexactFloat64()
		response.SavingsRate = &rate
	}
	if output.BudgetUsed != nil {
		used := output.BudgetUsed.InexactFloat64()
		response.BudgetUsed = &used
	}

	return response
}
