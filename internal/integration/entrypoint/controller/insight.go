// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/insights/internal/application/usecase/insight"
	"github.com/finance-tracker/insights/internal/domain/entity"
	domainerror "github.com/finance-tracker/insights/internal/domain/error"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/middleware"
)

// InsightController handles insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightsUseCase
	listUseCase     *insight.ListInsightsUseCase
	markReadUseCase *insight.MarkInsightReadUseCase
	dismissUseCase  *insight.DismissInsightUseCase
	summaryUseCase  *insight.GetSummaryUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightsUseCase,
	listUseCase *insight.ListInsightsUseCase,
	markReadUseCase *insight.MarkInsightReadUseCase,
	dismissUseCase *insight.DismissInsightUseCase,
	summaryUseCase *insight.GetSummaryUseCase,
) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		dismissUseCase:  dismissUseCase,
		summaryUseCase:  summaryUseCase,
	}
}

// Refresh handles POST /insights/refresh requests.
func (c *InsightController) Refresh(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshInsightsResponse{
		Insights:    dto.ToInsightResponses(output.Insights),
		UnreadCount: output.UnreadCount,
	})
}

// List handles GET /insights requests.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	var query dto.ListInsightsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	input := insight.ListInsightsInput{
		UserID:     userID,
		UnreadOnly: query.Unread,
	}
	if query.Priority != nil {
		priority := entity.InsightPriority(*query.Priority)
		input.Priority = &priority
	}
	if query.Type != nil {
		insightType := entity.InsightType(*query.Type)
		input.Type = &insightType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output))
}

// MarkAsRead handles PATCH /insights/:id/read requests.
func (c *InsightController) MarkAsRead(ctx *gin.Context) {
	input, ok := c.insightRef(ctx)
	if !ok {
		return
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Dismiss handles DELETE /insights/:id requests.
func (c *InsightController) Dismiss(ctx *gin.Context) {
	input, ok := c.insightRef(ctx)
	if !ok {
		return
	}

	if err := c.dismissUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /insights/summary requests.
func (c *InsightController) Summary(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), insight.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightSummaryResponse(output))
}

func (c *InsightController) requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func (c *InsightController) insightRef(ctx *gin.Context) (insight.InsightRefInput, bool) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return insight.InsightRefInput{}, false
	}

	insightID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insight ID format",
			Code:  string(domainerror.ErrCodeInvalidInsightID),
		})
		return insight.InsightRefInput{}, false
	}

	return insight.InsightRefInput{UserID: userID, InsightID: insightID}, true
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(c.getStatusCodeForInsightError(insightErr.Code), dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidInsightPriority,
		domainerror.ErrCodeInvalidInsightType,
		domainerror.ErrCodeInvalidInsightID:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsightSourceUnavailable,
		domainerror.ErrCodeInsightStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
