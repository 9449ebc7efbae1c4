package insight

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

func TestMarkInsightReadUseCase_Execute(t *testing.T) {
	userID, insightID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		store := new(mockInsightStore)
		store.On("MarkAsRead", mock.Anything, userID, insightID).Return(nil)

		err := NewMarkInsightReadUseCase(store).Execute(context.Background(), InsightRefInput{UserID: userID, InsightID: insightID})

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockInsightStore)
		store.On("MarkAsRead", mock.Anything, userID, insightID).
			Return(fmt.Errorf("lookup: %w", domainerror.ErrInsightNotFound))

		err := NewMarkInsightReadUseCase(store).Execute(context.Background(), InsightRefInput{UserID: userID, InsightID: insightID})

		var insightErr *domainerror.InsightError
		require.ErrorAs(t, err, &insightErr)
		assert.Equal(t, domainerror.ErrCodeInsightNotFound, insightErr.Code)
	})
}

func TestDismissInsightUseCase_Execute(t *testing.T) {
	userID, insightID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		store := new(mockInsightStore)
		store.On("Dismiss", mock.Anything, userID, insightID).Return(nil)

		err := NewDismissInsightUseCase(store).Execute(context.Background(), InsightRefInput{UserID: userID, InsightID: insightID})

		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockInsightStore)
		store.On("Dismiss", mock.Anything, userID, insightID).Return(domainerror.ErrInsightNotFound)

		err := NewDismissInsightUseCase(store).Execute(context.Background(), InsightRefInput{UserID: userID, InsightID: insightID})

		assert.ErrorIs(t, err, domainerror.ErrInsightNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(mockInsightStore)
		store.On("Dismiss", mock.Anything, userID, insightID).Return(errors.New("broken pipe"))

		err := NewDismissInsightUseCase(store).Execute(context.Background(), InsightRefInput{UserID: userID, InsightID: insightID})

		var insightErr *domainerror.InsightError
		require.ErrorAs(t, err, &insightErr)
		assert.Equal(t, domainerror.ErrCodeInsightStoreUnavailable, insightErr.Code)
	})
}
