package insight

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

func recurringItem(amount float64, frequency entity.RecurringFrequency, next time.Time) *entity.RecurringItem {
	return entity.NewRecurringItem(uuid.New(), "item", dec(amount), frequency, next)
}

func TestEvaluateRecurring(t *testing.T) {
	t.Run("monthly equivalent and annual total", func(t *testing.T) {
		in := Input{RecurringItems: []*entity.RecurringItem{
			recurringItem(30, entity.RecurringFrequencyMonthly, day(time.April, 1)),
			recurringItem(90, entity.RecurringFrequencyQuarterly, day(time.April, 1)),
			recurringItem(120, entity.RecurringFrequencyYearly, day(time.April, 1)),
		}}

		got := run(EvaluateRecurring, in)

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightTypeRecurring, got[0].Type)
		assert.Equal(t, entity.InsightPriorityLow, got[0].Priority)
		assert.Contains(t, got[0].Message, "R$ 70.00")
		assert.Contains(t, got[0].Message, "R$ 840.00")
		require.NotNil(t, got[0].Action)
		assert.Equal(t, entity.ScreenRecurring, got[0].Action.Target)
	})

	t.Run("above 100 per month is medium", func(t *testing.T) {
		in := Input{RecurringItems: []*entity.RecurringItem{
			recurringItem(101, entity.RecurringFrequencyMonthly, day(time.April, 1)),
		}}

		got := run(EvaluateRecurring, in)

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightPriorityMedium, got[0].Priority)
	})

	t.Run("overdue items are escalated separately", func(t *testing.T) {
		in := Input{RecurringItems: []*entity.RecurringItem{
			recurringItem(20, entity.RecurringFrequencyMonthly, day(time.March, 1)),
			recurringItem(20, entity.RecurringFrequencyMonthly, day(time.March, 18)),
			recurringItem(20, entity.RecurringFrequencyMonthly, refNow),
		}}

		got := run(EvaluateRecurring, in)

		require.Len(t, got, 2)
		assert.Equal(t, entity.InsightPriorityLow, got[0].Priority)
		assert.Equal(t, entity.InsightPriorityHigh, got[1].Priority)
		assert.Contains(t, got[1].Message, "2 despesa")
		require.NotNil(t, got[1].Action)
	})

	t.Run("inactive items are ignored", func(t *testing.T) {
		item := recurringItem(500, entity.RecurringFrequencyMonthly, day(time.January, 1))
		item.IsActive = false

		assert.Empty(t, run(EvaluateRecurring, Input{RecurringItems: []*entity.RecurringItem{item}}))
	})
}
