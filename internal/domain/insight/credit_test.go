package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

func participant(name string, owed float64, paid bool, age time.Duration) *entity.SharedExpenseParticipant {
	return &entity.SharedExpenseParticipant{
		Name:       name,
		AmountOwed: dec(owed),
		IsPaid:     paid,
		CreatedAt:  refNow.Add(-age),
	}
}

func TestEvaluateCredits(t *testing.T) {
	t.Run("general reminder and overdue escalation", func(t *testing.T) {
		in := Input{Participants: []*entity.SharedExpenseParticipant{
			participant("Ana", 50, false, 40*24*time.Hour),
			participant("Bruno", 30, false, 2*24*time.Hour),
		}}

		got := run(EvaluateCredits, in)

		require.Len(t, got, 2)
		assert.Equal(t, entity.InsightPriorityLow, got[0].Priority)
		assert.Contains(t, got[0].Message, "R$ 80.00")
		assert.Contains(t, got[0].Message, "2 pessoa")
		require.NotNil(t, got[0].Action)
		assert.Equal(t, entity.ScreenSharedExpenses, got[0].Action.Target)

		assert.Equal(t, entity.InsightPriorityHigh, got[1].Priority)
		assert.Contains(t, got[1].Message, "R$ 50.00")
		assert.Nil(t, got[1].Action, "overdue reminder has no action")
		for _, c := range got {
			assert.Equal(t, entity.InsightTypeCreditReminder, c.Type)
		}
	})

	t.Run("above 100 is medium", func(t *testing.T) {
		in := Input{Participants: []*entity.SharedExpenseParticipant{
			participant("Ana", 80, false, time.Hour),
			participant("Ana", 40, false, time.Hour),
			participant("", 1, false, time.Hour),
		}}

		got := run(EvaluateCredits, in)

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightPriorityMedium, got[0].Priority)
		assert.Contains(t, got[0].Message, "2 pessoa", "same name counts once, unnamed counts individually")
	})

	t.Run("exactly 100 is low", func(t *testing.T) {
		in := Input{Participants: []*entity.SharedExpenseParticipant{participant("Ana", 100, false, time.Hour)}}

		got := run(EvaluateCredits, in)

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightPriorityLow, got[0].Priority)
	})

	t.Run("paid participants are ignored", func(t *testing.T) {
		in := Input{Participants: []*entity.SharedExpenseParticipant{participant("Ana", 500, true, 90*24*time.Hour)}}

		assert.Empty(t, run(EvaluateCredits, in))
	})
}
