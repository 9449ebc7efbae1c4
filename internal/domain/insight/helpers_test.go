package insight

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/internal/domain/entity"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
)

// refNow is a Wednesday.
var refNow = time.Date(2025, time.March, 19, 10, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func expense(amount float64, categoryID *uuid.UUID, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		Type:       entity.TransactionTypeExpense,
		Amount:     dec(amount),
		CategoryID: categoryID,
		Date:       date,
	}
}

func income(amount float64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Type:   entity.TransactionTypeIncome,
		Amount: dec(amount),
		Date:   date,
	}
}

func category(name string, budget *decimal.Decimal) *entity.Category {
	return &entity.Category{ID: uuid.New(), Name: name, Budget: budget}
}

func idOf(c *entity.Category) *uuid.UUID {
	id := c.ID
	return &id
}

func run(ev Evaluator, in Input) []entity.InsightCandidate {
	t := valueobject.DefaultInsightThresholds()
	if in.Now.IsZero() {
		in.Now = refNow
	}
	return ev(Aggregate(in, t), in, t)
}

func ofType(candidates []entity.InsightCandidate, insightType entity.InsightType) []entity.InsightCandidate {
	var out []entity.InsightCandidate
	for _, c := range candidates {
		if c.Type == insightType {
			out = append(out, c)
		}
	}
	return out
}
