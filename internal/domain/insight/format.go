package insight

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns part/whole*100. ok is false when whole is not positive.
func percentOf(part, whole decimal.Decimal) (decimal.Decimal, bool) {
	if !whole.IsPositive() {
		return decimal.Zero, false
	}
	return part.Div(whole).Mul(hundred), true
}

func money(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

func percent(value decimal.Decimal) string {
	return value.StringFixed(0)
}

func categoryRef(id uuid.UUID) *uuid.UUID {
	return &id
}
