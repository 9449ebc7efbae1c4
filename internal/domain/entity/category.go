// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents a transaction category with an optional monthly budget cap.
type Category struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Budget *decimal.Decimal // nil means no monthly cap
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, budget *decimal.Decimal) *Category {
	return &Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Budget: budget,
	}
}

// HasBudget reports whether the category has a positive monthly cap.
func (c *Category) HasBudget() bool {
	return c.Budget != nil && c.Budget.IsPositive()
}
