// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditCardPaymentsGroupName is the reserved group holding the auto-created
// credit card payment categories.
const CreditCardPaymentsGroupName = "Credit Card Payments"

// CategoryGroup organizes categories for display.
type CategoryGroup struct {
	ID        uuid.UUID
	BudgetID  uuid.UUID
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategoryGroup creates a new CategoryGroup entity.
func NewCategoryGroup(budgetID uuid.UUID, name string, sortOrder int) *CategoryGroup {
	now := time.Now().UTC()

	return &CategoryGroup{
		ID:        uuid.New(),
		BudgetID:  budgetID,
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Category represents a budget envelope. LinkedAccountID is non-nil only
// for credit card payment categories, which are linked 1:1 to a credit
// account.
type Category struct {
	ID              uuid.UUID
	BudgetID        uuid.UUID
	GroupID         uuid.UUID
	Name            string
	LinkedAccountID *uuid.UUID
	Hidden          bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(budgetID, groupID uuid.UUID, name string, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		BudgetID:  budgetID,
		GroupID:   groupID,
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCCPaymentCategory creates the payment category auto-linked to a credit
// account. It is named after the account and lives in the reserved group.
func NewCCPaymentCategory(budgetID, groupID uuid.UUID, account *Account) *Category {
	c := NewCategory(budgetID, groupID, account.Name, 0)
	accountID := account.ID
	c.LinkedAccountID = &accountID
	return c
}

// IsCCPayment reports whether this is a credit card payment category.
func (c *Category) IsCCPayment() bool {
	return c.LinkedAccountID != nil
}

// CategoryGroupWithCategories represents a group with its categories, for
// listing.
type CategoryGroupWithCategories struct {
	Group      *CategoryGroup
	Categories []*Category
}
