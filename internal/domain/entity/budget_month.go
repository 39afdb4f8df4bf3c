// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// BudgetMonth is one category's persisted assignment for one month, keyed
// uniquely by (category, month). Activity and available are always derived
// from transactions and the carryforward chain, never stored: rows exist
// only while they carry a non-trivial assigned amount, so the table stays
// sparse.
type BudgetMonth struct {
	ID         uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Month      string // "YYYY-MM"
	Assigned   money.Milliunit
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudgetMonth creates a new BudgetMonth entity.
func NewBudgetMonth(budgetID, categoryID uuid.UUID, month string, assigned money.Milliunit) *BudgetMonth {
	now := time.Now().UTC()

	return &BudgetMonth{
		ID:         uuid.New(),
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Month:      month,
		Assigned:   assigned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
