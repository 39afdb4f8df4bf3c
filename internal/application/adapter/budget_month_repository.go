// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// AssignmentChange is one ready-to-apply budget row change, produced from
// an engine assignment result.
type AssignmentChange struct {
	BudgetID    uuid.UUID
	CategoryID  uuid.UUID
	Month       string
	NewAssigned money.Milliunit
	Disposition budget.Disposition
}

// BudgetMonthRepository defines the interface for budget month persistence
// operations. Rows are keyed uniquely by (category, month).
type BudgetMonthRepository interface {
	// FindByCategoryAndMonth retrieves the row for one (category, month)
	// pair. Absence is normal and returns (nil, nil).
	FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month string) (*entity.BudgetMonth, error)

	// FindByBudgetThrough retrieves all rows for a budget with month <= through,
	// ordered by month.
	FindByBudgetThrough(ctx context.Context, budgetID uuid.UUID, through string) ([]*entity.BudgetMonth, error)

	// SumAssignedAfter sums assigned amounts over months strictly after the
	// given month.
	SumAssignedAfter(ctx context.Context, budgetID uuid.UUID, after string) (money.Milliunit, error)

	// ApplyChange applies a single assignment change per its disposition.
	ApplyChange(ctx context.Context, change AssignmentChange) error

	// ApplyMoveMoney applies the source and target changes of a money move
	// in one database transaction: no intermediate state (source debited,
	// target not credited) is ever durably persisted.
	ApplyMoveMoney(ctx context.Context, source, target AssignmentChange) error
}
