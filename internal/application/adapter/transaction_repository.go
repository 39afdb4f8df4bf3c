// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// MonthlyCategoryAmounts maps month -> category -> milliunit amount.
type MonthlyCategoryAmounts map[string]map[uuid.UUID]money.Milliunit

// TransactionRepository defines the interface for transaction persistence
// and the pre-aggregated sums the budget engine is fed with. Balance sums
// include reconciled transactions; reconciled rows are merely immutable.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreatePair creates both legs of a transfer in one database transaction.
	CreatePair(ctx context.Context, outflow, inflow *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByAccount retrieves all transactions for an account, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// MonthlyActivityByCategory sums transaction amounts per category per
	// month (all accounts), months <= through.
	MonthlyActivityByCategory(ctx context.Context, budgetID uuid.UUID, through string) (MonthlyCategoryAmounts, error)

	// MonthlyCashSpendingByCategory computes outflow minus inflow per
	// category per month on non-credit accounts, clamped >= 0, months <= through.
	MonthlyCashSpendingByCategory(ctx context.Context, budgetID uuid.UUID, through string) (MonthlyCategoryAmounts, error)

	// MonthlySpendingOnAccount returns per-category outflow/inflow on one
	// credit account per month, months <= through.
	MonthlySpendingOnAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string][]budget.CategorySpending, error)

	// MonthlyPaymentsToAccount sums transfer inflows into a credit account
	// per month (card payments), months <= through.
	MonthlyPaymentsToAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string]money.Milliunit, error)

	// CashBalance sums all non-credit account transactions dated in or
	// before the given month.
	CashBalance(ctx context.Context, budgetID uuid.UUID, through string) (money.Milliunit, error)

	// CreditAccountBalances returns each credit account's balance through
	// the given month.
	CreditAccountBalances(ctx context.Context, budgetID uuid.UUID, through string) (map[uuid.UUID]money.Milliunit, error)

	// MonthlyInflow sums uncategorized inflows (money to be assigned) per
	// month, months <= through.
	MonthlyInflow(ctx context.Context, budgetID uuid.UUID, through string) (map[string]money.Milliunit, error)

	// ClearedBalance sums cleared and reconciled transactions on an account.
	ClearedBalance(ctx context.Context, accountID uuid.UUID) (money.Milliunit, error)

	// ReconcileAccount marks every cleared transaction on the account
	// reconciled and inserts the adjustment transaction (may be nil) in one
	// database transaction. Returns the number of reconciled rows.
	ReconcileAccount(ctx context.Context, accountID uuid.UUID, adjustment *entity.Transaction) (int64, error)
}
