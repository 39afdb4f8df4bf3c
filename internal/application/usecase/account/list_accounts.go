package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// AccountWithBalance pairs an account with its computed balances.
type AccountWithBalance struct {
	Account        *entity.Account
	Balance        money.Milliunit
	ClearedBalance money.Milliunit
}

// ListAccountsInput represents the input for listing a budget's accounts.
type ListAccountsInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// ListAccountsOutput represents the accounts of a budget with balances.
type ListAccountsOutput struct {
	Accounts []AccountWithBalance
}

// ListAccountsUseCase lists a budget's accounts with current balances.
type ListAccountsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := &ListAccountsOutput{Accounts: make([]AccountWithBalance, 0, len(accounts))}
	for _, acc := range accounts {
		transactions, err := uc.transactionRepo.FindByAccount(ctx, acc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		balance := money.Zero
		for _, txn := range transactions {
			balance += txn.Amount
		}
		cleared, err := uc.transactionRepo.ClearedBalance(ctx, acc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cleared balance: %w", err)
		}
		out.Accounts = append(out.Accounts, AccountWithBalance{
			Account:        acc,
			Balance:        balance,
			ClearedBalance: cleared,
		})
	}
	return out, nil
}

// invalidateCache drops cached month snapshots. Cache trouble never fails
// the write.
func invalidateCache(ctx context.Context, cache adapter.BudgetMonthCache, budgetID uuid.UUID) {
	if err := cache.Invalidate(ctx, budgetID); err != nil {
		slog.Warn("failed to invalidate month snapshots", "budget_id", budgetID, "error", err)
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
