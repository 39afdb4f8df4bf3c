package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// ListTransactionsInput represents the input for listing an account's
// transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	BudgetID  uuid.UUID
	AccountID uuid.UUID
}

// ListTransactionsOutput represents an account's transactions, newest first.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists the transactions of one account.
type ListTransactionsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil || account.BudgetID != input.BudgetID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found in this budget",
			domainerror.ErrAccountNotFound,
		)
	}

	transactions, err := uc.transactionRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
