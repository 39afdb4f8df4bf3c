package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	BudgetID      uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion. Reconciled
// transactions cannot be deleted.
type DeleteTransactionUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.BudgetMonthCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.BudgetMonthCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return err
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn == nil || txn.BudgetID != input.BudgetID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found in this budget",
			domainerror.ErrTransactionNotFound,
		)
	}
	if txn.IsReconciled() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionReconciled,
			"reconciled transactions cannot be deleted",
			domainerror.ErrTransactionReconciled,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)
	return nil
}
