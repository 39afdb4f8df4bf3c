package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil pointer fields are left unchanged. ClearCategory removes the
// category.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	BudgetID      uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Date          *time.Time
	Amount        *float64
	Payee         *string
	Memo          *string
	Cleared       *entity.ClearedStatus
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates. Reconciled
// transactions are immutable except for the memo, and cleared status
// changes must follow the allowed transitions.
type UpdateTransactionUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.BudgetMonthCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.BudgetMonthCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn == nil || txn.BudgetID != input.BudgetID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found in this budget",
			domainerror.ErrTransactionNotFound,
		)
	}

	mutating := input.CategoryID != nil || input.ClearCategory ||
		input.Date != nil || input.Amount != nil || input.Payee != nil ||
		input.Cleared != nil
	if txn.IsReconciled() && mutating {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionReconciled,
			"reconciled transactions cannot be modified",
			domainerror.ErrTransactionReconciled,
		)
	}

	if input.Cleared != nil && !txn.Cleared.CanTransitionTo(*input.Cleared) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidClearedTransition,
			fmt.Sprintf("cannot change cleared status from %q to %q", txn.Cleared, *input.Cleared),
			domainerror.ErrInvalidClearedTransition,
		)
	}

	payee := txn.Payee
	if input.Payee != nil {
		payee = *input.Payee
	}
	memo := txn.Memo
	if input.Memo != nil {
		memo = *input.Memo
	}
	if err := validateFields(payee, memo); err != nil {
		return nil, err
	}

	if input.Amount != nil {
		amount, finite := money.FromFloat(*input.Amount)
		if !finite {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount is not a finite number",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		txn.Amount = amount
	}

	switch {
	case input.ClearCategory:
		txn.CategoryID = nil
	case input.CategoryID != nil:
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category == nil || category.BudgetID != input.BudgetID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found in this budget",
				domainerror.ErrCategoryNotFound,
			)
		}
		txn.CategoryID = input.CategoryID
	}

	if input.Date != nil {
		txn.Date = *input.Date
		txn.Month = input.Date.Format("2006-01")
	}
	txn.Payee = payee
	txn.Memo = memo
	if input.Cleared != nil {
		txn.Cleared = *input.Cleared
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
