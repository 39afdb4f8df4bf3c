// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

const (
	// MaxPayeeLength is the maximum allowed length for payee names.
	MaxPayeeLength = 200
	// MaxMemoLength is the maximum allowed length for memos.
	MaxMemoLength = 500
	// TransferPayeePrefix labels the generated payee of transfer legs.
	TransferPayeePrefix = "Transfer : "
)

// CreateTransactionInput represents the input for transaction creation.
// TransferAccountID, when set, makes this a transfer: the mirrored leg is
// created on the other account with the negated amount.
type CreateTransactionInput struct {
	UserID            uuid.UUID
	BudgetID          uuid.UUID
	AccountID         uuid.UUID
	CategoryID        *uuid.UUID
	TransferAccountID *uuid.UUID
	Date              time.Time
	Amount            float64
	Payee             string
	Memo              string
}

// CreateTransactionOutput represents the output of transaction creation.
// Mirror is the other leg of a transfer, nil otherwise.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Mirror      *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	budgetRepo      adapter.BudgetRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.BudgetMonthCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.BudgetMonthCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}
	if err := validateFields(input.Payee, input.Memo); err != nil {
		return nil, err
	}

	amount, finite := money.FromFloat(input.Amount)
	if !finite {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount is not a finite number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	account, err := uc.openAccount(ctx, input.BudgetID, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
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
	}

	txn := entity.NewTransaction(
		input.BudgetID, input.AccountID, input.CategoryID,
		input.Date, amount, input.Payee, input.Memo,
	)

	if input.TransferAccountID == nil {
		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}
		invalidateCache(ctx, uc.cache, input.BudgetID)
		return &CreateTransactionOutput{Transaction: txn}, nil
	}

	other, err := uc.openAccount(ctx, input.BudgetID, *input.TransferAccountID)
	if err != nil {
		return nil, err
	}

	txn.TransferAccountID = input.TransferAccountID
	txn.CategoryID = nil
	txn.Payee = TransferPayeePrefix + other.Name

	mirror := entity.NewTransaction(
		input.BudgetID, other.ID, nil,
		input.Date, -amount, TransferPayeePrefix+account.Name, input.Memo,
	)
	mirror.TransferAccountID = &input.AccountID

	if err := uc.transactionRepo.CreatePair(ctx, txn, mirror); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)

	return &CreateTransactionOutput{Transaction: txn, Mirror: mirror}, nil
}

// openAccount loads an account and verifies it is usable for new activity.
func (uc *CreateTransactionUseCase) openAccount(ctx context.Context, budgetID, accountID uuid.UUID) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil || account.BudgetID != budgetID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found in this budget",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.IsClosed() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountClosed,
			"cannot add transactions to a closed account",
			domainerror.ErrAccountClosed,
		)
	}
	return account, nil
}

// validateFields checks the payee and memo length limits.
func validateFields(payee, memo string) error {
	if len(payee) > MaxPayeeLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodePayeeTooLong,
			fmt.Sprintf("payee must not exceed %d characters", MaxPayeeLength),
			domainerror.ErrPayeeTooLong,
		)
	}
	if len(memo) > MaxMemoLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMemoTooLong,
			fmt.Sprintf("memo must not exceed %d characters", MaxMemoLength),
			domainerror.ErrMemoTooLong,
		)
	}
	return nil
}

// authorizeBudget verifies the budget exists and belongs to the user.
func authorizeBudget(ctx context.Context, budgetRepo adapter.BudgetRepository, userID, budgetID uuid.UUID) error {
	b, err := budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		return fmt.Errorf("failed to find budget: %w", err)
	}
	if b == nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if b.UserID != userID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"budget does not belong to the authenticated user",
			domainerror.ErrNotAuthorizedForBudget,
		)
	}
	return nil
}

// invalidateCache drops cached month snapshots. Cache trouble never fails
// the write.
func invalidateCache(ctx context.Context, cache adapter.BudgetMonthCache, budgetID uuid.UUID) {
	if err := cache.Invalidate(ctx, budgetID); err != nil {
		slog.Warn("failed to invalidate month snapshots", "budget_id", budgetID, "error", err)
	}
}
