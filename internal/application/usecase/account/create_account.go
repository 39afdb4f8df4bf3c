// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// StartingBalancePayee labels the auto-created opening transaction.
const StartingBalancePayee = "Starting Balance"

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID          uuid.UUID
	BudgetID        uuid.UUID
	Name            string
	Type            entity.AccountType
	Note            string
	StartingBalance float64
}

// CreateAccountOutput represents the output of account creation.
// PaymentCategory is set only for credit accounts.
type CreateAccountOutput struct {
	Account         *entity.Account
	PaymentCategory *entity.Category
}

// CreateAccountUseCase handles account creation. Creating a credit account
// also creates its linked payment category, and a non-zero starting balance
// creates an opening transaction; all of it lands in one database
// transaction.
type CreateAccountUseCase struct {
	budgetRepo   adapter.BudgetRepository
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.BudgetMonthCache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.BudgetMonthCache,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		budgetRepo:   budgetRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	if input.Name == "" || len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			fmt.Sprintf("account name must be 1 to %d characters", MaxAccountNameLength),
			domainerror.ErrInvalidAccountName,
		)
	}
	if !entity.IsValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'checking', 'savings', 'cash' or 'credit'",
			domainerror.ErrInvalidAccountType,
		)
	}

	existing, err := uc.accountRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, acc := range existing {
		if acc.Name == input.Name && !acc.IsClosed() {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameTaken,
				"an account with this name already exists",
				domainerror.ErrAccountNameTaken,
			)
		}
	}

	account := entity.NewAccount(input.BudgetID, input.Name, input.Type, input.Note)

	var paymentCategory *entity.Category
	if input.Type.IsCredit() {
		group, err := uc.categoryRepo.FindOrCreateGroupByName(ctx, input.BudgetID, entity.CreditCardPaymentsGroupName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve payment category group: %w", err)
		}
		paymentCategory = entity.NewCCPaymentCategory(input.BudgetID, group.ID, account)
	}

	var opening *entity.Transaction
	if balance, finite := money.FromFloat(input.StartingBalance); finite && !balance.IsZero() {
		opening = entity.NewTransaction(
			input.BudgetID, account.ID, nil,
			account.CreatedAt, balance, StartingBalancePayee, "",
		)
		opening.Cleared = entity.ClearedStatusCleared
	}

	if err := uc.accountRepo.CreateWithSetup(ctx, account, paymentCategory, opening); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)

	return &CreateAccountOutput{
		Account:         account,
		PaymentCategory: paymentCategory,
	}, nil
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
