package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// ReconciliationTolerance is the largest difference between the stated and
// cleared balance that is treated as equal: 0.01 currency units.
const ReconciliationTolerance = money.Milliunit(10)

// ReconciliationAdjustmentPayee labels the balance adjustment transaction.
const ReconciliationAdjustmentPayee = "Reconciliation Balance Adjustment"

// ReconcileAccountInput represents the input for account reconciliation.
// StatedBalance is the balance the user reads off their bank statement.
type ReconcileAccountInput struct {
	UserID        uuid.UUID
	BudgetID      uuid.UUID
	AccountID     uuid.UUID
	StatedBalance float64
}

// ReconcileAccountOutput represents the result of a reconciliation.
type ReconcileAccountOutput struct {
	ReconciledCount int64
	Adjustment      *entity.Transaction
}

// ReconcileAccountUseCase locks in an account's cleared transactions. When
// the stated balance disagrees with the cleared balance beyond the
// tolerance, an adjustment transaction makes up the difference; it and the
// status flips land in one database transaction.
type ReconcileAccountUseCase struct {
	budgetRepo      adapter.BudgetRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	cache           adapter.BudgetMonthCache
}

// NewReconcileAccountUseCase creates a new ReconcileAccountUseCase instance.
func NewReconcileAccountUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	cache adapter.BudgetMonthCache,
) *ReconcileAccountUseCase {
	return &ReconcileAccountUseCase{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the reconciliation.
func (uc *ReconcileAccountUseCase) Execute(ctx context.Context, input ReconcileAccountInput) (*ReconcileAccountOutput, error) {
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
	if account.IsClosed() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountClosed,
			"cannot reconcile a closed account",
			domainerror.ErrAccountClosed,
		)
	}

	stated, finite := money.FromFloat(input.StatedBalance)
	if !finite {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"stated balance is not a finite number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	cleared, err := uc.transactionRepo.ClearedBalance(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cleared balance: %w", err)
	}

	var adjustment *entity.Transaction
	if diff := stated - cleared; diff.Abs() > ReconciliationTolerance {
		adjustment = entity.NewTransaction(
			input.BudgetID, input.AccountID, nil,
			nowUTC(), diff, ReconciliationAdjustmentPayee, "",
		)
		adjustment.Cleared = entity.ClearedStatusCleared
		slog.Info("reconciliation adjustment created",
			"account_id", input.AccountID, "difference", diff)
	}

	count, err := uc.transactionRepo.ReconcileAccount(ctx, input.AccountID, adjustment)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile account: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)

	return &ReconcileAccountOutput{
		ReconciledCount: count,
		Adjustment:      adjustment,
	}, nil
}
