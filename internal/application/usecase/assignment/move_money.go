package assignment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// MoveMoneyInput represents the input for moving money between two
// categories within one month.
type MoveMoneyInput struct {
	UserID           uuid.UUID
	BudgetID         uuid.UUID
	SourceCategoryID uuid.UUID
	TargetCategoryID uuid.UUID
	Month            string
	Amount           float64
}

// MoveMoneyOutput represents the result of a money move. Warning is set
// when the move drove the source available negative.
type MoveMoneyOutput struct {
	Moved           money.Milliunit
	SourceAssigned  money.Milliunit
	TargetAssigned  money.Milliunit
	SourceAvailable money.Milliunit
	Warning         budget.MoveMoneyWarning
}

// MoveMoneyUseCase moves assigned money from one category to another. The
// two row changes are applied in a single database transaction.
type MoveMoneyUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	budgetMonthRepo adapter.BudgetMonthRepository
	builder         *budgetmonth.Builder
	cache           adapter.BudgetMonthCache
}

// NewMoveMoneyUseCase creates a new MoveMoneyUseCase instance.
func NewMoveMoneyUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	budgetMonthRepo adapter.BudgetMonthRepository,
	builder *budgetmonth.Builder,
	cache adapter.BudgetMonthCache,
) *MoveMoneyUseCase {
	return &MoveMoneyUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		budgetMonthRepo: budgetMonthRepo,
		builder:         builder,
		cache:           cache,
	}
}

// Execute performs the money move.
func (uc *MoveMoneyUseCase) Execute(ctx context.Context, input MoveMoneyInput) (*MoveMoneyOutput, error) {
	if !budget.IsValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	if err := authorizeCategory(ctx, uc.budgetRepo, uc.categoryRepo, input.UserID, input.BudgetID, input.SourceCategoryID); err != nil {
		return nil, err
	}
	target, err := uc.categoryRepo.FindByID(ctx, input.TargetCategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find target category: %w", err)
	}
	if target == nil || target.BudgetID != input.BudgetID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"target category not found in this budget",
			domainerror.ErrCategoryNotFound,
		)
	}

	sourceRow, sourceCarryforward, sourceAvailable, err := uc.builder.CategoryState(ctx, input.BudgetID, input.SourceCategoryID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load source state: %w", err)
	}

	amount, finite := money.FromFloat(input.Amount)
	validation := budget.ValidateMoveMoney(budget.MoveMoneyInput{
		Amount:           amount,
		AmountNonFinite:  !finite,
		SourceCategoryID: input.SourceCategoryID,
		TargetCategoryID: input.TargetCategoryID,
		SourceAvailable:  sourceAvailable,
	})
	if !validation.Valid {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAssignedAmount,
			fmt.Sprintf("cannot move money: %s", validation.Error),
			domainerror.ErrInvalidAssignedAmount,
		)
	}

	targetRow, targetCarryforward, targetAvailable, err := uc.builder.CategoryState(ctx, input.BudgetID, input.TargetCategoryID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load target state: %w", err)
	}

	moved := validation.ClampedAmount

	sourceResult := budget.ComputeAssignment(budget.AssignmentInput{
		Existing:     existingFrom(sourceRow, sourceAvailable),
		Carryforward: sourceCarryforward,
		NewAssigned:  assignedOf(sourceRow) - moved,
	})
	targetResult := budget.ComputeAssignment(budget.AssignmentInput{
		Existing:     existingFrom(targetRow, targetAvailable),
		Carryforward: targetCarryforward,
		NewAssigned:  assignedOf(targetRow) + moved,
	})

	sourceChange := adapter.AssignmentChange{
		BudgetID:    input.BudgetID,
		CategoryID:  input.SourceCategoryID,
		Month:       input.Month,
		NewAssigned: sourceResult.NewAssigned,
		Disposition: sourceResult.Disposition,
	}
	targetChange := adapter.AssignmentChange{
		BudgetID:    input.BudgetID,
		CategoryID:  input.TargetCategoryID,
		Month:       input.Month,
		NewAssigned: targetResult.NewAssigned,
		Disposition: targetResult.Disposition,
	}
	if err := uc.budgetMonthRepo.ApplyMoveMoney(ctx, sourceChange, targetChange); err != nil {
		return nil, fmt.Errorf("failed to apply money move: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)

	return &MoveMoneyOutput{
		Moved:           moved,
		SourceAssigned:  sourceResult.NewAssigned,
		TargetAssigned:  targetResult.NewAssigned,
		SourceAvailable: sourceResult.NewAvailable,
		Warning:         validation.Warning,
	}, nil
}

func existingFrom(row *entity.BudgetMonth, available money.Milliunit) *budget.ExistingAssignment {
	if row == nil {
		return nil
	}
	return &budget.ExistingAssignment{Assigned: row.Assigned, Available: available}
}

func assignedOf(row *entity.BudgetMonth) money.Milliunit {
	if row == nil {
		return money.Zero
	}
	return row.Assigned
}
