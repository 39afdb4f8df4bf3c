// Package assignment contains money assignment use cases: setting a
// category's assigned amount for a month and moving money between
// categories.
package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// AssignCategoryInput represents the input for setting a category's
// assigned amount. Amount is the raw value from the client; non-finite and
// out-of-range values are normalized, never rejected.
type AssignCategoryInput struct {
	UserID     uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Month      string
	Amount     float64
}

// AssignCategoryOutput represents the result of the assignment.
type AssignCategoryOutput struct {
	Assigned  money.Milliunit
	Available money.Milliunit
	Delta     money.Milliunit
}

// AssignCategoryUseCase handles setting the assigned amount of one
// (category, month) pair.
type AssignCategoryUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	budgetMonthRepo adapter.BudgetMonthRepository
	builder         *budgetmonth.Builder
	cache           adapter.BudgetMonthCache
}

// NewAssignCategoryUseCase creates a new AssignCategoryUseCase instance.
func NewAssignCategoryUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	budgetMonthRepo adapter.BudgetMonthRepository,
	builder *budgetmonth.Builder,
	cache adapter.BudgetMonthCache,
) *AssignCategoryUseCase {
	return &AssignCategoryUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		budgetMonthRepo: budgetMonthRepo,
		builder:         builder,
		cache:           cache,
	}
}

// Execute performs the assignment.
func (uc *AssignCategoryUseCase) Execute(ctx context.Context, input AssignCategoryInput) (*AssignCategoryOutput, error) {
	if !budget.IsValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	if err := authorizeCategory(ctx, uc.budgetRepo, uc.categoryRepo, input.UserID, input.BudgetID, input.CategoryID); err != nil {
		return nil, err
	}

	amount, finite := money.FromFloat(input.Amount)
	validated := budget.ValidateAssignedValue(amount, finite)
	if !validated.Valid {
		slog.Warn("assignment amount not interpretable, treating as zero",
			"category_id", input.CategoryID, "month", input.Month)
	}

	row, carryforward, available, err := uc.builder.CategoryState(ctx, input.BudgetID, input.CategoryID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load category state: %w", err)
	}

	var existing *budget.ExistingAssignment
	if row != nil {
		existing = &budget.ExistingAssignment{
			Assigned:  row.Assigned,
			Available: available,
		}
	}

	result := budget.ComputeAssignment(budget.AssignmentInput{
		Existing:     existing,
		Carryforward: carryforward,
		NewAssigned:  validated.Value,
	})

	if result.Disposition != budget.DispositionSkip {
		change := adapter.AssignmentChange{
			BudgetID:    input.BudgetID,
			CategoryID:  input.CategoryID,
			Month:       input.Month,
			NewAssigned: result.NewAssigned,
			Disposition: result.Disposition,
		}
		if err := uc.budgetMonthRepo.ApplyChange(ctx, change); err != nil {
			return nil, fmt.Errorf("failed to apply assignment: %w", err)
		}
		invalidateCache(ctx, uc.cache, input.BudgetID)
	}

	return &AssignCategoryOutput{
		Assigned:  result.NewAssigned,
		Available: result.NewAvailable,
		Delta:     result.Delta,
	}, nil
}

// authorizeCategory verifies the budget belongs to the user and the
// category belongs to the budget.
func authorizeCategory(ctx context.Context, budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository, userID, budgetID, categoryID uuid.UUID) error {
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

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.BudgetID != budgetID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found in this budget",
			domainerror.ErrCategoryNotFound,
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
