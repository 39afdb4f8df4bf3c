package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. Credit card payment
// categories are removed with their linked account, never directly.
type DeleteCategoryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.BudgetMonthCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.BudgetMonthCache,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.BudgetID != input.BudgetID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found in this budget",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.IsCCPayment() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCCPaymentCategoryDeleted,
			"payment categories are removed with their linked credit account",
			domainerror.ErrCannotDeleteCCPaymentCategory,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	invalidateCache(ctx, uc.cache, input.BudgetID)
	return nil
}
