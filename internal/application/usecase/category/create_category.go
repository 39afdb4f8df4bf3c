// Package category contains category and category group use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category and
// group names.
const MaxCategoryNameLength = 100

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID    uuid.UUID
	BudgetID  uuid.UUID
	GroupID   uuid.UUID
	Name      string
	SortOrder int
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	group, err := uc.categoryRepo.FindGroupByID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category group: %w", err)
	}
	if group == nil || group.BudgetID != input.BudgetID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryGroupNotFound,
			"category group not found in this budget",
			domainerror.ErrCategoryGroupNotFound,
		)
	}

	exists, err := uc.categoryRepo.ExistsByNameInGroup(ctx, input.GroupID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTaken,
			"a category with this name already exists in the group",
			domainerror.ErrCategoryNameTaken,
		)
	}

	category := entity.NewCategory(input.BudgetID, input.GroupID, input.Name, input.SortOrder)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// validateName checks category and group name constraints.
func validateName(name string) error {
	if name == "" || len(name) > MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			fmt.Sprintf("name must be 1 to %d characters", MaxCategoryNameLength),
			domainerror.ErrInvalidCategoryName,
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
