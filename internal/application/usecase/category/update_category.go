package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// UpdateCategoryInput represents the input for updating a category. Nil
// pointer fields are left unchanged.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Name       *string
	Hidden     *bool
	SortOrder  *int
	GroupID    *uuid.UUID
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates. Payment categories keep
// their name and group in sync with the linked credit account, so those
// fields cannot be edited on them.
type UpdateCategoryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
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

	if category.IsCCPayment() && (input.Name != nil || input.GroupID != nil) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCCPaymentCategoryDeleted,
			"payment categories follow their linked account and cannot be renamed or moved",
			domainerror.ErrCannotDeleteCCPaymentCategory,
		)
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		exists, err := uc.categoryRepo.ExistsByNameInGroup(ctx, category.GroupID, *input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists && *input.Name != category.Name {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTaken,
				"a category with this name already exists in the group",
				domainerror.ErrCategoryNameTaken,
			)
		}
		category.Name = *input.Name
	}

	if input.GroupID != nil {
		group, err := uc.categoryRepo.FindGroupByID(ctx, *input.GroupID)
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
		category.GroupID = *input.GroupID
	}

	if input.Hidden != nil {
		category.Hidden = *input.Hidden
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &UpdateCategoryOutput{Category: category}, nil
}
