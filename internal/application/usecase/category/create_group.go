package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CreateGroupInput represents the input for category group creation.
type CreateGroupInput struct {
	UserID    uuid.UUID
	BudgetID  uuid.UUID
	Name      string
	SortOrder int
}

// CreateGroupOutput represents the output of category group creation.
type CreateGroupOutput struct {
	Group *entity.CategoryGroup
}

// CreateGroupUseCase handles category group creation logic.
type CreateGroupUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category group creation.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	group := entity.NewCategoryGroup(input.BudgetID, input.Name, input.SortOrder)
	if err := uc.categoryRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create category group: %w", err)
	}
	return &CreateGroupOutput{Group: group}, nil
}
