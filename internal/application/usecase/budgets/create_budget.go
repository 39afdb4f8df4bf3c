package budgets

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// MaxBudgetNameLength is the maximum allowed length for budget names.
const MaxBudgetNameLength = 100

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID   uuid.UUID
	Name     string
	Currency string
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Name == "" || len(input.Name) > MaxBudgetNameLength {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetName,
			fmt.Sprintf("budget name must be 1 to %d characters", MaxBudgetNameLength),
			domainerror.ErrInvalidBudgetName,
		)
	}
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	budget := entity.NewBudget(input.UserID, input.Name, currency)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return &CreateBudgetOutput{Budget: budget}, nil
}
