package dto

import (
	"time"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Name:      budget.Name,
		Currency:  budget.Currency,
		CreatedAt: budget.CreatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	list := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		list[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: list}
}
