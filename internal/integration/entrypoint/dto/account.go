package dto

import (
	"time"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/account"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Type            string  `json:"type" binding:"required,oneof=checking savings cash credit"`
	Note            string  `json:"note,omitempty" binding:"omitempty,max=500"`
	StartingBalance float64 `json:"starting_balance"`
}

// ReconcileAccountRequest represents the request body for reconciliation.
type ReconcileAccountRequest struct {
	StatedBalance float64 `json:"stated_balance"`
}

// ReconcileAccountResponse represents the result of a reconciliation.
type ReconcileAccountResponse struct {
	ReconciledCount int64                `json:"reconciled_count"`
	Adjustment      *TransactionResponse `json:"adjustment,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Note              string     `json:"note,omitempty"`
	Balance           float64    `json:"balance"`
	ClearedBalance    float64    `json:"cleared_balance"`
	PaymentCategoryID string     `json:"payment_category_id,omitempty"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Type:      string(acc.Type),
		Note:      acc.Note,
		ClosedAt:  acc.ClosedAt,
		CreatedAt: acc.CreatedAt,
	}
}

// ToCreateAccountResponse converts account creation output to its DTO.
func ToCreateAccountResponse(output *account.CreateAccountOutput) AccountResponse {
	response := ToAccountResponse(output.Account)
	if output.PaymentCategory != nil {
		response.PaymentCategoryID = output.PaymentCategory.ID.String()
	}
	return response
}

// ToAccountListResponse converts listing output to an AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		response := ToAccountResponse(a.Account)
		response.Balance = a.Balance.ToFloat()
		response.ClearedBalance = a.ClearedBalance.ToFloat()
		accounts[i] = response
	}
	return AccountListResponse{Accounts: accounts}
}

// ToReconcileAccountResponse converts reconciliation output to its DTO.
func ToReconcileAccountResponse(output *account.ReconcileAccountOutput) ReconcileAccountResponse {
	response := ReconcileAccountResponse{ReconciledCount: output.ReconciledCount}
	if output.Adjustment != nil {
		adjustment := ToTransactionResponse(output.Adjustment)
		response.Adjustment = &adjustment
	}
	return response
}
