package dto

import (
	"time"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Setting transfer_account_id makes the transaction a transfer;
// the mirrored leg on the other account is created automatically.
type CreateTransactionRequest struct {
	AccountID         string  `json:"account_id" binding:"required,uuid"`
	CategoryID        *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	TransferAccountID *string `json:"transfer_account_id,omitempty" binding:"omitempty,uuid"`
	Date              string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount            float64 `json:"amount"`
	Payee             string  `json:"payee,omitempty" binding:"omitempty,max=200"`
	Memo              string  `json:"memo,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for a transaction
// update. Absent fields are left untouched; clear_category drops the
// category outright.
type UpdateTransactionRequest struct {
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Date          *string  `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount        *float64 `json:"amount,omitempty"`
	Payee         *string  `json:"payee,omitempty" binding:"omitempty,max=200"`
	Memo          *string  `json:"memo,omitempty" binding:"omitempty,max=500"`
	Cleared       *string  `json:"cleared,omitempty" binding:"omitempty,oneof=uncleared cleared reconciled"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"account_id"`
	CategoryID        string    `json:"category_id,omitempty"`
	TransferAccountID string    `json:"transfer_account_id,omitempty"`
	Date              string    `json:"date"`
	Amount            float64   `json:"amount"`
	Payee             string    `json:"payee,omitempty"`
	Memo              string    `json:"memo,omitempty"`
	Cleared           string    `json:"cleared"`
	CreatedAt         time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        txn.ID.String(),
		AccountID: txn.AccountID.String(),
		Date:      txn.Date.Format("2006-01-02"),
		Amount:    txn.Amount.ToFloat(),
		Payee:     txn.Payee,
		Memo:      txn.Memo,
		Cleared:   string(txn.Cleared),
		CreatedAt: txn.CreatedAt,
	}
	if txn.CategoryID != nil {
		response.CategoryID = txn.CategoryID.String()
	}
	if txn.TransferAccountID != nil {
		response.TransferAccountID = txn.TransferAccountID.String()
	}
	return response
}

// ToTransactionListResponse converts a list of transactions to a
// TransactionListResponse.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	list := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		list[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: list}
}
