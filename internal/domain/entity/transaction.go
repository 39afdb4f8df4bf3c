// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// ClearedStatus is the reconciliation lifecycle of a transaction:
// uncleared -> cleared -> reconciled. Reconciled is terminal; reconciled
// transactions still count in every balance sum but can no longer change.
type ClearedStatus string

const (
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// CanTransitionTo reports whether the status may change to next.
func (s ClearedStatus) CanTransitionTo(next ClearedStatus) bool {
	switch s {
	case ClearedStatusUncleared:
		return next == ClearedStatusCleared
	case ClearedStatusCleared:
		return next == ClearedStatusUncleared || next == ClearedStatusReconciled
	case ClearedStatusReconciled:
		return false
	}
	return false
}

// IsValidClearedStatus reports whether s is a known status.
func IsValidClearedStatus(s ClearedStatus) bool {
	switch s {
	case ClearedStatusUncleared, ClearedStatusCleared, ClearedStatusReconciled:
		return true
	}
	return false
}

// Transaction represents one movement of money on an account. Amount is in
// milliunits: negative for outflows, positive for inflows. A nil CategoryID
// on an inflow means money to be assigned; TransferAccountID marks the
// counterpart account of a transfer (credit card payments are transfers
// into the credit account).
type Transaction struct {
	ID                uuid.UUID
	BudgetID          uuid.UUID
	AccountID         uuid.UUID
	CategoryID        *uuid.UUID
	TransferAccountID *uuid.UUID
	Date              time.Time
	Month             string // "YYYY-MM", derived from Date at write time
	Amount            money.Milliunit
	Payee             string
	Memo              string
	Cleared           ClearedStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a new Transaction entity in the uncleared state.
func NewTransaction(
	budgetID uuid.UUID,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	date time.Time,
	amount money.Milliunit,
	payee string,
	memo string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		BudgetID:   budgetID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Date:       date,
		Month:      date.Format("2006-01"),
		Amount:     amount,
		Payee:      payee,
		Memo:       memo,
		Cleared:    ClearedStatusUncleared,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsReconciled reports whether the transaction is immutable.
func (t *Transaction) IsReconciled() bool {
	return t.Cleared == ClearedStatusReconciled
}

// IsTransfer reports whether the transaction is one leg of a transfer.
func (t *Transaction) IsTransfer() bool {
	return t.TransferAccountID != nil
}
