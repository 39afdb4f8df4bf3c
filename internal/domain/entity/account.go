// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
)

// IsCredit reports whether the account is a credit card. Credit accounts
// get an auto-linked payment category and their spending is tracked as
// funded-vs-unfunded card debt.
func (t AccountType) IsCredit() bool {
	return t == AccountTypeCredit
}

// IsValidAccountType reports whether t is a known account type.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeCredit:
		return true
	}
	return false
}

// Account represents a financial account within a budget.
type Account struct {
	ID        uuid.UUID
	BudgetID  uuid.UUID
	Name      string
	Type      AccountType
	Note      string
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(budgetID uuid.UUID, name string, accountType AccountType, note string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		BudgetID:  budgetID,
		Name:      name,
		Type:      accountType,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsClosed reports whether the account has been closed.
func (a *Account) IsClosed() bool {
	return a.ClosedAt != nil
}
