package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// TransactionModel represents the transactions table in the database.
// Amount is a milliunit integer, signed: outflows negative, inflows
// positive. Month is derived from Date at write time so aggregates can
// group on an indexed string column.
type TransactionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BudgetID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	AccountID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID        *uuid.UUID `gorm:"type:uuid;index"`
	TransferAccountID *uuid.UUID `gorm:"type:uuid"`
	Date              time.Time  `gorm:"type:date;not null;index"`
	Month             string     `gorm:"type:varchar(7);not null;index"`
	Amount            int64      `gorm:"type:bigint;not null"`
	Payee             string     `gorm:"type:varchar(200)"`
	Memo              string     `gorm:"type:varchar(500)"`
	Cleared           string     `gorm:"type:varchar(10);not null;default:'uncleared'"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`

	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		BudgetID:          m.BudgetID,
		AccountID:         m.AccountID,
		CategoryID:        m.CategoryID,
		TransferAccountID: m.TransferAccountID,
		Date:              m.Date,
		Month:             m.Month,
		Amount:            money.Milliunit(m.Amount),
		Payee:             m.Payee,
		Memo:              m.Memo,
		Cleared:           entity.ClearedStatus(m.Cleared),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(txn *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                txn.ID,
		BudgetID:          txn.BudgetID,
		AccountID:         txn.AccountID,
		CategoryID:        txn.CategoryID,
		TransferAccountID: txn.TransferAccountID,
		Date:              txn.Date,
		Month:             txn.Month,
		Amount:            int64(txn.Amount),
		Payee:             txn.Payee,
		Memo:              txn.Memo,
		Cleared:           string(txn.Cleared),
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
}
