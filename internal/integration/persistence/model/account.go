package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BudgetID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Type      string     `gorm:"type:varchar(10);not null"`
	Note      string     `gorm:"type:text"`
	ClosedAt  *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Budget *BudgetModel `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		BudgetID:  m.BudgetID,
		Name:      m.Name,
		Type:      entity.AccountType(m.Type),
		Note:      m.Note,
		ClosedAt:  m.ClosedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// AccountFromEntity converts a domain Account entity to an AccountModel.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		BudgetID:  account.BudgetID,
		Name:      account.Name,
		Type:      string(account.Type),
		Note:      account.Note,
		ClosedAt:  account.ClosedAt,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
