package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// BudgetMonthModel represents the budget_months table in the database.
// Amounts are stored as milliunit integers; activity and available are
// always derived, never stored.
type BudgetMonthModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BudgetID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_months_category_month"`
	Month      string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_months_category_month;index"`
	Assigned   int64     `gorm:"type:bigint;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetMonthModel.
func (BudgetMonthModel) TableName() string {
	return "budget_months"
}

// ToEntity converts a BudgetMonthModel to a domain BudgetMonth entity.
func (m *BudgetMonthModel) ToEntity() *entity.BudgetMonth {
	return &entity.BudgetMonth{
		ID:         m.ID,
		BudgetID:   m.BudgetID,
		CategoryID: m.CategoryID,
		Month:      m.Month,
		Assigned:   money.Milliunit(m.Assigned),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetMonthFromEntity converts a domain BudgetMonth entity to a BudgetMonthModel.
func BudgetMonthFromEntity(row *entity.BudgetMonth) *BudgetMonthModel {
	return &BudgetMonthModel{
		ID:         row.ID,
		BudgetID:   row.BudgetID,
		CategoryID: row.CategoryID,
		Month:      row.Month,
		Assigned:   int64(row.Assigned),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
