package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CategoryGroupModel represents the category_groups table in the database.
type CategoryGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BudgetID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Budget *BudgetModel `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for the CategoryGroupModel.
func (CategoryGroupModel) TableName() string {
	return "category_groups"
}

// ToEntity converts a CategoryGroupModel to a domain CategoryGroup entity.
func (m *CategoryGroupModel) ToEntity() *entity.CategoryGroup {
	return &entity.CategoryGroup{
		ID:        m.ID,
		BudgetID:  m.BudgetID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryGroupFromEntity converts a domain CategoryGroup entity to a CategoryGroupModel.
func CategoryGroupFromEntity(group *entity.CategoryGroup) *CategoryGroupModel {
	return &CategoryGroupModel{
		ID:        group.ID,
		BudgetID:  group.BudgetID,
		Name:      group.Name,
		SortOrder: group.SortOrder,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}

// CategoryModel represents the categories table in the database.
// LinkedAccountID is set only on credit card payment categories.
type CategoryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BudgetID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name            string     `gorm:"type:varchar(100);not null"`
	LinkedAccountID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Hidden          bool       `gorm:"not null;default:false"`
	SortOrder       int        `gorm:"not null;default:0"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`

	Group         *CategoryGroupModel `gorm:"foreignKey:GroupID;references:ID"`
	LinkedAccount *AccountModel       `gorm:"foreignKey:LinkedAccountID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:              m.ID,
		BudgetID:        m.BudgetID,
		GroupID:         m.GroupID,
		Name:            m.Name,
		LinkedAccountID: m.LinkedAccountID,
		Hidden:          m.Hidden,
		SortOrder:       m.SortOrder,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CategoryFromEntity converts a domain Category entity to a CategoryModel.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:              category.ID,
		BudgetID:        category.BudgetID,
		GroupID:         category.GroupID,
		Name:            category.Name,
		LinkedAccountID: category.LinkedAccountID,
		Hidden:          category.Hidden,
		SortOrder:       category.SortOrder,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}
