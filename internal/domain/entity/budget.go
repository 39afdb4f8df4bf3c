// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget is the tenant root: every account, category and transaction
// belongs to exactly one budget.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, name, currency string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
