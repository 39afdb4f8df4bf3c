// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// CreateWithSetup creates an account together with its auto-created
	// credit card payment category and starting balance transaction, in one
	// database transaction. paymentCategory and startingBalance may be nil.
	CreateWithSetup(ctx context.Context, account *entity.Account, paymentCategory *entity.Category, startingBalance *entity.Transaction) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByBudget retrieves all accounts for a budget.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error
}
