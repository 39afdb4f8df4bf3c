// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CategoryRepository defines the interface for category and category group
// persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByBudget retrieves all categories for a budget.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Category, error)

	// FindByLinkedAccount retrieves the payment category linked to a credit
	// account.
	FindByLinkedAccount(ctx context.Context, accountID uuid.UUID) (*entity.Category, error)

	// ExistsByNameInGroup checks for a duplicate category name within a group.
	ExistsByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateGroup creates a new category group in the database.
	CreateGroup(ctx context.Context, group *entity.CategoryGroup) error

	// FindGroupByID retrieves a category group by its ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error)

	// FindGroupsByBudget retrieves all category groups for a budget.
	FindGroupsByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error)

	// FindOrCreateGroupByName finds a group by name, creating it when absent.
	// Used for the reserved credit card payments group.
	FindOrCreateGroupByName(ctx context.Context, budgetID uuid.UUID, name string) (*entity.CategoryGroup, error)
}
