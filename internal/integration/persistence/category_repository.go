package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	return r.db.WithContext(ctx).Create(categoryModel).Error
}

// FindByID retrieves a category by its ID. Absence returns (nil, nil).
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByBudget retrieves all categories for a budget.
func (r *categoryRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("sort_order ASC, created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByLinkedAccount retrieves the payment category linked to a credit
// account. Absence returns (nil, nil).
func (r *categoryRepository) FindByLinkedAccount(ctx context.Context, accountID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("linked_account_id = ?", accountID).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// ExistsByNameInGroup checks for a duplicate category name within a group.
func (r *categoryRepository) ExistsByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("group_id = ? AND name = ?", groupID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	return r.db.WithContext(ctx).Save(categoryModel).Error
}

// Delete removes a category and its budget month rows from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.BudgetMonthModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CategoryModel{}).Error
	})
}

// CreateGroup creates a new category group in the database.
func (r *categoryRepository) CreateGroup(ctx context.Context, group *entity.CategoryGroup) error {
	groupModel := model.CategoryGroupFromEntity(group)
	return r.db.WithContext(ctx).Create(groupModel).Error
}

// FindGroupByID retrieves a category group by its ID. Absence returns (nil, nil).
func (r *categoryRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error) {
	var groupModel model.CategoryGroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindGroupsByBudget retrieves all category groups for a budget.
func (r *categoryRepository) FindGroupsByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error) {
	var groupModels []model.CategoryGroupModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("sort_order ASC, created_at ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.CategoryGroup, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

// FindOrCreateGroupByName finds a group by name, creating it when absent.
func (r *categoryRepository) FindOrCreateGroupByName(ctx context.Context, budgetID uuid.UUID, name string) (*entity.CategoryGroup, error) {
	var groupModel model.CategoryGroupModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ? AND name = ?", budgetID, name).
		First(&groupModel)
	if result.Error == nil {
		return groupModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	group := entity.NewCategoryGroup(budgetID, name, 0)
	if err := r.db.WithContext(ctx).Create(model.CategoryGroupFromEntity(group)).Error; err != nil {
		return nil, err
	}
	return group, nil
}
