package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence/model"
)

// budgetMonthRepository implements the adapter.BudgetMonthRepository interface.
type budgetMonthRepository struct {
	db *gorm.DB
}

// NewBudgetMonthRepository creates a new budget month repository instance.
func NewBudgetMonthRepository(db *gorm.DB) adapter.BudgetMonthRepository {
	return &budgetMonthRepository{
		db: db,
	}
}

// FindByCategoryAndMonth retrieves the row for one (category, month) pair.
// Absence is normal and returns (nil, nil).
func (r *budgetMonthRepository) FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month string) (*entity.BudgetMonth, error) {
	var rowModel model.BudgetMonthModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND month = ?", categoryID, month).
		First(&rowModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rowModel.ToEntity(), nil
}

// FindByBudgetThrough retrieves all rows for a budget with month <= through,
// ordered by month.
func (r *budgetMonthRepository) FindByBudgetThrough(ctx context.Context, budgetID uuid.UUID, through string) ([]*entity.BudgetMonth, error) {
	var rowModels []model.BudgetMonthModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ? AND month <= ?", budgetID, through).
		Order("month ASC").
		Find(&rowModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]*entity.BudgetMonth, len(rowModels))
	for i, rm := range rowModels {
		rows[i] = rm.ToEntity()
	}
	return rows, nil
}

// SumAssignedAfter sums assigned amounts over months strictly after the
// given month.
func (r *budgetMonthRepository) SumAssignedAfter(ctx context.Context, budgetID uuid.UUID, after string) (money.Milliunit, error) {
	var sum int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetMonthModel{}).
		Where("budget_id = ? AND month > ?", budgetID, after).
		Select("COALESCE(SUM(assigned), 0)").
		Scan(&sum)
	if result.Error != nil {
		return money.Zero, result.Error
	}
	return money.Milliunit(sum), nil
}

// ApplyChange applies a single assignment change per its disposition.
func (r *budgetMonthRepository) ApplyChange(ctx context.Context, change adapter.AssignmentChange) error {
	return applyChange(r.db.WithContext(ctx), change)
}

// ApplyMoveMoney applies the source and target changes of a money move in
// one database transaction: no intermediate state is ever durably
// persisted.
func (r *budgetMonthRepository) ApplyMoveMoney(ctx context.Context, source, target adapter.AssignmentChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyChange(tx, source); err != nil {
			return err
		}
		return applyChange(tx, target)
	})
}

func applyChange(tx *gorm.DB, change adapter.AssignmentChange) error {
	switch change.Disposition {
	case budget.DispositionSkip:
		return nil

	case budget.DispositionCreate:
		row := entity.NewBudgetMonth(change.BudgetID, change.CategoryID, change.Month, change.NewAssigned)
		return tx.Create(model.BudgetMonthFromEntity(row)).Error

	case budget.DispositionUpdate:
		result := tx.Model(&model.BudgetMonthModel{}).
			Where("category_id = ? AND month = ?", change.CategoryID, change.Month).
			Updates(map[string]interface{}{
				"assigned":   int64(change.NewAssigned),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("budget month row not found for category %s month %s", change.CategoryID, change.Month)
		}
		return nil

	case budget.DispositionDelete:
		return tx.
			Where("category_id = ? AND month = ?", change.CategoryID, change.Month).
			Delete(&model.BudgetMonthModel{}).Error
	}
	return fmt.Errorf("unknown disposition %q", change.Disposition)
}
