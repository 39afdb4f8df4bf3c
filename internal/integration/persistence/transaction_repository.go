package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. The aggregate queries group on the indexed month column and
// stick to portable SQL (SUM, CASE, COALESCE) so they run on both postgres
// and sqlite.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Create(transactionModel).Error
}

// CreatePair creates both legs of a transfer in one database transaction.
func (r *transactionRepository) CreatePair(ctx context.Context, outflow, inflow *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(outflow)).Error; err != nil {
			return err
		}
		return tx.Create(model.TransactionFromEntity(inflow)).Error
	})
}

// FindByID retrieves a transaction by its ID. Absence returns (nil, nil).
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByAccount retrieves all transactions for an account, newest first.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Save(transactionModel).Error
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{}).Error
}

type monthCategorySum struct {
	Month      string
	CategoryID uuid.UUID
	Total      int64
}

// MonthlyActivityByCategory sums transaction amounts per category per month
// across all accounts, months <= through.
func (r *transactionRepository) MonthlyActivityByCategory(ctx context.Context, budgetID uuid.UUID, through string) (adapter.MonthlyCategoryAmounts, error) {
	var sums []monthCategorySum
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("month, category_id, SUM(amount) AS total").
		Where("budget_id = ? AND month <= ? AND category_id IS NOT NULL", budgetID, through).
		Group("month, category_id").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}
	return groupByMonth(sums, nil), nil
}

// MonthlyCashSpendingByCategory computes outflow minus inflow per category
// per month on non-credit accounts, clamped >= 0.
func (r *transactionRepository) MonthlyCashSpendingByCategory(ctx context.Context, budgetID uuid.UUID, through string) (adapter.MonthlyCategoryAmounts, error) {
	var sums []monthCategorySum
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.month, transactions.category_id, SUM(-transactions.amount) AS total").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.budget_id = ? AND transactions.month <= ? AND transactions.category_id IS NOT NULL AND accounts.type <> ?",
			budgetID, through, string(entity.AccountTypeCredit)).
		Group("transactions.month, transactions.category_id").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}
	clamp := func(v money.Milliunit) money.Milliunit { return money.Max(v, money.Zero) }
	return groupByMonth(sums, clamp), nil
}

func groupByMonth(sums []monthCategorySum, transform func(money.Milliunit) money.Milliunit) adapter.MonthlyCategoryAmounts {
	out := make(adapter.MonthlyCategoryAmounts)
	for _, s := range sums {
		if out[s.Month] == nil {
			out[s.Month] = make(map[uuid.UUID]money.Milliunit)
		}
		v := money.Milliunit(s.Total)
		if transform != nil {
			v = transform(v)
		}
		out[s.Month][s.CategoryID] = v
	}
	return out
}

// MonthlySpendingOnAccount returns per-category outflow/inflow on one
// credit account per month. Transfer legs are excluded: card payments are
// not spending.
func (r *transactionRepository) MonthlySpendingOnAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string][]budget.CategorySpending, error) {
	var sums []struct {
		Month      string
		CategoryID uuid.UUID
		Outflow    int64
		Inflow     int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("month, category_id, " +
			"SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END) AS outflow, " +
			"SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END) AS inflow").
		Where("account_id = ? AND month <= ? AND category_id IS NOT NULL AND transfer_account_id IS NULL", accountID, through).
		Group("month, category_id").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string][]budget.CategorySpending)
	for _, s := range sums {
		out[s.Month] = append(out[s.Month], budget.CategorySpending{
			CategoryID: s.CategoryID,
			Outflow:    money.Milliunit(s.Outflow),
			Inflow:     money.Milliunit(s.Inflow),
		})
	}
	return out, nil
}

// MonthlyPaymentsToAccount sums transfer inflows into a credit account per
// month.
func (r *transactionRepository) MonthlyPaymentsToAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string]money.Milliunit, error) {
	var sums []struct {
		Month string
		Total int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("month, SUM(amount) AS total").
		Where("account_id = ? AND month <= ? AND transfer_account_id IS NOT NULL AND amount > 0", accountID, through).
		Group("month").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]money.Milliunit)
	for _, s := range sums {
		out[s.Month] = money.Milliunit(s.Total)
	}
	return out, nil
}

// CashBalance sums all non-credit account transactions dated in or before
// the given month.
func (r *transactionRepository) CashBalance(ctx context.Context, budgetID uuid.UUID, through string) (money.Milliunit, error) {
	var sum int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.budget_id = ? AND transactions.month <= ? AND accounts.type <> ?",
			budgetID, through, string(entity.AccountTypeCredit)).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Scan(&sum)
	if result.Error != nil {
		return money.Zero, result.Error
	}
	return money.Milliunit(sum), nil
}

// CreditAccountBalances returns each credit account's balance through the
// given month. Credit accounts with no transactions yet still appear, at
// zero.
func (r *transactionRepository) CreditAccountBalances(ctx context.Context, budgetID uuid.UUID, through string) (map[uuid.UUID]money.Milliunit, error) {
	var sums []struct {
		AccountID uuid.UUID
		Total     int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("accounts.id AS account_id, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("LEFT JOIN transactions ON transactions.account_id = accounts.id AND transactions.month <= ?", through).
		Where("accounts.budget_id = ? AND accounts.type = ?", budgetID, string(entity.AccountTypeCredit)).
		Group("accounts.id").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[uuid.UUID]money.Milliunit)
	for _, s := range sums {
		out[s.AccountID] = money.Milliunit(s.Total)
	}
	return out, nil
}

// MonthlyInflow sums uncategorized non-transfer inflows per month.
func (r *transactionRepository) MonthlyInflow(ctx context.Context, budgetID uuid.UUID, through string) (map[string]money.Milliunit, error) {
	var sums []struct {
		Month string
		Total int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("month, SUM(amount) AS total").
		Where("budget_id = ? AND month <= ? AND category_id IS NULL AND transfer_account_id IS NULL AND amount > 0", budgetID, through).
		Group("month").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]money.Milliunit)
	for _, s := range sums {
		out[s.Month] = money.Milliunit(s.Total)
	}
	return out, nil
}

// ClearedBalance sums cleared and reconciled transactions on an account.
func (r *transactionRepository) ClearedBalance(ctx context.Context, accountID uuid.UUID) (money.Milliunit, error) {
	var sum int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ? AND cleared <> ?", accountID, string(entity.ClearedStatusUncleared)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)
	if result.Error != nil {
		return money.Zero, result.Error
	}
	return money.Milliunit(sum), nil
}

// ReconcileAccount flips every cleared transaction on the account to
// reconciled and inserts the adjustment, in one database transaction.
func (r *transactionRepository) ReconcileAccount(ctx context.Context, accountID uuid.UUID, adjustment *entity.Transaction) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("account_id = ? AND cleared = ?", accountID, string(entity.ClearedStatusCleared)).
			Updates(map[string]interface{}{
				"cleared":    string(entity.ClearedStatusReconciled),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		count = result.RowsAffected

		if adjustment != nil {
			adjustment.Cleared = entity.ClearedStatusReconciled
			if err := tx.Create(model.TransactionFromEntity(adjustment)).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
