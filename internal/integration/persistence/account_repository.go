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

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	return r.db.WithContext(ctx).Create(accountModel).Error
}

// CreateWithSetup creates an account with its payment category and starting
// balance transaction in a single database transaction, so a credit account
// never exists without its linked category.
func (r *accountRepository) CreateWithSetup(ctx context.Context, account *entity.Account, paymentCategory *entity.Category, startingBalance *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.AccountFromEntity(account)).Error; err != nil {
			return err
		}
		if paymentCategory != nil {
			if err := tx.Create(model.CategoryFromEntity(paymentCategory)).Error; err != nil {
				return err
			}
		}
		if startingBalance != nil {
			if err := tx.Create(model.TransactionFromEntity(startingBalance)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves an account by its ID. Absence returns (nil, nil).
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByBudget retrieves all accounts for a budget.
func (r *accountRepository) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	return r.db.WithContext(ctx).Save(accountModel).Error
}
