// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/camilopiedra92/YNAB-Clone-sub004/config"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/account"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/assignment"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/auth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgets"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/category"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/transaction"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/infra/server/router"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/adapters"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/cache"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/controller"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/middleware"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Clock is injected so integration tests can pin the current month.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock budget.Clock) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetMonthRepo := persistence.NewBudgetMonthRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	monthCache := cache.NewBudgetMonthCache(redisClient, slog.Default())

	// Month view builder, shared by the read and write paths
	builder := budgetmonth.NewBuilder(accountRepo, categoryRepo, budgetMonthRepo, transactionRepo, clock)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, budgetRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)

	// Budget use cases
	listBudgetsUseCase := budgets.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budgets.NewCreateBudgetUseCase(budgetRepo)
	getMonthUseCase := budgetmonth.NewGetBudgetMonthUseCase(budgetRepo, builder, monthCache)
	assignUseCase := assignment.NewAssignCategoryUseCase(budgetRepo, categoryRepo, budgetMonthRepo, builder, monthCache)
	moveUseCase := assignment.NewMoveMoneyUseCase(budgetRepo, categoryRepo, budgetMonthRepo, builder, monthCache)

	// Account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(budgetRepo, accountRepo, categoryRepo, monthCache)
	listAccountsUseCase := account.NewListAccountsUseCase(budgetRepo, accountRepo, transactionRepo)
	reconcileAccountUseCase := account.NewReconcileAccountUseCase(budgetRepo, accountRepo, transactionRepo, monthCache)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(budgetRepo, categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(budgetRepo, categoryRepo)
	createGroupUseCase := category.NewCreateGroupUseCase(budgetRepo, categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(budgetRepo, categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(budgetRepo, categoryRepo, monthCache)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(budgetRepo, accountRepo, categoryRepo, transactionRepo, monthCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(budgetRepo, accountRepo, transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(budgetRepo, categoryRepo, transactionRepo, monthCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(budgetRepo, transactionRepo, monthCache)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase)
	budgetController := controller.NewBudgetController(listBudgetsUseCase, createBudgetUseCase, getMonthUseCase, assignUseCase, moveUseCase)
	accountController := controller.NewAccountController(createAccountUseCase, listAccountsUseCase, reconcileAccountUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, createGroupUseCase, updateCategoryUseCase, deleteCategoryUseCase)
	transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase, updateTransactionUseCase, deleteTransactionUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		budgetController,
		accountController,
		categoryController,
		transactionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
