// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/controller"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	budgetController      *controller.BudgetController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	budgetController *controller.BudgetController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		budgetController:      budgetController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)

				budgets.GET("/:budgetId/months/:month", r.budgetController.GetMonth)
				budgets.PUT("/:budgetId/months/:month/categories/:categoryId", r.budgetController.Assign)
				budgets.POST("/:budgetId/months/:month/moves", r.budgetController.MoveMoney)

				if r.accountController != nil {
					budgets.GET("/:budgetId/accounts", r.accountController.List)
					budgets.POST("/:budgetId/accounts", r.accountController.Create)
					budgets.POST("/:budgetId/accounts/:accountId/reconcile", r.accountController.Reconcile)
				}

				if r.categoryController != nil {
					budgets.GET("/:budgetId/categories", r.categoryController.List)
					budgets.POST("/:budgetId/categories", r.categoryController.Create)
					budgets.POST("/:budgetId/category-groups", r.categoryController.CreateGroup)
					budgets.PATCH("/:budgetId/categories/:categoryId", r.categoryController.Update)
					budgets.DELETE("/:budgetId/categories/:categoryId", r.categoryController.Delete)
				}

				if r.transactionController != nil {
					budgets.POST("/:budgetId/transactions", r.transactionController.Create)
					budgets.GET("/:budgetId/accounts/:accountId/transactions", r.transactionController.List)
					budgets.PATCH("/:budgetId/transactions/:transactionId", r.transactionController.Update)
					budgets.DELETE("/:budgetId/transactions/:transactionId", r.transactionController.Delete)
				}
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
