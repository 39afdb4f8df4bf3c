package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/account"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase    *account.CreateAccountUseCase
	listUseCase      *account.ListAccountsUseCase
	reconcileUseCase *account.ReconcileAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	reconcileUseCase *account.ReconcileAccountUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		reconcileUseCase: reconcileUseCase,
	}
}

// Create handles POST /budgets/:budgetId/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		UserID:          userID,
		BudgetID:        budgetID,
		Name:            req.Name,
		Type:            entity.AccountType(req.Type),
		Note:            req.Note,
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateAccountResponse(output))
}

// List handles GET /budgets/:budgetId/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Reconcile handles POST /budgets/:budgetId/accounts/:accountId/reconcile requests.
func (c *AccountController) Reconcile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	accountID, ok := parseUUIDParam(ctx, "accountId")
	if !ok {
		return
	}

	var req dto.ReconcileAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), account.ReconcileAccountInput{
		UserID:        userID,
		BudgetID:      budgetID,
		AccountID:     accountID,
		StatedBalance: req.StatedBalance,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconcileAccountResponse(output))
}
