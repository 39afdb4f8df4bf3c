package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/assignment"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgets"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and budget month endpoints.
type BudgetController struct {
	listUseCase     *budgets.ListBudgetsUseCase
	createUseCase   *budgets.CreateBudgetUseCase
	getMonthUseCase *budgetmonth.GetBudgetMonthUseCase
	assignUseCase   *assignment.AssignCategoryUseCase
	moveUseCase     *assignment.MoveMoneyUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budgets.ListBudgetsUseCase,
	createUseCase *budgets.CreateBudgetUseCase,
	getMonthUseCase *budgetmonth.GetBudgetMonthUseCase,
	assignUseCase *assignment.AssignCategoryUseCase,
	moveUseCase *assignment.MoveMoneyUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getMonthUseCase: getMonthUseCase,
		assignUseCase:   assignUseCase,
		moveUseCase:     moveUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budgets.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budgets.CreateBudgetInput{
		UserID:   userID,
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// GetMonth handles GET /budgets/:budgetId/months/:month requests.
func (c *BudgetController) GetMonth(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	output, err := c.getMonthUseCase.Execute(ctx.Request.Context(), budgetmonth.GetBudgetMonthInput{
		UserID:   userID,
		BudgetID: budgetID,
		Month:    ctx.Param("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthViewResponse(output.View))
}

// Assign handles PUT /budgets/:budgetId/months/:month/categories/:categoryId requests.
func (c *BudgetController) Assign(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDParam(ctx, "categoryId")
	if !ok {
		return
	}

	var req dto.AssignCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.assignUseCase.Execute(ctx.Request.Context(), assignment.AssignCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Month:      ctx.Param("month"),
		Amount:     req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssignCategoryResponse(output))
}

// MoveMoney handles POST /budgets/:budgetId/months/:month/moves requests.
func (c *BudgetController) MoveMoney(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.MoveMoneyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	sourceID, err := uuid.Parse(req.SourceCategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid source_category_id format"})
		return
	}
	targetID, err := uuid.Parse(req.TargetCategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid target_category_id format"})
		return
	}

	output, err := c.moveUseCase.Execute(ctx.Request.Context(), assignment.MoveMoneyInput{
		UserID:           userID,
		BudgetID:         budgetID,
		SourceCategoryID: sourceID,
		TargetCategoryID: targetID,
		Month:            ctx.Param("month"),
		Amount:           req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoveMoneyResponse(output))
}
