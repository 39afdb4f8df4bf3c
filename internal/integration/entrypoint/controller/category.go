package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/category"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/dto"
)

// CategoryController handles category and category group endpoints.
type CategoryController struct {
	listUseCase        *category.ListCategoriesUseCase
	createUseCase      *category.CreateCategoryUseCase
	createGroupUseCase *category.CreateGroupUseCase
	updateUseCase      *category.UpdateCategoryUseCase
	deleteUseCase      *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	createGroupUseCase *category.CreateGroupUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		createGroupUseCase: createGroupUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// List handles GET /budgets/:budgetId/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		UserID:        userID,
		BudgetID:      budgetID,
		IncludeHidden: ctx.Query("include_hidden") == "true",
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Groups))
}

// Create handles POST /budgets/:budgetId/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group_id format"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:    userID,
		BudgetID:  budgetID,
		GroupID:   groupID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// CreateGroup handles POST /budgets/:budgetId/category-groups requests.
func (c *CategoryController) CreateGroup(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := parseUUIDParam(ctx, "budgetId")
	if !ok {
		return
	}

	var req dto.CreateCategoryGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createGroupUseCase.Execute(ctx.Request.Context(), category.CreateGroupInput{
		UserID:    userID,
		BudgetID:  budgetID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryGroupResponse(output.Group))
}

// Update handles PATCH /budgets/:budgetId/categories/:categoryId requests.
func (c *CategoryController) Update(ctx *gin.Context) {
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

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
		Name:       req.Name,
		Hidden:     req.Hidden,
		SortOrder:  req.SortOrder,
	}
	if req.GroupID != nil {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group_id format"})
			return
		}
		input.GroupID = &groupID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /budgets/:budgetId/categories/:categoryId requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
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

	err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
