package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/dto"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/middleware"
)

// respondError maps a usecase error to an HTTP response. Budget, category,
// account and transaction errors can all surface from the same endpoint
// (an account operation validates the budget first), so the mapping lives
// in one place instead of per controller.
func respondError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(statusForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		ctx.JSON(statusForAccountError(accountErr.Code), dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(statusForCategoryError(categoryErr.Code), dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeBudgetMonthNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedBudget:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidAssignedAmount,
		domainerror.ErrCodeInvalidBudgetName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeInvalidAccountName,
		domainerror.ErrCodeAccountClosed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound, domainerror.ErrCodeCategoryGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeCCPaymentCategoryDeleted, domainerror.ErrCodeInvalidCategoryName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransactionReconciled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodePayeeTooLong,
		domainerror.ErrCodeMemoTooLong,
		domainerror.ErrCodeInvalidClearedTransition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID extracts the authenticated user ID, writing a 401 response
// when it is absent.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// parseUUIDParam parses a UUID path parameter, writing a 400 response on
// malformed input.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}
