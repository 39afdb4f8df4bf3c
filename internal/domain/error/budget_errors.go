// Package error defines domain-specific errors for the budgeting application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedForBudget is returned when a user does not own the budget.
	ErrNotAuthorizedForBudget = errors.New("not authorized for budget")

	// ErrInvalidMonth is returned when a month string is not "YYYY-MM".
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrInvalidAssignedAmount is returned when an assigned amount cannot be
	// interpreted as money.
	ErrInvalidAssignedAmount = errors.New("invalid assigned amount")

	// ErrBudgetMonthNotFound is returned when a budget month row is not found.
	ErrBudgetMonthNotFound = errors.New("budget month not found")

	// ErrInvalidBudgetName is returned when a budget name is empty or too long.
	ErrInvalidBudgetName = errors.New("invalid budget name")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth          BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidAssignedAmount BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetName     BudgetErrorCode = "BGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-020001"
	ErrCodeNotAuthorizedBudget   BudgetErrorCode = "BGT-020002"
	ErrCodeBudgetMonthNotFound   BudgetErrorCode = "BGT-020003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
