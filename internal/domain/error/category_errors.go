// Package error defines domain-specific errors for the budgeting application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryGroupNotFound is returned when a category group is not found.
	ErrCategoryGroupNotFound = errors.New("category group not found")

	// ErrCategoryNameTaken is returned when a category name already exists in its group.
	ErrCategoryNameTaken = errors.New("category name already in use")

	// ErrCannotDeleteCCPaymentCategory is returned when deleting a payment
	// category directly; it is removed with its linked credit account.
	ErrCannotDeleteCCPaymentCategory = errors.New("credit card payment category cannot be deleted directly")

	// ErrInvalidCategoryName is returned when a category or group name is
	// empty or too long.
	ErrInvalidCategoryName = errors.New("invalid category name")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTaken        CategoryErrorCode = "CAT-010001"
	ErrCodeCCPaymentCategoryDeleted CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryName      CategoryErrorCode = "CAT-010003"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryGroupNotFound CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
