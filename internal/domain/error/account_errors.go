// Package error defines domain-specific errors for the budgeting application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrAccountClosed is returned when an operation targets a closed account.
	ErrAccountClosed = errors.New("account is closed")

	// ErrAccountNameTaken is returned when an account name already exists in the budget.
	ErrAccountNameTaken = errors.New("account name already in use")

	// ErrInvalidAccountName is returned when the account name is empty or too long.
	ErrInvalidAccountName = errors.New("invalid account name")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTaken   AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountName AccountErrorCode = "ACC-010003"

	// Lookup/state errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"
	ErrCodeAccountClosed   AccountErrorCode = "ACC-020002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
