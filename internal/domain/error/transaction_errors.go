// Package error defines domain-specific errors for the budgeting application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrTransactionReconciled is returned when modifying a reconciled transaction.
	ErrTransactionReconciled = errors.New("reconciled transactions are immutable")

	// ErrInvalidClearedTransition is returned for a disallowed cleared-status change.
	ErrInvalidClearedTransition = errors.New("invalid cleared status transition")

	// ErrPayeeTooLong is returned when the payee exceeds the maximum length.
	ErrPayeeTooLong = errors.New("payee too long")

	// ErrMemoTooLong is returned when the memo exceeds the maximum length.
	ErrMemoTooLong = errors.New("memo too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodePayeeTooLong             TransactionErrorCode = "TXN-010002"
	ErrCodeMemoTooLong              TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidClearedTransition TransactionErrorCode = "TXN-010004"

	// Lookup/state errors (02XXXX)
	ErrCodeTransactionNotFound   TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionReconciled TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
