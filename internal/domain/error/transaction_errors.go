// Package error defines domain-specific errors for the Expense Tracker application.
package error

import (
	"errors"
	"fmt"
)

// ErrInvalidTransaction is the root of every transaction validation failure.
// Use errors.Is(err, ErrInvalidTransaction) to detect a validation error.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when update or delete targets an unknown id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransactionID is returned when add receives an id already in the ledger.
	ErrDuplicateTransactionID = errors.New("duplicate transaction id")

	// ErrMissingTransactionField is returned when a required field is empty.
	ErrMissingTransactionField = fmt.Errorf("%w: missing required field", ErrInvalidTransaction)

	// ErrInvalidTransactionType is returned when the type is neither income nor expense.
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrInvalidTransaction)

	// ErrNegativeAmount is returned when the amount is below zero.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", ErrInvalidTransaction)

	// ErrAmountOutOfRange is returned when an amount or price has more than two
	// decimal places or exceeds the largest storable amount.
	ErrAmountOutOfRange = fmt.Errorf("%w: amount out of range", ErrInvalidTransaction)

	// ErrFoodAmountMismatch is returned when a food-itemized amount differs from the items total.
	ErrFoodAmountMismatch = fmt.Errorf("%w: amount does not match food items total", ErrInvalidTransaction)

	// ErrInvalidFoodItem is returned when a food item has no name, a negative price or a quantity below one.
	ErrInvalidFoodItem = fmt.Errorf("%w: invalid food item", ErrInvalidTransaction)

	// ErrFoodItemsNotAllowed is returned when food items are attached to a non-food category.
	ErrFoodItemsNotAllowed = fmt.Errorf("%w: food items are only allowed for the food category", ErrInvalidTransaction)

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = fmt.Errorf("%w: description too long", ErrInvalidTransaction)

	// ErrUnknownCategory is returned when the category is not in the catalog for the type.
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrInvalidTransaction)

	// ErrUnknownPaymentMethod is returned when the payment method is not a known method.
	ErrUnknownPaymentMethod = fmt.Errorf("%w: unknown payment method", ErrInvalidTransaction)

	// ErrCounterpartyNotAllowed is returned when an admin transacts against a name outside its set.
	ErrCounterpartyNotAllowed = fmt.Errorf("%w: counterparty not allowed", ErrInvalidTransaction)
)

// TransactionErrorCode defines error codes for ledger and transaction errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTransactionFields TransactionErrorCode = "LDG-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "LDG-010002"
	ErrCodeNegativeAmount           TransactionErrorCode = "LDG-010003"
	ErrCodeFoodAmountMismatch       TransactionErrorCode = "LDG-010004"
	ErrCodeInvalidFoodItem          TransactionErrorCode = "LDG-010005"
	ErrCodeFoodItemsNotAllowed      TransactionErrorCode = "LDG-010006"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "LDG-010007"
	ErrCodeUnknownCategory          TransactionErrorCode = "LDG-010008"
	ErrCodeUnknownPaymentMethod     TransactionErrorCode = "LDG-010009"
	ErrCodeCounterpartyNotAllowed   TransactionErrorCode = "LDG-010010"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "LDG-010011"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "LDG-010012"

	// Ledger state errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "LDG-020001"
	ErrCodeDuplicateID         TransactionErrorCode = "LDG-020002"
)

// TransactionError represents a ledger error with code and message.
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

// IsValidationError reports whether err is a transaction validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTransaction)
}
