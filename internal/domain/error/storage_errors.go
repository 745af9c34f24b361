// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// ErrStorage is wrapped by every persistence failure surfaced from a store.
var ErrStorage = errors.New("storage failure")

// StorageErrorCode defines error codes for persistence errors.
type StorageErrorCode string

const (
	ErrCodeStorageLoad   StorageErrorCode = "STO-010001"
	ErrCodeStorageSave   StorageErrorCode = "STO-010002"
	ErrCodeStorageDelete StorageErrorCode = "STO-010003"
)

// StorageError represents a persistence collaborator failure.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsStorageError reports whether err is a persistence failure.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
