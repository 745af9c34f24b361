// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Export domain errors.
var (
	// ErrUnsupportedExportFormat is returned when the requested report format is unknown.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrRenderFailed is returned when a renderer cannot produce the document.
	ErrRenderFailed = errors.New("failed to render report")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	ErrCodeUnsupportedExportFormat ExportErrorCode = "EXP-010001"
	ErrCodeRenderFailed            ExportErrorCode = "EXP-990001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
