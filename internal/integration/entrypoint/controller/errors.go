package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// handleError maps a domain error to an HTTP response. Anything that is not a
// coded domain error is logged and reported as a 500.
func handleError(ctx *gin.Context, err error) {
	var (
		txnErr     *domainerror.TransactionError
		catErr     *domainerror.CategoryError
		authErr    *domainerror.AuthError
		exportErr  *domainerror.ExportError
		storageErr *domainerror.StorageError
	)

	switch {
	case errors.As(err, &txnErr):
		ctx.JSON(getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
	case errors.As(err, &catErr):
		ctx.JSON(getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
	case errors.As(err, &authErr):
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.As(err, &exportErr):
		status := getStatusCodeForExportError(exportErr.Code)
		if status >= http.StatusInternalServerError {
			logServerError(ctx, err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: exportErr.Message,
			Code:  string(exportErr.Code),
		})
	case errors.As(err, &storageErr):
		logServerError(ctx, err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "The ledger could not be read or written. Please try again.",
			Code:  string(storageErr.Code),
		})
	default:
		logServerError(ctx, err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func logServerError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateID:
		return http.StatusConflict
	case domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeFoodAmountMismatch,
		domainerror.ErrCodeInvalidFoodItem,
		domainerror.ErrCodeFoodItemsNotAllowed,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeUnknownCategory,
		domainerror.ErrCodeUnknownPaymentMethod,
		domainerror.ErrCodeCounterpartyNotAllowed,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidCategoryKind:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUsernameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidUsername,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountBlocked,
		domainerror.ErrCodeAdminRequired,
		domainerror.ErrCodeAdminAccountLocked:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForExportError maps export error codes to HTTP status codes.
func getStatusCodeForExportError(code domainerror.ExportErrorCode) int {
	if code == domainerror.ErrCodeUnsupportedExportFormat {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
