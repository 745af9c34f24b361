package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "transaction not found",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeTransactionNotFound, "transaction not found", domainerror.ErrTransactionNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "LDG-020001",
		},
		{
			name:       "duplicate id",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeDuplicateID, "duplicate", domainerror.ErrDuplicateTransactionID),
			wantStatus: http.StatusConflict,
			wantCode:   "LDG-020002",
		},
		{
			name:       "wrapped food mismatch",
			err:        fmt.Errorf("create: %w", domainerror.NewTransactionError(domainerror.ErrCodeFoodAmountMismatch, "mismatch", domainerror.ErrFoodAmountMismatch)),
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-010004",
		},
		{
			name:       "category not found",
			err:        domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "missing", domainerror.ErrCategoryNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "CAT-010004",
		},
		{
			name:       "blocked account",
			err:        domainerror.NewAuthError(domainerror.ErrCodeAccountBlocked, "blocked", domainerror.ErrAccountBlocked),
			wantStatus: http.StatusForbidden,
			wantCode:   "AUTH-020004",
		},
		{
			name:       "storage failure",
			err:        domainerror.NewStorageError(domainerror.ErrCodeStorageSave, "save failed", errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STO-010002",
		},
		{
			name:       "render failure",
			err:        domainerror.NewExportError(domainerror.ErrCodeRenderFailed, "render failed", errors.New("boom")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "EXP-990001",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}

func TestHealthController(t *testing.T) {
	for _, tt := range []struct {
		healthy bool
		want    int
	}{
		{healthy: true, want: http.StatusOK},
		{healthy: false, want: http.StatusServiceUnavailable},
	} {
		h := NewHealthController("memory", func(_ context.Context) bool { return tt.healthy })
		r := gin.New()
		r.GET("/health", h.Check)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != tt.want {
			t.Errorf("healthy=%v: status = %d, want %d", tt.healthy, w.Code, tt.want)
		}
	}
}
