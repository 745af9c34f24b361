package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/backend"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/events"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Environment: "test"},
		Storage:  config.StorageConfig{Backend: "memory"},
		JWT:      config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: time.Hour},
		Admin:    config.AdminConfig{Username: "hanamel", Password: "admin-pass"},
		Export:   config.ExportConfig{DefaultFormat: "md"},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost, AuthRateLimit: 1000, AuthRateWindow: time.Minute},
	}

	result, err := backend.NewFactory(nil).CreateBackend(context.Background(), backend.Config{Type: backend.MemoryBackend})
	if err != nil {
		t.Fatalf("CreateBackend() error = %v", err)
	}

	injector, err := NewInjector(cfg, result.Backend, events.NoopPublisher{})
	if err != nil {
		t.Fatalf("NewInjector() error = %v", err)
	}
	return &apiClient{t: t, engine: injector.Engine()}
}

func (c *apiClient) do(method, path, token string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func (c *apiClient) login(username, password string) string {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": username, "password": password})
	if w.Code != http.StatusOK {
		c.t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	return decode[dto.AuthResponse](c.t, w).AccessToken
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestAPI_LedgerFlow(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "ama", "password": "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}
	token := decode[dto.AuthResponse](t, w).AccessToken

	w = api.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "income", "amount": "100", "person": "NITA", "category": "GIFT", "date": "2024-03-15",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create income: status %d body %s", w.Code, w.Body.String())
	}
	gift := decode[dto.TransactionMutationResponse](t, w)
	assertDecimal(t, "balance", gift.Ledger.Balance, "100")
	if gift.Transaction.PaymentMethod != "CASH" {
		t.Errorf("payment method = %q, want CASH", gift.Transaction.PaymentMethod)
	}

	w = api.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "expense", "amount": "40", "person": "FRIEND", "category": "TRANSPORT",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create expense: status %d body %s", w.Code, w.Body.String())
	}
	assertDecimal(t, "balance", decode[dto.TransactionMutationResponse](t, w).Ledger.Balance, "60")

	w = api.do(http.MethodPut, "/api/v1/transactions/"+gift.Transaction.ID, token, map[string]any{
		"type": "expense", "amount": "100", "person": "FRIEND", "category": "BILLS",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}
	updated := decode[dto.TransactionMutationResponse](t, w)
	assertDecimal(t, "balance", updated.Ledger.Balance, "-140")
	assertDecimal(t, "total income", updated.Ledger.TotalIncome, "0")
	assertDecimal(t, "total expenses", updated.Ledger.TotalExpenses, "140")

	w = api.do(http.MethodGet, "/api/v1/ledger", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ledger: status %d", w.Code)
	}
	ledger := decode[dto.LedgerResponse](t, w)
	if len(ledger.Transactions) != 2 || ledger.Transactions[1].ID != gift.Transaction.ID {
		t.Errorf("ledger order = %+v", ledger.Transactions)
	}

	w = api.do(http.MethodGet, "/api/v1/transactions?search=bills", token, nil)
	list := decode[dto.TransactionListResponse](t, w)
	if len(list.Transactions) != 1 {
		t.Errorf("search returned %d transactions, want 1", len(list.Transactions))
	}

	w = api.do(http.MethodDelete, "/api/v1/transactions/"+gift.Transaction.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d body %s", w.Code, w.Body.String())
	}
	assertDecimal(t, "balance after delete", decode[dto.LedgerSummary](t, w).Balance, "-40")

	w = api.do(http.MethodGet, "/api/v1/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d", w.Code)
	}
	assertDecimal(t, "dashboard expenses", decode[dto.DashboardResponse](t, w).TotalExpenses, "40")
}

func TestAPI_Errors(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "kofi", "password": "secret1"})
	token := decode[dto.AuthResponse](t, w).AccessToken

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name: "no token", method: http.MethodGet, path: "/api/v1/ledger",
			wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030003",
		},
		{
			name: "unknown transaction", method: http.MethodDelete, path: "/api/v1/transactions/5f0c1a9e-8d7b-4c1e-9a53-1b2c3d4e5f60", token: token,
			wantStatus: http.StatusNotFound, wantCode: "LDG-020001",
		},
		{
			name: "malformed id", method: http.MethodDelete, path: "/api/v1/transactions/nope", token: token,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "bad date", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body:       map[string]any{"type": "expense", "amount": "1", "person": "FRIEND", "category": "BILLS", "date": "15/03/2024"},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010011",
		},
		{
			name: "negative amount", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body:       map[string]any{"type": "expense", "amount": "-1", "person": "FRIEND", "category": "BILLS"},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010003",
		},
		{
			name: "amount with three decimals", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body:       map[string]any{"type": "expense", "amount": "10.125", "person": "FRIEND", "category": "BILLS"},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010012",
		},
		{
			name: "amount too large to store", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body:       map[string]any{"type": "income", "amount": "123456789012345678.25", "person": "NITA", "category": "GIFT"},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010012",
		},
		{
			name: "food price with three decimals", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body: map[string]any{"type": "expense", "person": "FRIEND", "category": "FOOD STUFFS",
				"food_items": []map[string]any{{"name": "salt", "price": "0.125", "quantity": 1}}},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010012",
		},
		{
			name: "unknown category", method: http.MethodPost, path: "/api/v1/transactions", token: token,
			body:       map[string]any{"type": "income", "amount": "1", "person": "NITA", "category": "LOTTERY"},
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010008",
		},
		{
			name: "invalid type filter", method: http.MethodGet, path: "/api/v1/transactions?type=transfer", token: token,
			wantStatus: http.StatusBadRequest, wantCode: "LDG-010002",
		},
		{
			name: "food report needs admin", method: http.MethodGet, path: "/api/v1/exports/food", token: token,
			wantStatus: http.StatusForbidden, wantCode: "AUTH-040001",
		},
		{
			name: "admin routes need admin", method: http.MethodGet, path: "/api/v1/admin/users", token: token,
			wantStatus: http.StatusForbidden, wantCode: "AUTH-040001",
		},
		{
			name: "unsupported export format", method: http.MethodGet, path: "/api/v1/exports/transactions?format=docx", token: token,
			wantStatus: http.StatusBadRequest, wantCode: "EXP-010001",
		},
		{
			name: "duplicate username", method: http.MethodPost, path: "/api/v1/auth/register",
			body:       map[string]string{"username": "kofi", "password": "secret1"},
			wantStatus: http.StatusConflict, wantCode: "AUTH-010001",
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/api/v1/auth/login",
			body:       map[string]string{"username": "kofi", "password": "wrong-one"},
			wantStatus: http.StatusUnauthorized, wantCode: "AUTH-020001",
		},
		{
			name: "invalid category kind", method: http.MethodPost, path: "/api/v1/categories", token: token,
			body:       map[string]string{"kind": "planet", "name": "mars"},
			wantStatus: http.StatusBadRequest, wantCode: "CAT-010003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decode[dto.ErrorResponse](t, w).Code; got != tt.wantCode {
					t.Errorf("code = %q, want %q", got, tt.wantCode)
				}
			}
		})
	}
}

func TestAPI_CategoriesAndExports(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "efua", "password": "secret1"})
	token := decode[dto.AuthResponse](t, w).AccessToken

	w = api.do(http.MethodPost, "/api/v1/categories", token, map[string]string{"kind": "income", "name": " salary "})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: status %d body %s", w.Code, w.Body.String())
	}
	created := decode[dto.CreateCategoryResponse](t, w)
	if created.Name != "SALARY" || !created.Added {
		t.Errorf("created = %+v", created)
	}

	w = api.do(http.MethodPost, "/api/v1/categories", token, map[string]string{"kind": "income", "name": "salary"})
	if w.Code != http.StatusOK || decode[dto.CreateCategoryResponse](t, w).Added {
		t.Errorf("repeat add: status %d", w.Code)
	}

	w = api.do(http.MethodPost, "/api/v1/transactions", token, map[string]any{
		"type": "income", "amount": "250.5", "person": "ERICA", "category": "SALARY", "date": "2024-03-20",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create with custom category: status %d body %s", w.Code, w.Body.String())
	}

	w = api.do(http.MethodGet, "/api/v1/exports/transactions?format=md", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: status %d body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment;") || !strings.Contains(got, ".md") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !strings.Contains(w.Body.String(), "GHS 250.50") {
		t.Errorf("export body missing amount:\n%s", w.Body.String())
	}

	w = api.do(http.MethodDelete, "/api/v1/categories/income/salary", token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete category: status %d", w.Code)
	}
	w = api.do(http.MethodDelete, "/api/v1/categories/income/salary", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing category: status %d", w.Code)
	}
}

func TestAPI_AdminManagesUsers(t *testing.T) {
	api := newAPIClient(t)
	adminToken := api.login("hanamel", "admin-pass")

	w := api.do(http.MethodPost, "/api/v1/admin/users", adminToken, map[string]string{"username": "yaw", "password": "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create user: status %d body %s", w.Code, w.Body.String())
	}
	yaw := decode[dto.UserResponse](t, w)

	w = api.do(http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	if users := decode[dto.UserListResponse](t, w).Users; len(users) != 1 || users[0].Username != "yaw" {
		t.Errorf("users = %+v", users)
	}

	w = api.do(http.MethodPatch, "/api/v1/admin/users/"+yaw.ID, adminToken, map[string]bool{"is_blocked": true})
	if w.Code != http.StatusOK || !decode[dto.UserResponse](t, w).IsBlocked {
		t.Fatalf("block user: status %d body %s", w.Code, w.Body.String())
	}

	w = api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "yaw", "password": "secret1"})
	if w.Code != http.StatusForbidden {
		t.Errorf("blocked login: status %d, want 403", w.Code)
	}

	w = api.do(http.MethodPost, "/api/v1/transactions", adminToken, map[string]any{
		"type": "income", "person": "NITA", "category": "FOOD STUFFS",
		"food_items": []map[string]any{{"name": "rice", "price": "5", "quantity": 2}, {"name": "oil", "price": "3", "quantity": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("admin food income: status %d body %s", w.Code, w.Body.String())
	}
	assertDecimal(t, "derived amount", decode[dto.TransactionMutationResponse](t, w).Transaction.Amount, "13")

	w = api.do(http.MethodGet, "/api/v1/exports/food?format=html", adminToken, nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("food export: status %d content type %q", w.Code, w.Header().Get("Content-Type"))
	}

	w = api.do(http.MethodDelete, "/api/v1/admin/users/"+yaw.ID, adminToken, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete user: status %d", w.Code)
	}
	w = api.do(http.MethodDelete, "/api/v1/admin/users/"+yaw.ID, adminToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing user: status %d", w.Code)
	}
}

func TestAPI_Health(t *testing.T) {
	api := newAPIClient(t)

	w := api.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"storage":"connected"`) {
		t.Errorf("health body = %s", w.Body.String())
	}
}
