// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/backend"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/events"
	"github.com/expense-tracker/backend/internal/integration/persistence/memory"
	"github.com/expense-tracker/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testAdminUsername = "hanamel"
	testAdminPassword = "admin-pass"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Values captured from earlier responses, substituted as {name} in paths and bodies.
	remembered map[string]string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// testConfig returns the configuration every scenario starts from.
func testConfig(storage string) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Environment: "test"},
		Storage:  config.StorageConfig{Backend: storage},
		JWT:      config.JWTConfig{Secret: testJWTSecret, AccessTokenExpiry: time.Hour},
		Admin:    config.AdminConfig{Username: testAdminUsername, Password: testAdminPassword},
		Export:   config.ExportConfig{DefaultFormat: "md"},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost, AuthRateLimit: 1000, AuthRateWindow: time.Minute},
	}
}

// newBackend picks the storage for a scenario from TEST_BACKEND
// (memory, sqlite or redis) and clears whatever the previous scenario left.
func newBackend(storage string) (*backend.Backend, error) {
	switch backend.BackendType(storage) {
	case backend.SQLiteBackend:
		db := mock.NewDb()
		if err := db.ClearDB(); err != nil {
			return nil, err
		}
		return db.Backend(), nil
	case backend.RedisBackend:
		client := mock.NewRedis()
		if err := mock.ClearRedis(client); err != nil {
			return nil, err
		}
		return mock.RedisBackend(client), nil
	case backend.MemoryBackend:
		return &backend.Backend{
			Ledgers:     memory.NewLedgerStore(),
			Users:       memory.NewUserRepository(),
			Categories:  memory.NewCustomCategoryStore(),
			HealthCheck: func(context.Context) bool { return true },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported TEST_BACKEND %q", storage)
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		storage := os.Getenv("TEST_BACKEND")
		if storage == "" {
			storage = string(backend.MemoryBackend)
		}

		be, err := newBackend(storage)
		if err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			remembered:     make(map[string]string),
			cfg:            testConfig(storage),
		}

		injector, err := dependency.NewInjector(tc.cfg, be, events.NoopPublisher{})
		if err != nil {
			return ctx, err
		}
		tc.server = httptest.NewServer(injector.Engine())

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAuthSteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// registerAuthSteps registers account and session steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^I am logged in as the administrator$`, iAmLoggedInAsTheAdministrator)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) substitute(s string) string {
	for name, value := range tc.remembered {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.send(method, endpoint, bytes.NewBufferString(tc.substitute(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return ctx, nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	value, err := tc.field(field)
	if err != nil {
		return ctx, err
	}
	tc.remembered[name] = fmt.Sprintf("%v", value)
	return ctx, nil
}

func (tc *TestContext) authenticate(endpoint, username, password string) error {
	tc.accessToken = ""
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	if err := tc.send(http.MethodPost, endpoint, bytes.NewReader(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK && tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s as %q failed with %d: %s", endpoint, username, tc.response.StatusCode, tc.responseBody)
	}

	token, err := tc.field("access_token")
	if err != nil {
		return err
	}
	tc.accessToken = fmt.Sprintf("%v", token)
	return nil
}

func iAmRegisteredAs(ctx context.Context, username, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.authenticate("/api/v1/auth/register", username, password)
}

func iAmLoggedInAs(ctx context.Context, username, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.authenticate("/api/v1/auth/login", username, password)
}

func iAmLoggedInAsTheAdministrator(ctx context.Context) (context.Context, error) {
	return iAmLoggedInAs(ctx, testAdminUsername, testAdminPassword)
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return ctx, nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

// field resolves a dotted path such as "ledger.balance" or "transactions.0.id"
// in the last JSON response.
func (tc *TestContext) field(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into '%s' of '%s'", part, path)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.field(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.substitute(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.field(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' has %d items, want %d", field, len(items), count)
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if got := tc.response.Header.Get(header); !strings.Contains(got, expected) {
		return fmt.Errorf("header %s = %q, want it to contain %q", header, got, expected)
	}
	return nil
}
