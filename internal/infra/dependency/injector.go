// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/admin"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/export"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/backend"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	exporter "github.com/expense-tracker/backend/internal/integration/export"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	Backend         *backend.Backend
	Service         *transaction.Service
	AuthRateLimiter *middleware.RateLimiter
	Router          *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, be *backend.Backend, publisher adapter.EventPublisher) (*Injector, error) {
	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	reportExporter := exporter.NewExporter(cfg.Export.DefaultFormat)

	adminAccount, err := auth.NewAdminAccount(passwordService, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.AccessNames)
	if err != nil {
		return nil, fmt.Errorf("failed to configure admin account: %w", err)
	}

	service := transaction.NewService(be.Ledgers, be.Categories, publisher)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(be.Users, passwordService, tokenService, adminAccount)
	loginUseCase := auth.NewLoginUserUseCase(be.Users, passwordService, tokenService, adminAccount)

	// Create transaction use cases
	getLedgerUseCase := transaction.NewGetLedgerUseCase(service)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(service)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(service)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(service)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(service)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(be.Categories)
	createCategoryUseCase := category.NewCreateCategoryUseCase(be.Categories)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(be.Categories)

	// Create admin use cases
	listUsersUseCase := admin.NewListUsersUseCase(be.Users)
	createUserUseCase := admin.NewCreateUserUseCase(be.Users, passwordService, adminAccount)
	updateUserUseCase := admin.NewUpdateUserUseCase(be.Users, passwordService, adminAccount)
	deleteUserUseCase := admin.NewDeleteUserUseCase(be.Users, service, be.Categories)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(service)
	exportReportUseCase := export.NewExportReportUseCase(service, reportExporter)

	// Create controllers
	healthController := controller.NewHealthController(cfg.Storage.Backend, be.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	transactionController := controller.NewTransactionController(
		getLedgerUseCase,
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	exportController := controller.NewExportController(exportReportUseCase, adminAccount.AccessibleNames)
	adminController := controller.NewAdminController(
		listUsersUseCase,
		createUserUseCase,
		updateUserUseCase,
		deleteUserUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var authRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		authRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		authRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Security.AuthRateLimit, cfg.Security.AuthRateWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		categoryController,
		dashboardController,
		exportController,
		adminController,
		authRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:          cfg,
		Backend:         be,
		Service:         service,
		AuthRateLimiter: authRateLimiter,
		Router:          r,
	}, nil
}

// Engine builds the Gin engine for the configured environment.
func (i *Injector) Engine() *gin.Engine {
	return i.Router.Setup(i.Config.Server.Environment)
}
