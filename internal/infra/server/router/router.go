// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	exportController      *controller.ExportController
	adminController       *controller.AdminController
	authRateLimiter       *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	exportController *controller.ExportController,
	adminController *controller.AdminController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		categoryController:    categoryController,
		dashboardController:   dashboardController,
		exportController:      exportController,
		adminController:       adminController,
		authRateLimiter:       authRateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	auth := v1.Group("/auth")
	auth.Use(r.authRateLimiter.Middleware())
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authController.Login)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	protected.GET("/ledger", r.transactionController.Ledger)

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	protected.GET("/dashboard", r.dashboardController.Get)

	categories := protected.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.DELETE("/:kind/:name", r.categoryController.Delete)
	}

	exports := protected.Group("/exports")
	{
		exports.GET("/transactions", r.exportController.Transactions)
		exports.GET("/food", middleware.RequireAdmin(), r.exportController.FoodStuffs)
		exports.GET("/special", middleware.RequireAdmin(), r.exportController.SpecialPeople)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", r.adminController.ListUsers)
		admin.POST("/users", r.adminController.CreateUser)
		admin.PATCH("/users/:id", r.adminController.UpdateUser)
		admin.DELETE("/users/:id", r.adminController.DeleteUser)
	}
}
