// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	groupController    *controller.GroupController
	expenseController  *controller.ExpenseController
	summaryController  *controller.SummaryController
	settingsController *controller.SettingsController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	groupController *controller.GroupController,
	expenseController *controller.ExpenseController,
	summaryController *controller.SummaryController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		groupController:    groupController,
		expenseController:  expenseController,
		summaryController:  summaryController,
		settingsController: settingsController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
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

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Add)
				categories.DELETE("/:name", r.categoryController.Remove)
			}
		}

		// Group and member-staging routes (require authentication)
		if r.groupController != nil && r.authMiddleware != nil {
			groups := v1.Group("/groups")
			groups.Use(r.authMiddleware.Authenticate())
			{
				groups.GET("", r.groupController.List)
				groups.POST("", r.groupController.Create)
				groups.GET("/members", r.groupController.ListStagedMembers)
				groups.POST("/members", r.groupController.StageMembers)
				groups.DELETE("/members/:name", r.groupController.UnstageMember)
				groups.GET("/suggestions", r.groupController.SuggestMembers)
				groups.DELETE("/:id", r.groupController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summaries := v1.Group("/summary")
			summaries.Use(r.authMiddleware.Authenticate())
			{
				summaries.GET("/categories", r.summaryController.CategoryTotals)
				summaries.GET("/groups", r.summaryController.GroupSummary)
				summaries.GET("/chart", r.summaryController.ChartBreakdown)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("/last-category", r.settingsController.LastCategory)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
