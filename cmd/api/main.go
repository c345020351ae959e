// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/group"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger: colored output in development, JSON
	// everywhere else
	var logger *slog.Logger
	if cfg.Server.Environment == "development" {
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	slog.SetDefault(logger)

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"backend", cfg.Storage.Backend,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Open the storage backend
	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to open storage backend", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage backend", "error", err)
		}
	}()

	storeHealthChecker := func() bool { return true }
	if hc, ok := store.(interface{ HealthCheck() bool }); ok {
		storeHealthChecker = hc.HealthCheck
	}
	healthController := controller.NewHealthController(storeHealthChecker)

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(store)
	groupRepo := persistence.NewGroupRepository(store)
	stagingRepo := persistence.NewStagingRepository(store)
	expenseRepo := persistence.NewExpenseRepository(store)
	userRepo := persistence.NewUserRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)

	// Create adapters/services
	passwordService := adapters.NewBcryptPasswordService()
	tokenService := adapters.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	var directory adapter.UserDirectory = adapters.NewNoopUserDirectory()
	if cfg.Directory.Enabled {
		directory = adapters.NewHTTPUserDirectory(cfg.Directory.BaseURL)
	}

	// Create auth use cases and controller
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	// Create category use cases and controller
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewAddCategoryUseCase(categoryRepo),
		category.NewRemoveCategoryUseCase(categoryRepo),
	)

	// Create group use cases and controller
	groupController := controller.NewGroupController(
		group.NewListGroupsUseCase(groupRepo),
		group.NewCreateGroupUseCase(groupRepo, stagingRepo, logger),
		group.NewDeleteGroupUseCase(groupRepo),
		group.NewStageMembersUseCase(stagingRepo),
		group.NewUnstageMemberUseCase(stagingRepo),
		group.NewListStagedMembersUseCase(stagingRepo),
		group.NewSuggestMembersUseCase(directory, logger),
	)

	// Create expense use cases and controller
	expenseController := controller.NewExpenseController(
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewCreateExpenseUseCase(expenseRepo, groupRepo, settingsRepo, logger),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)

	// Create summary use cases and controller
	summaryController := controller.NewSummaryController(
		summary.NewCategoryTotalsUseCase(expenseRepo),
		summary.NewGroupSummaryUseCase(expenseRepo),
		summary.NewChartBreakdownUseCase(expenseRepo),
	)

	settingsController := controller.NewSettingsController(settingsRepo)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		groupController,
		expenseController,
		summaryController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openStore creates the key-value store selected by the configuration.
func openStore(cfg *config.Config) (adapter.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return kv.NewSQLite(cfg.Storage.SQLitePath)
	case "postgres":
		return kv.NewPostgres(cfg.Storage.DatabaseURL)
	case "redis":
		return kv.NewRedis(cfg.Redis.URL)
	case "memory":
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
