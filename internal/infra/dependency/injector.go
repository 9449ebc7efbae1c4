// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/insights/config"
	"github.com/finance-tracker/insights/internal/application/adapter"
	"github.com/finance-tracker/insights/internal/application/usecase/insight"
	engine "github.com/finance-tracker/insights/internal/domain/insight"
	"github.com/finance-tracker/insights/internal/domain/valueobject"
	infracache "github.com/finance-tracker/insights/internal/infra/cache"
	"github.com/finance-tracker/insights/internal/infra/db"
	"github.com/finance-tracker/insights/internal/infra/server/router"
	"github.com/finance-tracker/insights/internal/integration/adapters"
	"github.com/finance-tracker/insights/internal/integration/cache"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/insights/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Database     *db.Database
	Redis        *infracache.Redis
	TokenService *adapters.TokenService
	InsightStore adapter.InsightStore
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil rdb, or Insights.MemoryStore, selects the in-process insight store.
// A nil database leaves the insight routes unregistered. A nil clock defaults to time.Now.
func NewInjector(cfg *config.Config, database *db.Database, rdb *infracache.Redis, clock func() time.Time) *Injector {
	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	var insightStore adapter.InsightStore
	var redisHealthChecker func() bool
	if rdb != nil && !cfg.Insights.MemoryStore {
		insightStore = cache.NewRedisInsightStore(rdb.Client(), cfg.Insights.StoreTTL)
		redisHealthChecker = rdb.HealthCheck
	} else {
		insightStore = cache.NewMemoryInsightStore()
	}

	dbHealthChecker := func() bool { return false }
	var insightController *controller.InsightController

	if database != nil {
		dbHealthChecker = database.HealthCheck
		gormDB := database.DB()

		// Create repositories
		transactionRepo := persistence.NewTransactionRepository(gormDB)
		categoryRepo := persistence.NewCategoryRepository(gormDB)
		goalRepo := persistence.NewGoalRepository(gormDB)
		budgetRepo := persistence.NewBudgetRepository(gormDB)
		recurringRepo := persistence.NewRecurringItemRepository(gormDB)
		sharedExpenseRepo := persistence.NewSharedExpenseRepository(gormDB)

		// Create insight use cases
		generator := engine.NewGenerator(Thresholds(cfg.Insights))
		loader := insight.NewSnapshotLoader(transactionRepo, categoryRepo, goalRepo, budgetRepo, recurringRepo, sharedExpenseRepo)

		generateUseCase := insight.NewGenerateInsightsUseCase(loader, insightStore, generator, clock)
		listUseCase := insight.NewListInsightsUseCase(insightStore)
		markReadUseCase := insight.NewMarkInsightReadUseCase(insightStore)
		dismissUseCase := insight.NewDismissInsightUseCase(insightStore)
		summaryUseCase := insight.NewGetSummaryUseCase(loader, generator, clock)

		insightController = controller.NewInsightController(
			generateUseCase,
			listUseCase,
			markReadUseCase,
			dismissUseCase,
			summaryUseCase,
		)
	} else {
		slog.Warn("Insight system not initialized due to missing database connection")
	}

	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var refreshRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		refreshRateLimiter = middleware.NewRateLimiter(1000, 1*time.Minute)
	} else {
		refreshRateLimiter = middleware.NewRateLimiter(cfg.Insights.RefreshRateLimit, cfg.Insights.RefreshRateWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, insightController, refreshRateLimiter, authMiddleware)

	return &Injector{
		Config:       cfg,
		Database:     database,
		Redis:        rdb,
		TokenService: tokenService,
		InsightStore: insightStore,
		Router:       r,
	}
}

// Thresholds builds the rule thresholds from configuration.
func Thresholds(cfg config.InsightsConfig) valueobject.InsightThresholds {
	return valueobject.DefaultInsightThresholds().
		WithIdealSavingsRate(decimal.NewFromFloat(cfg.IdealSavingsRate)).
		WithMicroExpenseAmount(decimal.NewFromFloat(cfg.MicroExpenseThreshold))
}
