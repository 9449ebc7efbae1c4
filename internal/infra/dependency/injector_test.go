package dependency

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/insights/config"
	infracache "github.com/finance-tracker/insights/internal/infra/cache"
	"github.com/finance-tracker/insights/internal/infra/db"
)

var fixedNow = time.Date(2025, time.March, 19, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *db.Database {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	database := db.NewDatabaseFromGorm(gormDB)
	require.NoError(t, database.MigrateSchema())
	return database
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *infracache.Redis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, infracache.NewRedisFromClient(client)
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = "injector-secret"
	cfg.Insights.MemoryStore = false
	return cfg
}

func health(t *testing.T, engine *gin.Engine) map[string]string {
	t.Helper()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNewInjector(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("redis backed store", func(t *testing.T) {
		_, rdb := newTestRedis(t)

		cfg := testConfig()
		injector := NewInjector(cfg, newTestDB(t), rdb, func() time.Time { return fixedNow })
		engine := injector.Router.Setup(cfg.Server.Environment)

		body := health(t, engine)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "connected", body["redis"])

		userID := uuid.New()
		token, err := injector.TokenService.GenerateAccessToken(context.Background(), userID, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"insights":[],"unread_count":0}`, w.Body.String())
	})

	t.Run("memory store without redis", func(t *testing.T) {
		cfg := testConfig()
		injector := NewInjector(cfg, newTestDB(t), nil, nil)
		engine := injector.Router.Setup(cfg.Server.Environment)

		body := health(t, engine)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "disabled", body["redis"])
		assert.NotNil(t, injector.InsightStore)
	})

	t.Run("memory store flag ignores redis", func(t *testing.T) {
		_, rdb := newTestRedis(t)

		cfg := testConfig()
		cfg.Insights.MemoryStore = true
		injector := NewInjector(cfg, newTestDB(t), rdb, nil)
		engine := injector.Router.Setup(cfg.Server.Environment)

		body := health(t, engine)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "disabled", body["redis"])
	})

	t.Run("health follows connection state", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		database := newTestDB(t)

		cfg := testConfig()
		injector := NewInjector(cfg, database, rdb, nil)
		engine := injector.Router.Setup(cfg.Server.Environment)

		body := health(t, engine)
		assert.Equal(t, "connected", body["database"])
		assert.Equal(t, "connected", body["redis"])

		mr.Close()
		require.NoError(t, database.Close())

		body = health(t, engine)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "disconnected", body["database"])
		assert.Equal(t, "disconnected", body["redis"])
	})

	t.Run("no database", func(t *testing.T) {
		cfg := testConfig()
		injector := NewInjector(cfg, nil, nil, nil)
		engine := injector.Router.Setup(cfg.Server.Environment)

		body := health(t, engine)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "disconnected", body["database"])

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNewInjector_RefreshLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	refresh := func(t *testing.T, engine *gin.Engine, token string) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Code
	}

	tests := []struct {
		name        string
		environment string
		wantSecond  int
	}{
		{name: "production uses configured limit", environment: "production", wantSecond: http.StatusTooManyRequests},
		{name: "test environment is relaxed", environment: "test", wantSecond: http.StatusOK},
		{name: "e2e environment is relaxed", environment: "e2e", wantSecond: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Server.Environment = tt.environment
			cfg.Insights.MemoryStore = true
			cfg.Insights.RefreshRateLimit = 1
			cfg.Insights.RefreshRateWindow = time.Minute

			injector := NewInjector(cfg, newTestDB(t), nil, nil)
			engine := injector.Router.Setup("test")

			token, err := injector.TokenService.GenerateAccessToken(context.Background(), uuid.New(), "")
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, refresh(t, engine, token))
			assert.Equal(t, tt.wantSecond, refresh(t, engine, token))
		})
	}
}

func TestThresholds(t *testing.T) {
	cfg := config.InsightsConfig{IdealSavingsRate: 25, MicroExpenseThreshold: 15}

	thresholds := Thresholds(cfg)

	assert.True(t, decimal.NewFromInt(25).Equal(thresholds.IdealSavingsRatePercent))
	assert.True(t, decimal.NewFromInt(15).Equal(thresholds.MicroExpenseAmount))

	defaults := Thresholds(config.InsightsConfig{})
	assert.True(t, decimal.NewFromInt(20).Equal(defaults.IdealSavingsRatePercent))
	assert.True(t, decimal.NewFromInt(10).Equal(defaults.MicroExpenseAmount))
}
