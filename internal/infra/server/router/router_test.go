package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/insights/internal/application/usecase/insight"
	"github.com/finance-tracker/insights/internal/integration/adapters"
	"github.com/finance-tracker/insights/internal/integration/cache"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/middleware"
)

func TestRouter_Setup(t *testing.T) {
	t.Run("registers insight routes", func(t *testing.T) {
		store := cache.NewMemoryInsightStore()
		insightController := controller.NewInsightController(
			nil,
			insight.NewListInsightsUseCase(store),
			insight.NewMarkInsightReadUseCase(store),
			insight.NewDismissInsightUseCase(store),
			nil,
		)
		tokenService := adapters.NewTokenService("router-secret", 0)

		r := NewRouter(
			controller.NewHealthController(func() bool { return true }, nil),
			insightController,
			middleware.NewRateLimiter(1, 0),
			middleware.NewAuthMiddleware(tokenService),
		)
		engine := r.Setup("test")
		require.Same(t, engine, r.Engine())

		routes := make(map[string]bool)
		for _, route := range engine.Routes() {
			routes[route.Method+" "+route.Path] = true
		}

		for _, want := range []string{
			"GET /health",
			"GET /api/v1/insights",
			"GET /api/v1/insights/summary",
			"POST /api/v1/insights/refresh",
			"PATCH /api/v1/insights/:id/read",
			"DELETE /api/v1/insights/:id",
		} {
			assert.True(t, routes[want], "missing route %s", want)
		}

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skips insight routes without a controller", func(t *testing.T) {
		r := NewRouter(controller.NewHealthController(func() bool { return false }, nil), nil, nil, nil)
		engine := r.Setup("test")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
