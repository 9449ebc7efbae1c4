// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/insights/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	insightController  *controller.InsightController
	refreshRateLimiter *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	insightController *controller.InsightController,
	refreshRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		insightController:  insightController,
		refreshRateLimiter: refreshRateLimiter,
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

	// Insight routes (require authentication)
	if r.insightController != nil && r.authMiddleware != nil {
		insights := v1.Group("/insights")
		insights.Use(r.authMiddleware.Authenticate())
		{
			refresh := []gin.HandlerFunc{r.insightController.Refresh}
			if r.refreshRateLimiter != nil {
				refresh = append([]gin.HandlerFunc{r.refreshRateLimiter.Middleware()}, refresh...)
			}

			insights.GET("", r.insightController.List)
			insights.GET("/summary", r.insightController.Summary)
			insights.POST("/refresh", refresh...)
			insights.PATCH("/:id/read", r.insightController.MarkAsRead)
			insights.DELETE("/:id", r.insightController.Dismiss)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
