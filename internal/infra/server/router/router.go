// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies of the Record Service.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	saleController   *controller.SaleController
	writeRateLimiter *middleware.RateLimiter
	allowedOrigins   []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	saleController *controller.SaleController,
	writeRateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController: healthController,
		saleController:   saleController,
		writeRateLimiter: writeRateLimiter,
		allowedOrigins:   allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	r.engine = newEngine(environment)
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.allowedOrigins))
	}

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Sale routes (only setup if the sale controller is available)
	if r.saleController != nil {
		sales := v1.Group("/sales")
		{
			sales.GET("", r.saleController.List)
			sales.GET("/:id", r.saleController.Get)

			writes := sales.Group("")
			if r.writeRateLimiter != nil {
				writes.Use(r.writeRateLimiter.Middleware())
			}
			writes.POST("", r.saleController.Create)
			writes.PUT("/:id", r.saleController.Update)
			writes.PATCH("/:id", r.saleController.Update)
			writes.DELETE("/:id", r.saleController.Delete)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// newEngine creates a Gin engine with recovery, request ids and structured request logs.
func newEngine(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(slog.Default()),
	)
	return engine
}
