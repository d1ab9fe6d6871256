package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/view"
)

// DashboardRouter holds the Gin engine and controllers of the dashboard process.
type DashboardRouter struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	renderer            *view.Renderer
}

// NewDashboardRouter creates a new dashboard router instance.
func NewDashboardRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	renderer *view.Renderer,
) *DashboardRouter {
	return &DashboardRouter{
		healthController:    healthController,
		dashboardController: dashboardController,
		renderer:            renderer,
	}
}

// Setup configures and returns the Gin engine with the page, stream and action routes.
func (r *DashboardRouter) Setup(environment string) *gin.Engine {
	r.engine = newEngine(environment)
	r.engine.SetHTMLTemplate(r.renderer.Templates())

	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/", r.dashboardController.Page)
	r.engine.GET("/sales/:id", r.dashboardController.Detail)

	dashboard := r.engine.Group("/dashboard")
	{
		dashboard.GET("/stream", r.dashboardController.Stream)
		dashboard.POST("/criteria", r.dashboardController.UpdateCriteria)
		dashboard.POST("/criteria/reset", r.dashboardController.ResetCriteria)
		dashboard.POST("/sort/:field", r.dashboardController.Sort)
		dashboard.POST("/chart/:kind", r.dashboardController.SelectChart)
		dashboard.POST("/panel/toggle", r.dashboardController.TogglePanel)
	}

	return r.engine
}

// Engine returns the underlying Gin engine.
func (r *DashboardRouter) Engine() *gin.Engine {
	return r.engine
}
