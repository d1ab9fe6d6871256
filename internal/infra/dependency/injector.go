// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/application/uistate"
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/application/usecase/sale"
	"github.com/sales-dashboard/backend/internal/infra/server/router"
	"github.com/sales-dashboard/backend/internal/integration/client"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/view"
	"github.com/sales-dashboard/backend/internal/integration/persistence"
	"github.com/sales-dashboard/backend/internal/integration/worker"
)

// Injector holds the Record Service dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates the Record Service graph with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	saleRepo := persistence.NewSaleRepository(db)

	// Create sale use cases
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo)
	getSaleUseCase := sale.NewGetSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo)

	// Create controllers
	healthController := controller.NewHealthController(controller.HealthCheck{
		Name:  "database",
		Check: dbHealthChecker,
	})

	saleController := controller.NewSaleController(
		listSalesUseCase,
		createSaleUseCase,
		getSaleUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Create router
	r := router.NewRouter(healthController, saleController, writeRateLimiter, cfg.Server.AllowedOrigins)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// DashboardInjector holds the dashboard process dependencies.
type DashboardInjector struct {
	Config  *config.Config
	Store   *uistate.Store
	Dataset *dashboard.Dataset
	Worker  *worker.RefreshWorker
	Router  *router.DashboardRouter
}

// NewDashboardInjector creates the dashboard graph. A nil storage keeps the criteria in memory;
// a nil storageHealthChecker omits the state store from the health report.
func NewDashboardInjector(
	cfg *config.Config,
	storage adapter.StateStorage,
	storageHealthChecker func() bool,
) (*DashboardInjector, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create view renderer: %w", err)
	}

	// Create state and data holders
	store := uistate.NewStore(storage, cfg.Dashboard.StateKey)
	dataset := dashboard.NewDataset()
	recordClient := client.NewRecordClient(cfg.Dashboard.RecordServiceURL, cfg.Dashboard.FetchTimeout)

	// Create dashboard use cases
	refreshDatasetUseCase := dashboard.NewRefreshDatasetUseCase(recordClient, dataset)
	getViewUseCase := dashboard.NewGetViewUseCase(dataset)
	getSaleDetailUseCase := dashboard.NewGetSaleDetailUseCase(recordClient)

	refreshWorker := worker.NewRefreshWorker(
		worker.RefresherFunc(func(ctx context.Context) (int, error) {
			output, err := refreshDatasetUseCase.Execute(ctx)
			if err != nil {
				return 0, err
			}
			return output.Count, nil
		}),
		worker.WorkerConfig{
			Interval: cfg.Dashboard.RefreshInterval,
			Timeout:  cfg.Dashboard.FetchTimeout,
		},
	)

	// Create controllers
	checks := []controller.HealthCheck{{
		Name:  "record_service",
		Check: func() bool { return dataset.Status().LastError == "" },
	}}
	if storageHealthChecker != nil {
		checks = append(checks, controller.HealthCheck{Name: "state_store", Check: storageHealthChecker})
	}
	healthController := controller.NewHealthController(checks...)

	dashboardController := controller.NewDashboardController(
		store,
		dataset,
		getViewUseCase,
		getSaleDetailUseCase,
		renderer,
	)

	// Create router
	r := router.NewDashboardRouter(healthController, dashboardController, renderer)

	return &DashboardInjector{
		Config:  cfg,
		Store:   store,
		Dataset: dataset,
		Worker:  refreshWorker,
		Router:  r,
	}, nil
}
