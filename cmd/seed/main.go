// Package main replaces the stored sales with a synthetic data set.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/usecase/sale"
	"github.com/sales-dashboard/backend/internal/infra/db"
	"github.com/sales-dashboard/backend/internal/infra/logger"
	"github.com/sales-dashboard/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(logger.New(os.Stdout, cfg.Log))

	count := flag.Int("count", cfg.Seed.Count, "number of sales to generate")
	flag.Parse()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seedUseCase := sale.NewSeedSalesUseCase(persistence.NewSaleRepository(database.DB()), nil)
	if _, err := seedUseCase.Execute(ctx, sale.SeedSalesInput{Count: *count}); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}
