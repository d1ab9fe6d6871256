package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sales-dashboard/backend/internal/application/adapter"
)

// RefreshDatasetOutput represents the output of a refresh.
type RefreshDatasetOutput struct {
	Count int
}

// RefreshDatasetUseCase fetches the full record set and swaps it into the dataset.
type RefreshDatasetUseCase struct {
	source  adapter.SaleSource
	dataset *Dataset
	now     func() time.Time
}

// NewRefreshDatasetUseCase creates a new RefreshDatasetUseCase instance.
func NewRefreshDatasetUseCase(source adapter.SaleSource, dataset *Dataset) *RefreshDatasetUseCase {
	return &RefreshDatasetUseCase{
		source:  source,
		dataset: dataset,
		now:     time.Now,
	}
}

// Execute fetches the records. On failure the previous set stays in place.
func (uc *RefreshDatasetUseCase) Execute(ctx context.Context) (*RefreshDatasetOutput, error) {
	records, err := uc.source.FetchAll(ctx)
	if err != nil {
		uc.dataset.MarkFailed(err)
		slog.Warn("Failed to refresh sales, keeping previous set",
			"kept", uc.dataset.Status().Count,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	uc.dataset.Replace(records, uc.now().UTC())
	slog.Debug("Sales refreshed", "count", len(records))

	return &RefreshDatasetOutput{
		Count: len(records),
	}, nil
}
