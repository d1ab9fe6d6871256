package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/application/chart"
	"github.com/sales-dashboard/backend/internal/application/query"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// GetViewInput represents the criteria the view is built for.
type GetViewInput struct {
	Criteria valueobject.Criteria
}

// GetViewOutput is everything the dashboard renders for one criteria snapshot.
type GetViewOutput struct {
	Criteria    valueobject.Criteria
	Rows        []*entity.Sale
	TotalCount  int
	TotalAmount decimal.Decimal
	Chart       valueobject.Series
	Status      DatasetStatus
}

// GetViewUseCase joins the current dataset with the criteria.
type GetViewUseCase struct {
	dataset *Dataset
}

// NewGetViewUseCase creates a new GetViewUseCase instance.
func NewGetViewUseCase(dataset *Dataset) *GetViewUseCase {
	return &GetViewUseCase{
		dataset: dataset,
	}
}

// Execute filters and sorts the records, then aggregates the result for the selected chart.
func (uc *GetViewUseCase) Execute(input GetViewInput) *GetViewOutput {
	records := uc.dataset.Records()
	rows := query.FilterAndSort(records, input.Criteria)

	total := decimal.Zero
	for _, s := range rows {
		total = total.Add(s.Amount)
	}

	output := &GetViewOutput{
		Criteria:    input.Criteria,
		Rows:        rows,
		TotalCount:  len(records),
		TotalAmount: total,
		Status:      uc.dataset.Status(),
	}
	if input.Criteria.ShowPanel {
		output.Chart = chart.Compute(input.Criteria.ChartSelection, rows)
	}
	return output
}
