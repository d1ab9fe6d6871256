package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// stubSource is a scripted adapter.SaleSource.
type stubSource struct {
	records []*entity.Sale
	err     error
	calls   int
}

func (s *stubSource) FetchAll(context.Context) ([]*entity.Sale, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubSource) FetchByID(_ context.Context, id uint) (*entity.Sale, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrSaleNotFound
}

func strPtr(s string) *string { return &s }

func scenarioSales() []*entity.Sale {
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }
	return []*entity.Sale{
		{ID: 1, Product: "Mouse", Category: "Tecnología", Amount: decimal.NewFromInt(1000), Date: day(1, 5)},
		{ID: 2, Product: "Mouse", Category: "Tecnología", Amount: decimal.NewFromInt(2000), Region: strPtr("Norte"), Date: day(2, 10)},
		{ID: 3, Product: "Polera", Category: "Ropa", Amount: decimal.NewFromInt(500), Region: strPtr("Norte"), Date: day(1, 20)},
	}
}

func TestRefreshDataset_ReplacesAndNotifies(t *testing.T) {
	dataset := NewDataset()
	source := &stubSource{records: scenarioSales()}
	uc := NewRefreshDatasetUseCase(source, dataset)

	notified := 0
	dataset.Subscribe(func() { notified++ })

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Count != 3 || len(dataset.Records()) != 3 {
		t.Errorf("count = %d, records = %d, want 3", output.Count, len(dataset.Records()))
	}
	if notified != 1 {
		t.Errorf("notified = %d, want 1", notified)
	}
	if status := dataset.Status(); !status.Loaded || status.LastError != "" {
		t.Errorf("status = %+v", status)
	}
}

func TestRefreshDataset_FailureKeepsPreviousSet(t *testing.T) {
	dataset := NewDataset()
	source := &stubSource{records: scenarioSales()}
	uc := NewRefreshDatasetUseCase(source, dataset)

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	source.err = domainerror.ErrRecordServiceUnavailable
	_, err := uc.Execute(context.Background())

	if !errors.Is(err, domainerror.ErrRecordServiceUnavailable) {
		t.Errorf("err = %v, want wrapped unavailable", err)
	}
	if len(dataset.Records()) != 3 {
		t.Errorf("records = %d, previous set should be kept", len(dataset.Records()))
	}
	if dataset.Status().LastError == "" {
		t.Error("expected the failure to be recorded")
	}
}

func TestRefreshDataset_LastWriteWins(t *testing.T) {
	dataset := NewDataset()
	source := &stubSource{records: scenarioSales()}
	uc := NewRefreshDatasetUseCase(source, dataset)
	ctx := context.Background()

	_, _ = uc.Execute(ctx)
	source.records = source.records[:1]
	_, _ = uc.Execute(ctx)

	if got := len(dataset.Records()); got != 1 {
		t.Errorf("records = %d, want 1", got)
	}
}

func TestDataset_Unsubscribe(t *testing.T) {
	dataset := NewDataset()
	notified := 0
	unsubscribe := dataset.Subscribe(func() { notified++ })

	dataset.Replace(nil, time.Now())
	unsubscribe()
	dataset.Replace(nil, time.Now())

	if notified != 1 {
		t.Errorf("notified = %d, want 1", notified)
	}
}

func TestGetView(t *testing.T) {
	dataset := NewDataset()
	dataset.Replace(scenarioSales(), time.Now())
	uc := NewGetViewUseCase(dataset)

	tests := []struct {
		name       string
		mutate     func(*valueobject.Criteria)
		wantRows   []uint
		wantAmount int64
		wantChart  int
	}{
		{
			name:       "defaults sort by date desc with the panel hidden",
			wantRows:   []uint{2, 3, 1},
			wantAmount: 3500,
		},
		{
			name: "region filter feeds the chart",
			mutate: func(c *valueobject.Criteria) {
				c.FilterField = valueobject.FilterFieldRegion
				c.SearchText = "norte"
				c.ShowPanel = true
				c.ChartSelection = valueobject.ChartByCategory
			},
			wantRows:   []uint{2, 3},
			wantAmount: 2500,
			wantChart:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valueobject.DefaultCriteria()
			if tt.mutate != nil {
				tt.mutate(&c)
			}

			output := uc.Execute(GetViewInput{Criteria: c})

			if len(output.Rows) != len(tt.wantRows) {
				t.Fatalf("rows = %d, want %d", len(output.Rows), len(tt.wantRows))
			}
			for i, id := range tt.wantRows {
				if output.Rows[i].ID != id {
					t.Errorf("row %d id = %d, want %d", i, output.Rows[i].ID, id)
				}
			}
			if !output.TotalAmount.Equal(decimal.NewFromInt(tt.wantAmount)) {
				t.Errorf("TotalAmount = %s, want %d", output.TotalAmount, tt.wantAmount)
			}
			if output.TotalCount != 3 {
				t.Errorf("TotalCount = %d, want 3", output.TotalCount)
			}
			if len(output.Chart) != tt.wantChart {
				t.Errorf("chart points = %d, want %d", len(output.Chart), tt.wantChart)
			}
		})
	}
}

func TestGetSaleDetail(t *testing.T) {
	uc := NewGetSaleDetailUseCase(&stubSource{records: scenarioSales()})

	output, err := uc.Execute(context.Background(), GetSaleDetailInput{ID: 3})
	if err != nil || output.Sale.Product != "Polera" {
		t.Fatalf("Execute(3) = %v, %v", output, err)
	}

	_, err = uc.Execute(context.Background(), GetSaleDetailInput{ID: 99})
	var saleErr *domainerror.SaleError
	if !errors.As(err, &saleErr) || saleErr.Code != domainerror.ErrCodeSaleNotFound {
		t.Errorf("err = %v, want not found", err)
	}
}
