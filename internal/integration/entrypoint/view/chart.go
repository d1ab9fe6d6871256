package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// Bar is one rendered bar of a chart.
type Bar struct {
	Label   string
	Display string
	Width   string
}

var chartTitles = map[valueobject.ChartKind]string{
	valueobject.ChartByCategory:    "Sales by category",
	valueobject.ChartByRegion:      "Sales by region",
	valueobject.ChartAmountByMonth: "Amount by month",
	valueobject.ChartTopProducts:   "Top products",
	valueobject.ChartAvgByCategory: "Average amount by category",
}

// ChartTitle returns the display name of a chart kind.
func ChartTitle(kind valueobject.ChartKind) string {
	if title, ok := chartTitles[kind]; ok {
		return title
	}
	return chartTitles[valueobject.ChartByCategory]
}

// Bars scales each point against max(1, largest value) of the series.
// Amount charts are rounded to whole units for display.
func Bars(kind valueobject.ChartKind, series valueobject.Series) []Bar {
	if len(series) == 0 {
		return nil
	}

	top := decimal.Max(decimal.NewFromInt(1), series.Max())
	hundred := decimal.NewFromInt(100)

	bars := make([]Bar, len(series))
	for i, p := range series {
		display := p.Value.String()
		if kind.IsAmount() {
			display = FormatAmount(p.Value.Round(0))
		}
		bars[i] = Bar{
			Label:   p.Label,
			Display: display,
			Width:   fmt.Sprintf("%.2f%%", p.Value.Div(top).Mul(hundred).InexactFloat64()),
		}
	}
	return bars
}
