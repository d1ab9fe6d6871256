package view

import (
	"encoding/json"
	"strconv"

	"github.com/sales-dashboard/backend/internal/application/chart"
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// Option is one entry of a selector.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Header is a sortable table column.
type Header struct {
	Field     string
	Label     string
	Active    bool
	Indicator string
	Numeric   bool
}

// Row is one rendered sale.
type Row struct {
	ID       uint
	Product  string
	Category string
	Region   string
	Date     string
	Amount   string
}

// Summary describes the shown subset and the last refresh.
type Summary struct {
	Loaded    bool
	Shown     int
	Total     int
	Amount    string
	FetchedAt string
	LastError string
}

// ChartPanel is the collapsible chart area.
type ChartPanel struct {
	Visible bool
	Button  string
	Title   string
	Options []Option
	Bars    []Bar
}

// DashboardModel is the data of the dashboard page and its fragments.
type DashboardModel struct {
	Signals           string
	SearchPlaceholder string
	SearchInputType   string
	FilterOptions     []Option
	Headers           []Header
	Rows              []Row
	Summary           Summary
	Chart             ChartPanel
}

var filterLabels = []struct {
	field valueobject.FilterField
	label string
}{
	{valueobject.FilterFieldProduct, "Product"},
	{valueobject.FilterFieldCategory, "Category"},
	{valueobject.FilterFieldRegion, "Region"},
	{valueobject.FilterFieldMonth, "Month"},
}

var columns = []struct {
	field   valueobject.SortField
	label   string
	numeric bool
}{
	{valueobject.SortFieldProduct, "Product", false},
	{valueobject.SortFieldCategory, "Category", false},
	{valueobject.SortFieldRegion, "Region", false},
	{valueobject.SortFieldDate, "Date", false},
	{valueobject.SortFieldAmount, "Amount", true},
}

// NewDashboardModel turns a computed view into template data.
func NewDashboardModel(out *dashboard.GetViewOutput) DashboardModel {
	c := out.Criteria

	m := DashboardModel{
		Signals:           Signals(c),
		SearchPlaceholder: "Search by " + filterLabel(c.FilterField),
		SearchInputType:   "text",
		Rows:              make([]Row, len(out.Rows)),
		Summary: Summary{
			Loaded:    out.Status.Loaded,
			Shown:     len(out.Rows),
			Total:     out.TotalCount,
			Amount:    FormatAmount(out.TotalAmount),
			LastError: out.Status.LastError,
		},
		Chart: ChartPanel{
			Visible: c.ShowPanel,
			Button:  "Show charts",
			Title:   ChartTitle(c.ChartSelection),
			Bars:    Bars(c.ChartSelection, out.Chart),
		},
	}
	if !out.Status.FetchedAt.IsZero() {
		m.Summary.FetchedAt = FormatTimestamp(out.Status.FetchedAt)
	}

	if c.FilterField == valueobject.FilterFieldMonth {
		m.SearchPlaceholder = "Month (1-12)"
		m.SearchInputType = "number"
	}
	if c.ShowPanel {
		m.Chart.Button = "Hide charts"
	}

	for _, f := range filterLabels {
		m.FilterOptions = append(m.FilterOptions, Option{
			Value:    string(f.field),
			Label:    f.label,
			Selected: f.field == c.FilterField,
		})
	}

	for _, col := range columns {
		h := Header{Field: string(col.field), Label: col.label, Numeric: col.numeric}
		if col.field == c.SortField {
			h.Active = true
			h.Indicator = "▼"
			if c.SortOrder == valueobject.SortOrderAsc {
				h.Indicator = "▲"
			}
		}
		m.Headers = append(m.Headers, h)
	}

	for _, kind := range valueobject.ChartKinds {
		m.Chart.Options = append(m.Chart.Options, Option{
			Value:    string(kind),
			Label:    ChartTitle(kind),
			Selected: kind == c.ChartSelection,
		})
	}

	for i, s := range out.Rows {
		m.Rows[i] = NewRow(s)
	}

	return m
}

// NewRow formats a sale for display.
func NewRow(s *entity.Sale) Row {
	region := chart.MissingRegionLabel
	if s.Region != nil && *s.Region != "" {
		region = *s.Region
	}
	return Row{
		ID:       s.ID,
		Product:  s.Product,
		Category: s.Category,
		Region:   region,
		Date:     FormatDate(s.Date),
		Amount:   FormatAmount(s.Amount),
	}
}

// Signals encodes the criteria as the client-side signal object.
// Date bounds use the YYYY-MM-DD form of date inputs.
func Signals(c valueobject.Criteria) string {
	data, _ := json.Marshal(SignalsMap(c))
	return string(data)
}

// SignalsMap returns the client-side signal values for the criteria.
func SignalsMap(c valueobject.Criteria) map[string]any {
	return map[string]any{
		"searchText":     c.SearchText,
		"filterField":    string(c.FilterField),
		"dateFrom":       dateInputValue(c.DateFrom),
		"dateTo":         dateInputValue(c.DateTo),
		"sortField":      string(c.SortField),
		"sortOrder":      string(c.SortOrder),
		"chartSelection": string(c.ChartSelection),
		"showPanel":      c.ShowPanel,
	}
}

func filterLabel(f valueobject.FilterField) string {
	for _, l := range filterLabels {
		if l.field == f {
			return l.label
		}
	}
	return strconv.Quote(string(f))
}

// DetailState selects which variant of the detail page is shown.
type DetailState string

const (
	DetailFound       DetailState = "found"
	DetailInvalidID   DetailState = "invalid"
	DetailNotFound    DetailState = "missing"
	DetailUnavailable DetailState = "unavailable"
)

// DetailModel is the data of the sale detail page.
type DetailModel struct {
	State   DetailState
	Title   string
	Sale    Row
	Created string
	Updated string
}

// NewDetailModel builds the page for a found sale.
func NewDetailModel(s *entity.Sale) DetailModel {
	return DetailModel{
		State:   DetailFound,
		Title:   "Sale #" + strconv.FormatUint(uint64(s.ID), 10),
		Sale:    NewRow(s),
		Created: FormatTimestamp(s.CreatedAt),
		Updated: FormatTimestamp(s.UpdatedAt),
	}
}

// NewDetailStateModel builds one of the error variants of the detail page.
func NewDetailStateModel(state DetailState) DetailModel {
	titles := map[DetailState]string{
		DetailInvalidID:   "Invalid sale ID",
		DetailNotFound:    "Sale not found",
		DetailUnavailable: "Sales are temporarily unavailable",
	}
	return DetailModel{State: state, Title: titles[state]}
}
