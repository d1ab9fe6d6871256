// Package valueobject contains domain value objects for the Sales Dashboard system.
package valueobject

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// FilterField is the record field the search text is matched against.
type FilterField string

const (
	FilterFieldProduct  FilterField = "product"
	FilterFieldCategory FilterField = "category"
	FilterFieldRegion   FilterField = "region"
	FilterFieldMonth    FilterField = "month"
)

// IsValid reports whether the filter field is known.
func (f FilterField) IsValid() bool {
	switch f {
	case FilterFieldProduct, FilterFieldCategory, FilterFieldRegion, FilterFieldMonth:
		return true
	}
	return false
}

// SortField is the record field the table is ordered by.
type SortField string

const (
	SortFieldDate     SortField = "date"
	SortFieldAmount   SortField = "amount"
	SortFieldProduct  SortField = "product"
	SortFieldCategory SortField = "category"
	SortFieldRegion   SortField = "region"
)

// IsValid reports whether the sort field is known.
func (f SortField) IsValid() bool {
	switch f {
	case SortFieldDate, SortFieldAmount, SortFieldProduct, SortFieldCategory, SortFieldRegion:
		return true
	}
	return false
}

// SortOrder is the direction of the table ordering.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid reports whether the sort order is known.
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOrderAsc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// ChartKind selects one of the chart reducers.
type ChartKind string

const (
	ChartByCategory    ChartKind = "byCategory"
	ChartByRegion      ChartKind = "byRegion"
	ChartAmountByMonth ChartKind = "amountByMonth"
	ChartTopProducts   ChartKind = "topProducts"
	ChartAvgByCategory ChartKind = "avgByCategory"
)

// ChartKinds lists every chart kind in display order.
var ChartKinds = []ChartKind{
	ChartByCategory,
	ChartByRegion,
	ChartAmountByMonth,
	ChartTopProducts,
	ChartAvgByCategory,
}

// IsValid reports whether the chart kind is known.
func (k ChartKind) IsValid() bool {
	for _, kind := range ChartKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// IsAmount reports whether the chart values are currency amounts rather than counts.
func (k ChartKind) IsAmount() bool {
	return k == ChartAmountByMonth || k == ChartAvgByCategory
}

// Criteria is the combined filter, sort and chart selection state of the dashboard.
type Criteria struct {
	SearchText     string      `json:"searchText"`
	FilterField    FilterField `json:"filterField"`
	DateFrom       *time.Time  `json:"dateFrom"`
	DateTo         *time.Time  `json:"dateTo"`
	SortField      SortField   `json:"sortField"`
	SortOrder      SortOrder   `json:"sortOrder"`
	ChartSelection ChartKind   `json:"chartSelection"`
	ShowPanel      bool        `json:"showPanel"`
}

// DefaultCriteria returns the criteria used on first load and after a reset.
func DefaultCriteria() Criteria {
	return Criteria{
		SearchText:     "",
		FilterField:    FilterFieldProduct,
		SortField:      SortFieldDate,
		SortOrder:      SortOrderDesc,
		ChartSelection: ChartByCategory,
	}
}

// Clone returns a copy that shares no pointers with the receiver.
func (c Criteria) Clone() Criteria {
	out := c
	if c.DateFrom != nil {
		from := *c.DateFrom
		out.DateFrom = &from
	}
	if c.DateTo != nil {
		to := *c.DateTo
		out.DateTo = &to
	}
	return out
}

// CriteriaPatch is a partial criteria. Nil fields are left untouched on merge.
type CriteriaPatch struct {
	SearchText     *string      `json:"searchText,omitempty"`
	FilterField    *FilterField `json:"filterField,omitempty"`
	DateFrom       OptionalTime `json:"dateFrom"`
	DateTo         OptionalTime `json:"dateTo"`
	SortField      *SortField   `json:"sortField,omitempty"`
	SortOrder      *SortOrder   `json:"sortOrder,omitempty"`
	ChartSelection *ChartKind   `json:"chartSelection,omitempty"`
	ShowPanel      *bool        `json:"showPanel,omitempty"`
}

// OptionalTime distinguishes an absent date bound from an explicit null.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// dateLayout is the layout produced by browser date inputs.
const dateLayout = "2006-01-02"

// UnmarshalJSON accepts null, an empty string, an RFC 3339 timestamp or a YYYY-MM-DD date.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date bound must be a string: %w", domainerror.ErrInvalidDateFormat)
	}
	if raw == "" {
		return nil
	}

	t, err := ParseDate(raw)
	if err != nil {
		return err
	}
	o.Value = &t
	return nil
}

// MarshalJSON writes the value or null.
func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ParseDate parses an RFC 3339 timestamp or a YYYY-MM-DD date (UTC midnight).
// Failures wrap ErrInvalidDateFormat.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, domainerror.ErrInvalidDateFormat)
	}
	return t, nil
}

// PatchFrom builds a patch that sets every field of the criteria.
func PatchFrom(c Criteria) CriteriaPatch {
	c = c.Clone()
	return CriteriaPatch{
		SearchText:     &c.SearchText,
		FilterField:    &c.FilterField,
		DateFrom:       OptionalTime{Set: true, Value: c.DateFrom},
		DateTo:         OptionalTime{Set: true, Value: c.DateTo},
		SortField:      &c.SortField,
		SortOrder:      &c.SortOrder,
		ChartSelection: &c.ChartSelection,
		ShowPanel:      &c.ShowPanel,
	}
}

// Merge applies the fields present in the patch over the criteria, field by field.
// Enum values outside their set are ignored.
func (c Criteria) Merge(p CriteriaPatch) Criteria {
	out := c.Clone()

	if p.SearchText != nil {
		out.SearchText = *p.SearchText
	}
	if p.FilterField != nil && p.FilterField.IsValid() {
		out.FilterField = *p.FilterField
	}
	if p.DateFrom.Set {
		out.DateFrom = copyTime(p.DateFrom.Value)
	}
	if p.DateTo.Set {
		out.DateTo = copyTime(p.DateTo.Value)
	}
	if p.SortField != nil && p.SortField.IsValid() {
		out.SortField = *p.SortField
	}
	if p.SortOrder != nil && p.SortOrder.IsValid() {
		out.SortOrder = *p.SortOrder
	}
	if p.ChartSelection != nil && p.ChartSelection.IsValid() {
		out.ChartSelection = *p.ChartSelection
	}
	if p.ShowPanel != nil {
		out.ShowPanel = *p.ShowPanel
	}

	return out
}

// Equal reports whether two criteria hold the same values.
func (c Criteria) Equal(other Criteria) bool {
	return c.SearchText == other.SearchText &&
		c.FilterField == other.FilterField &&
		timePtrEqual(c.DateFrom, other.DateFrom) &&
		timePtrEqual(c.DateTo, other.DateTo) &&
		c.SortField == other.SortField &&
		c.SortOrder == other.SortOrder &&
		c.ChartSelection == other.ChartSelection &&
		c.ShowPanel == other.ShowPanel
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
