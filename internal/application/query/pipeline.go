// Package query turns a record set and view criteria into the ordered table rows.
//
// The pipeline runs three stages in order: text filter, date range filter and sort.
// It never mutates its input and never fails; a month search that is not a number
// between 1 and 12 simply matches nothing.
package query

import (
	"slices"
	"strconv"
	"strings"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// FilterAndSort returns the records matching the criteria, ordered by its sort field.
func FilterAndSort(records []*entity.Sale, criteria valueobject.Criteria) []*entity.Sale {
	out := filterText(records, criteria.SearchText, criteria.FilterField)
	out = filterDateRange(out, criteria)
	sortSales(out, criteria.SortField, criteria.SortOrder)
	return out
}

// filterText always returns a fresh slice so later stages may reorder it freely.
func filterText(records []*entity.Sale, searchText string, field valueobject.FilterField) []*entity.Sale {
	q := strings.ToLower(strings.TrimSpace(searchText))
	if q == "" {
		return slices.Clone(records)
	}

	var match func(*entity.Sale) bool
	switch field {
	case valueobject.FilterFieldCategory:
		match = func(s *entity.Sale) bool { return containsFold(s.Category, q) }
	case valueobject.FilterFieldRegion:
		match = func(s *entity.Sale) bool { return containsFold(s.RegionOrEmpty(), q) }
	case valueobject.FilterFieldMonth:
		month, ok := parseMonth(q)
		if !ok {
			return []*entity.Sale{}
		}
		match = func(s *entity.Sale) bool { return int(s.Date.UTC().Month()) == month }
	default:
		match = func(s *entity.Sale) bool { return containsFold(s.Product, q) }
	}

	out := make([]*entity.Sale, 0, len(records))
	for _, s := range records {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}

func filterDateRange(records []*entity.Sale, criteria valueobject.Criteria) []*entity.Sale {
	if criteria.DateFrom == nil && criteria.DateTo == nil {
		return records
	}

	out := records[:0]
	for _, s := range records {
		if criteria.DateFrom != nil && s.Date.Before(*criteria.DateFrom) {
			continue
		}
		if criteria.DateTo != nil && s.Date.After(*criteria.DateTo) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sortSales(records []*entity.Sale, field valueobject.SortField, order valueobject.SortOrder) {
	cmp := comparator(field)
	if order == valueobject.SortOrderDesc {
		asc := cmp
		cmp = func(a, b *entity.Sale) int { return asc(b, a) }
	}
	slices.SortStableFunc(records, cmp)
}

func comparator(field valueobject.SortField) func(a, b *entity.Sale) int {
	switch field {
	case valueobject.SortFieldAmount:
		return func(a, b *entity.Sale) int { return a.Amount.Cmp(b.Amount) }
	case valueobject.SortFieldProduct:
		return func(a, b *entity.Sale) int { return compareFold(a.Product, b.Product) }
	case valueobject.SortFieldCategory:
		return func(a, b *entity.Sale) int { return compareFold(a.Category, b.Category) }
	case valueobject.SortFieldRegion:
		return func(a, b *entity.Sale) int { return compareFold(a.RegionOrEmpty(), b.RegionOrEmpty()) }
	default:
		return func(a, b *entity.Sale) int { return a.Date.Compare(b.Date) }
	}
}

// parseMonth accepts base-10 integers in 1..12.
func parseMonth(q string) (int, bool) {
	month, err := strconv.Atoi(q)
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

// containsFold expects needle to be lower case already.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
