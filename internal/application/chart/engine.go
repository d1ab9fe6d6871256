// Package chart reduces a record set into the labelled series shown by the dashboard charts.
package chart

import (
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

const (
	// TopProductsLimit is the number of entries kept by TopProducts.
	TopProductsLimit = 5

	// MissingRegionLabel labels sales without a region.
	MissingRegionLabel = "N/A"
)

// Compute runs the reducer selected by kind. Unknown kinds fall back to ByCategory.
func Compute(kind valueobject.ChartKind, records []*entity.Sale) valueobject.Series {
	switch kind {
	case valueobject.ChartByRegion:
		return ByRegion(records)
	case valueobject.ChartAmountByMonth:
		return AmountByMonth(records)
	case valueobject.ChartTopProducts:
		return TopProducts(records)
	case valueobject.ChartAvgByCategory:
		return AvgByCategory(records)
	default:
		return ByCategory(records)
	}
}

// ByCategory counts sales per category in first-seen order.
func ByCategory(records []*entity.Sale) valueobject.Series {
	return count(records, func(s *entity.Sale) string { return s.Category })
}

// ByRegion counts sales per region in first-seen order.
func ByRegion(records []*entity.Sale) valueobject.Series {
	return count(records, regionLabel)
}

// AmountByMonth sums amounts per UTC calendar month, ignoring the year, ordered by month.
func AmountByMonth(records []*entity.Sale) valueobject.Series {
	groups := groupBy(records, func(s *entity.Sale) string {
		return strconv.Itoa(int(s.Date.UTC().Month()))
	})

	out := make(valueobject.Series, 0, len(groups))
	for _, g := range groups {
		out = append(out, valueobject.Point{Label: g.key, Value: g.sum})
	}

	slices.SortFunc(out, func(a, b valueobject.Point) int {
		return monthNumber(a.Label) - monthNumber(b.Label)
	})
	return out
}

// TopProducts counts sales per product and keeps the most frequent ones.
// Ties keep first-seen order.
func TopProducts(records []*entity.Sale) valueobject.Series {
	out := count(records, func(s *entity.Sale) string { return s.Product })

	slices.SortStableFunc(out, func(a, b valueobject.Point) int {
		return b.Value.Cmp(a.Value)
	})

	if len(out) > TopProductsLimit {
		out = out[:TopProductsLimit]
	}
	return out
}

// AvgByCategory averages amounts per category in first-seen order.
func AvgByCategory(records []*entity.Sale) valueobject.Series {
	groups := groupBy(records, func(s *entity.Sale) string { return s.Category })

	out := make(valueobject.Series, 0, len(groups))
	for _, g := range groups {
		out = append(out, valueobject.Point{
			Label: g.key,
			Value: g.sum.Div(decimal.NewFromInt(int64(g.count))),
		})
	}
	return out
}

// group accumulates the sales sharing a key.
type group struct {
	key   string
	count int
	sum   decimal.Decimal
}

// groupBy groups records by key, keeping the order in which keys first appear.
func groupBy(records []*entity.Sale, keyFn func(*entity.Sale) string) []*group {
	index := make(map[string]*group)
	order := make([]*group, 0)

	for _, s := range records {
		key := keyFn(s)
		g, exists := index[key]
		if !exists {
			g = &group{key: key, sum: decimal.Zero}
			index[key] = g
			order = append(order, g)
		}
		g.count++
		g.sum = g.sum.Add(s.Amount)
	}

	return order
}

func count(records []*entity.Sale, keyFn func(*entity.Sale) string) valueobject.Series {
	groups := groupBy(records, keyFn)

	out := make(valueobject.Series, 0, len(groups))
	for _, g := range groups {
		out = append(out, valueobject.Point{Label: g.key, Value: decimal.NewFromInt(int64(g.count))})
	}
	return out
}

func regionLabel(s *entity.Sale) string {
	if s.Region == nil {
		return MissingRegionLabel
	}
	return *s.Region
}

func monthNumber(label string) int {
	n, _ := strconv.Atoi(label)
	return n
}
