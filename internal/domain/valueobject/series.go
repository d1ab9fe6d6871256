package valueobject

import "github.com/shopspring/decimal"

// Point is one labelled value of a chart series.
type Point struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Series is an ordered sequence of chart points.
type Series []Point

// Max returns the largest value of the series, or zero when empty.
func (s Series) Max() decimal.Decimal {
	top := decimal.Zero
	for i, p := range s {
		if i == 0 || p.Value.GreaterThan(top) {
			top = p.Value
		}
	}
	return top
}
