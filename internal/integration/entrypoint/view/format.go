// Package view builds the HTML the dashboard serves: view models, formatting and templates.
package view

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const displayDateLayout = "2006-01-02"

// FormatAmount renders a currency amount with thousands separators.
// Whole amounts have no decimals; others keep two.
func FormatAmount(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return "$" + humanize.Comma(amount.IntPart())
	}
	return "$" + humanize.CommafWithDigits(amount.Round(2).InexactFloat64(), 2)
}

// FormatDate renders a record date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(displayDateLayout)
}

// FormatTimestamp renders a full timestamp for the detail page.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

// dateInputValue renders an optional bound the way a date input expects it.
func dateInputValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(displayDateLayout)
}
