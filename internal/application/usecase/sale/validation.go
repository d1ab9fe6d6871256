// Package sale contains the Record Service use cases.
package sale

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

const (
	// MinProductLength is the minimum number of characters of a product name.
	MinProductLength = 3
)

// fieldOrder is the order issues are reported in.
var fieldOrder = []string{"product", "category", "amount", "region", "date"}

// ValidateCreate returns every issue of a create payload.
func ValidateCreate(input CreateSaleInput) []domainerror.FieldIssue {
	var problems issues
	problems.checkCreate(input)
	return problems
}

// ValidateUpdate returns every issue of the fields present in an update payload.
func ValidateUpdate(input UpdateSaleInput) []domainerror.FieldIssue {
	var problems issues
	problems.checkUpdate(input)
	return problems
}

// MergeIssues combines two issue lists, keeping one issue per field (the first seen),
// ordered by field.
func MergeIssues(first, second []domainerror.FieldIssue) []domainerror.FieldIssue {
	seen := make(map[string]bool, len(first)+len(second))
	merged := make([]domainerror.FieldIssue, 0, len(first)+len(second))
	for _, issue := range append(append([]domainerror.FieldIssue{}, first...), second...) {
		if seen[issue.Field] {
			continue
		}
		seen[issue.Field] = true
		merged = append(merged, issue)
	}

	slices.SortStableFunc(merged, func(a, b domainerror.FieldIssue) int {
		return fieldRank(a.Field) - fieldRank(b.Field)
	})
	return merged
}

func fieldRank(field string) int {
	if i := slices.Index(fieldOrder, field); i >= 0 {
		return i
	}
	return len(fieldOrder)
}

// issues collects field validation failures in the order they are found.
type issues []domainerror.FieldIssue

func (i *issues) add(field, message string) {
	*i = append(*i, domainerror.FieldIssue{Field: field, Message: message})
}

// err returns a validation error when at least one issue was collected.
func (i issues) err() error {
	if len(i) == 0 {
		return nil
	}
	return domainerror.NewSaleValidationError(i)
}

// checkCreate validates a create payload and returns its parsed date, if any.
func (i *issues) checkCreate(input CreateSaleInput) *time.Time {
	i.checkProduct(input.Product)
	i.checkCategory(input.Category)
	i.checkAmount(input.Amount)
	return i.parseDate(input.Date)
}

// checkUpdate validates the present fields of an update payload and returns its parsed date, if any.
func (i *issues) checkUpdate(input UpdateSaleInput) *time.Time {
	if input.Product != nil {
		i.checkProduct(*input.Product)
	}
	if input.Category != nil {
		i.checkCategory(*input.Category)
	}
	if input.Amount != nil {
		i.checkAmount(input.Amount)
	}
	return i.parseDate(input.Date)
}

func (i *issues) checkProduct(product string) {
	if utf8.RuneCountInString(product) < MinProductLength {
		i.add("product", fmt.Sprintf("product must have at least %d characters", MinProductLength))
	}
}

func (i *issues) checkCategory(category string) {
	if category == "" {
		i.add("category", "category is required")
	}
}

func (i *issues) checkAmount(amount *decimal.Decimal) {
	if amount == nil {
		i.add("amount", "amount is required")
		return
	}
	if !amount.IsPositive() {
		i.add("amount", "amount must be positive")
	}
}

// parseDate returns nil for an absent date and records an issue for an unparsable one.
func (i *issues) parseDate(raw *string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	t, err := valueobject.ParseDate(strings.TrimSpace(*raw))
	if err != nil {
		i.add("date", "date must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		return nil
	}
	return &t
}
