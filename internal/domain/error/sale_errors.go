// Package error defines domain-specific errors for the Sales Dashboard application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidSale is returned when a sale payload fails validation.
	ErrInvalidSale = errors.New("invalid sale")

	// ErrInvalidSaleID is returned when a sale identifier is not a positive integer.
	ErrInvalidSaleID = errors.New("invalid sale id")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSale       SaleErrorCode = "SAL-010001"
	ErrCodeInvalidSaleID     SaleErrorCode = "SAL-010002"
	ErrCodeMalformedSaleBody SaleErrorCode = "SAL-010003"

	// Lookup errors (02XXXX)
	ErrCodeSaleNotFound SaleErrorCode = "SAL-020001"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited SaleErrorCode = "SAL-030001"
)

// FieldIssue describes a single field that failed validation.
type FieldIssue struct {
	Field   string
	Message string
}

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
	Issues  []FieldIssue
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewSaleValidationError creates a SaleError carrying every failing field.
func NewSaleValidationError(issues []FieldIssue) *SaleError {
	return &SaleError{
		Code:    ErrCodeInvalidSale,
		Message: "sale payload failed validation",
		Err:     ErrInvalidSale,
		Issues:  issues,
	}
}

// NewSaleNotFoundError creates a SaleError for a missing sale.
func NewSaleNotFoundError() *SaleError {
	return NewSaleError(ErrCodeSaleNotFound, "sale not found", ErrSaleNotFound)
}
