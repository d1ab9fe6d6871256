// Package error defines domain-specific errors for the Sales Dashboard application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrRecordServiceUnavailable is returned when the Record Service cannot be reached.
	ErrRecordServiceUnavailable = errors.New("record service unavailable")

	// ErrUnexpectedRecordServiceStatus is returned when the Record Service answers with an unexpected status.
	ErrUnexpectedRecordServiceStatus = errors.New("unexpected record service status")

	// ErrMalformedRecordServiceResponse is returned when a Record Service payload cannot be decoded.
	ErrMalformedRecordServiceResponse = errors.New("malformed record service response")

	// ErrInvalidCriteriaValue is returned when a criteria field receives a value outside its enum.
	ErrInvalidCriteriaValue = errors.New("invalid criteria value")

	// ErrInvalidDateFormat is returned when a date bound has an invalid format.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCriteriaValue DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidDateFormat    DashboardErrorCode = "DSH-010002"

	// Upstream errors (02XXXX)
	ErrCodeRecordServiceUnavailable DashboardErrorCode = "DSH-020001"
	ErrCodeUnexpectedStatus         DashboardErrorCode = "DSH-020002"
	ErrCodeMalformedResponse        DashboardErrorCode = "DSH-020003"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
