// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"

	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Code    string          `json:"code,omitempty"`
	Details string          `json:"details,omitempty"`
	Issues  []IssueResponse `json:"issues,omitempty"`
}

// IssueResponse describes one field that failed validation.
type IssueResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToIssueResponses converts domain field issues to their response form.
func ToIssueResponses(issues []domainerror.FieldIssue) []IssueResponse {
	if len(issues) == 0 {
		return nil
	}
	out := make([]IssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = IssueResponse{Field: issue.Field, Message: issue.Message}
	}
	return out
}

// NullableString distinguishes an absent field from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the field was present, and its value if not null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON writes the value or null.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
