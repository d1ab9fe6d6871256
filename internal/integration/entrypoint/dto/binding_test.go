package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestBindingIssues(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		body       string
		wantFields []string
		wantMsgs   []string
	}{
		{
			name:       "create with every tagged field failing",
			request:    &CreateSaleRequest{},
			body:       `{"product":"ab","category":""}`,
			wantFields: []string{"product", "category", "amount"},
			wantMsgs:   []string{"product must have at least 3 characters", "category is required", "amount is required"},
		},
		{
			name:       "update with empty category",
			request:    &UpdateSaleRequest{},
			body:       `{"category":""}`,
			wantFields: []string{"category"},
			wantMsgs:   []string{"category is required"},
		},
		{
			name:    "update without fields",
			request: &UpdateSaleRequest{},
			body:    `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := json.Unmarshal([]byte(tt.body), tt.request); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}

			err := binding.Validator.ValidateStruct(tt.request)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}

			issues, ok := BindingIssues(err)
			if !ok {
				t.Fatalf("BindingIssues(%v) reported a non validation error", err)
			}
			if len(issues) != len(tt.wantFields) {
				t.Fatalf("issues = %+v, want fields %v", issues, tt.wantFields)
			}
			for i, issue := range issues {
				if issue.Field != tt.wantFields[i] || issue.Message != tt.wantMsgs[i] {
					t.Errorf("issue %d = %+v, want %s: %s", i, issue, tt.wantFields[i], tt.wantMsgs[i])
				}
			}
		})
	}
}

func TestBindingIssues_IgnoresOtherErrors(t *testing.T) {
	if _, ok := BindingIssues(errors.New("unexpected EOF")); ok {
		t.Error("a decode error should not be reported as field issues")
	}
}
