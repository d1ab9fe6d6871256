package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// BindingIssues converts binding tag failures into field issues.
// It reports false when err is not a validation failure, e.g. malformed JSON.
func BindingIssues(err error) ([]domainerror.FieldIssue, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	issues := make([]domainerror.FieldIssue, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field())
		issues = append(issues, domainerror.FieldIssue{Field: field, Message: bindingMessage(field, fe)})
	}
	return issues, true
}

func bindingMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Param() == "1" {
			return field + " is required"
		}
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
