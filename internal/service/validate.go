package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// V validates request payloads. Field names in errors follow the json tags.
var V = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError reports payload problems keyed by field path.
type ValidationError struct {
	Details map[string]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field, rule := range e.Details {
		fields = append(fields, field+": "+rule)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// validateStruct runs V against payload and converts failures into a *ValidationError.
func validateStruct(payload any) error {
	err := V.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate payload: %w", err)
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe.Namespace())] = rule(fe)
	}
	return &ValidationError{Details: details}
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func rule(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
