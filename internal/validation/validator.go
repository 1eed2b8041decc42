// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

// Package validation wraps go-playground/validator v10 behind a thread-safe
// singleton and translates field errors into the VALIDATION_ERROR format the
// HTTP layer returns.
//
// It validates two kinds of input:
//
//   - catalog entries at load time (struct tags on catalog.Song)
//   - query parameters whose bounds come from configuration (ValidateVar)
//
// Example:
//
//	if err := validation.ValidateVar("count", count, "min=1,max=5"); err != nil {
//	    apiErr := err.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single field failure.
type ValidationError struct {
	field   string
	tag     string
	value   interface{}
	message string
}

// Field returns the name of the field that failed.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the failing validation tag.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Error returns a human-readable message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects every field failure of one validation call.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field failures.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error joins all field messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].Error())
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors api.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failures into the VALIDATION_ERROR response shape.
func (ve *RequestValidationError) ToAPIError() *APIError {
	errs := ve.Errors()
	switch len(errs) {
	case 0:
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}
	case 1:
		err := errs[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
			Details: map[string]interface{}{
				"field": err.Field(),
				"tag":   err.Tag(),
				"value": err.Value(),
			},
		}
	}

	fields := make([]map[string]interface{}, len(errs))
	messages := make([]string, len(errs))
	for i := range errs {
		err := &errs[i]
		fields[i] = map[string]interface{}{
			"field":   err.Field(),
			"tag":     err.Tag(),
			"message": err.Error(),
		}
		messages[i] = fmt.Sprintf("%s: %s", err.Field(), err.Error())
	}

	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates s against its `validate` struct tags.
// Returns nil when s is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	return convert(GetValidator().Struct(s), "")
}

// ValidateVar validates a single value against tag. The field name is used
// in messages because the validator has no struct field to report.
func ValidateVar(field string, value interface{}, tag string) *RequestValidationError {
	return convert(GetValidator().Var(value, tag), field)
}

func convert(err error, field string) *RequestValidationError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	out := make([]ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		name := fe.Field()
		if name == "" {
			name = field
		}
		out[i] = ValidationError{
			field:   name,
			tag:     fe.Tag(),
			value:   fe.Value(),
			message: translateError(fe, name),
		}
	}
	return &RequestValidationError{errors: out}
}

// errorMessageTemplates maps tags without parameters to messages.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"number":   "%s must be a number",
}

// errorMessageWithParam maps tags with parameters to messages.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError, field string) string {
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	isString := fe.Kind().String() == "string"
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
