package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects field-level problems and reports them together
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ValidationBuilder accumulates field errors and builds a single coded error.
// Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	err  *ValidationError
	code Code
}

// NewValidationBuilder creates a builder producing InvalidArgument errors
func NewValidationBuilder() *ValidationBuilder {
	return NewValidationBuilderWithCode(CodeInvalidArgument)
}

// NewValidationBuilderWithCode creates a builder producing errors with the given code
func NewValidationBuilderWithCode(code Code) *ValidationBuilder {
	return &ValidationBuilder{
		err:  &ValidationError{Fields: make(map[string][]string)},
		code: code,
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors reports whether any field error was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return vb.err.HasErrors()
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if !vb.err.HasErrors() {
		return nil
	}
	return New(vb.code, vb.err.Error()).WithMeta("validation_errors", vb.err.Fields)
}
