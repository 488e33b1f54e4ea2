package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Record field names as stored and as accepted in request bodies.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldIDNo           = "id_no"
	FieldMakerModelType = "maker_model_type"
	FieldCategory       = "category"
	FieldCondition      = "condition"
	FieldDeployment     = "deployment"
	FieldQuantity       = "quantity"
	FieldLocation       = "location"
	FieldDateReceived   = "date_received"
	FieldDescription    = "description"
)

// ValidationError reports a missing, mistyped or out-of-range field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for field with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required returns the error used for an absent required field.
func Required(field string) *ValidationError {
	return NewValidationError(field, "%s is required", field)
}

func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return Required(field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return NewValidationError(field, "%s must be at most %d characters", field, maxLen)
	}
	return nil
}
