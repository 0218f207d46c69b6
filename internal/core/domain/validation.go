package domain

import "fmt"

// Validation error codes.
const (
	CodeRequiredField     = "REQUIRED_FIELD"
	CodeMaxLength         = "MAX_LENGTH"
	CodeInvalidEnum       = "INVALID_ENUM"
	CodeInvalidValue      = "INVALID_VALUE"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeMissingDependency = "MISSING_DEPENDENCY"
)

// ValidationError is a single pre-flight problem, always attributable to an
// entity and a field.
type ValidationError struct {
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Field      string     `json:"field"`
	Code       string     `json:"code"`
	Message    string     `json:"message"`
	Value      any        `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.EntityType, e.EntityID, e.Field, e.Message)
}
