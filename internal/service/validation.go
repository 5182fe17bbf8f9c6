package service

import "fmt"

// ValidationError reports an input that fails shape or range
// constraints. It is raised before any persistence access and carries
// the offending field so callers can surface per-field messages.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
