package content

import "fmt"

// ValidationError describes a single problem with a content document.
type ValidationError struct {
	Field   string // dotted path, e.g. "features.items[2].theme"
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
