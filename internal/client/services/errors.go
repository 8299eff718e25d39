package services

import "fmt"

// ValidationError reports a locally rejected field value. It never reaches
// the network.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func errInvalidValue(field, value string) error {
	return &ValidationError{Field: field, Value: value}
}
