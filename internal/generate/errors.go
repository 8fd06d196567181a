package generate

import "fmt"

// ParseError represents a failure to decode the model response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ShapeError represents a decoded response that violates its declared shape
type ShapeError struct {
	Field   string
	Message string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("shape error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("shape error: %s", e.Message)
}
