package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *Error via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Category classifies malformed input
type Category string

const (
	CategoryInvalidDate  Category = "invalid_date"
	CategoryInvalidRange Category = "invalid_range"
	CategoryInvalidValue Category = "invalid_value"
)

// Error is returned by the engine when its input cannot produce a meaningful
// result. Normal outcomes (nothing fits, no history) are never errors.
type Error struct {
	Category Category
	Field    string
	Message  string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Category, e.Field, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

// Errorf builds a categorized validation error
func Errorf(category Category, field, format string, args ...interface{}) *Error {
	return &Error{
		Category: category,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// CategoryOf returns the category of a validation error anywhere in err's chain.
func CategoryOf(err error) (Category, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Category, true
	}
	return "", false
}
