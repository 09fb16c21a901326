package validators

import (
	"errors"
	"maps"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")
)

// ValidationError reports which request fields are invalid.
// Fields maps the JSON field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FieldsOf returns a copy of the field messages carried by err, or nil if
// err is not a validation error.
func FieldsOf(err error) map[string]string {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil
	}

	return maps.Clone(ve.Fields)
}
