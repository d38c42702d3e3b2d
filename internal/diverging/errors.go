package diverging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for out-of-range or nonsensical palette
	// parameters. Match with errors.Is; the concrete error is a
	// *ParameterError naming the field.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnresolvedPreset is returned when a preset name is not known to the
	// resolver.
	ErrUnresolvedPreset = errors.New("unresolved preset")
)

// ParameterError describes a single rejected parameter.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field string, value any, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason}
}
