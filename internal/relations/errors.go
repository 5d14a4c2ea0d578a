// File: internal/relations/errors.go
package relations

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is matched (via errors.Is) by every usage error the
// engine returns. Usage errors are raised before any measurement.
var ErrInvalidOption = errors.New("invalid option")

// OptionError describes a misconfigured option passed to an engine operation.
type OptionError struct {
	Option string
	Value  interface{}
	Reason string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%v: %s", e.Option, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidOption) classify usage errors.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

func optionError(option string, value interface{}, reason string) error {
	return &OptionError{Option: option, Value: value, Reason: reason}
}
