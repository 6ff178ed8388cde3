package duration

import (
	"errors"
	"fmt"
)

// InvalidFormatError is the single error kind returned by this package.
// It covers malformed duration strings, arithmetic overflow, and
// normalization overflow; callers never need to distinguish those cases
// structurally. The message carries the offending input when one exists.
type InvalidFormatError struct {
	Reason string
	Input  string // raw input text, empty for non-textual failures
}

func (e *InvalidFormatError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: input %q", e.Reason, e.Input)
}

// IsInvalidFormat reports whether err is (or wraps) an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	var ife *InvalidFormatError
	return errors.As(err, &ife)
}

func invalidf(input, format string, args ...any) error {
	return &InvalidFormatError{Reason: fmt.Sprintf(format, args...), Input: input}
}
