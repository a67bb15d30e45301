package dictionary

import (
	"errors"
	"fmt"
)

// LoadError reports a failure to read or parse dictionary input: a missing
// or unreadable file, malformed YAML, or a required field that is absent.
// Path is set when the error is tied to a specific file; Err carries the
// underlying low-level cause, if any.
type LoadError struct {
	Message string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports structurally well-formed input that violates a
// domain invariant, such as duplicate value ids within an enumeration or an
// invalid dictionary version.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsLoadError reports whether any error in err's chain is a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsValidationError reports whether any error in err's chain is a
// *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// loadErrorf builds a LoadError without file context, for missing required
// fields detected while parsing an individual record.
func loadErrorf(format string, args ...any) *LoadError {
	return &LoadError{Message: fmt.Sprintf(format, args...)}
}

// validationErrorf builds a ValidationError.
func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
