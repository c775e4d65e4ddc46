package toolcall

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by ClientError when a payload fails validation.
// Use errors.Is to check.
var ErrValidation = errors.New("validation failed")

// Validation messages, one per decision point. Validate returns these
// verbatim; downstream consumers match on them.
const (
	msgActionInvalid = "action must be 'search' or 'answer'"
	msgQueryInvalid  = "q must be a non-empty string when action is 'search'"
	msgKNotInteger   = "k must be a valid integer"
	msgKNotWhole     = "k must be a whole number"
	msgKOutOfRange   = "k must be an integer in range [1,5]"
)

// ClientError is an error that should be sent back to the LLM for
// self-correction (e.g. invalid JSON, bad enum value, out-of-range k).
// Do not expose stack traces or internal details to the LLM.
// Errors holds the individual validation messages when the failure came from
// Validate; it is empty for JSON parse failures.
type ClientError struct {
	Reason string
	Errors []string
	Err    error // wrapped sentinel for errors.Is/errors.As
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid tool input: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. errors.Is(err, ErrValidation)).
func (e *ClientError) Unwrap() error { return e.Err }

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// wrapJSONParseError returns a ClientError for JSON unmarshal failures so
// parse errors reported by ParseAndValidate are consistent with validation errors.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error()}
}

// wrapValidationErrors converts the message list from Validate into a single
// ClientError wrapping ErrValidation.
func wrapValidationErrors(errs []string) error {
	return &ClientError{
		Reason: strings.Join(errs, "; "),
		Errors: errs,
		Err:    ErrValidation,
	}
}
