package toolcall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapErr wraps an error for Unwrap-chain tests.
type wrapErr struct{ err error }

func (w wrapErr) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapErr) Unwrap() error { return w.err }

func TestClientError(t *testing.T) {
	tests := []struct {
		name   string
		err    *ClientError
		expect string
	}{
		{"with reason", &ClientError{Reason: "bad enum"}, "invalid tool input: bad enum"},
		{"empty reason", &ClientError{Reason: ""}, "invalid tool input: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func TestErrorsIs_As(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isValid  bool // errors.Is(err, ErrValidation)
		asClient bool
	}{
		{"bare ClientError", &ClientError{Reason: "x"}, false, true},
		{"validation wrap", wrapValidationErrors([]string{msgActionInvalid}), true, true},
		{"parse wrap", wrapJSONParseError(errors.New("unexpected EOF")), false, true},
		{"chain around validation wrap", wrapErr{err: wrapValidationErrors([]string{msgKNotWhole})}, true, true},
		{"unrelated error", errors.New("boom"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, errors.Is(tt.err, ErrValidation), "errors.Is ErrValidation")
			assert.Equal(t, tt.asClient, IsClientError(tt.err), "IsClientError")
		})
	}
}

func TestWrapValidationErrors(t *testing.T) {
	err := wrapValidationErrors([]string{msgQueryInvalid, msgKOutOfRange})
	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, msgQueryInvalid+"; "+msgKOutOfRange, ce.Reason)
	assert.Equal(t, []string{msgQueryInvalid, msgKOutOfRange}, ce.Errors)
	assert.Same(t, ErrValidation, ce.Err)
}
