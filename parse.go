package toolcall

import (
	json "github.com/goccy/go-json"
)

// ParseAndValidate deserializes argsJSON and runs Validate. All failures come
// back as a *ClientError so the caller can pass the message to the LLM for
// self-correction: a body that is not a JSON object yields a parse
// ClientError, and validation problems yield a ClientError that carries the
// individual messages in Errors and wraps ErrValidation for errors.Is.
func ParseAndValidate(argsJSON []byte) (Call, error) {
	var payload map[string]any
	if err := json.Unmarshal(argsJSON, &payload); err != nil {
		return nil, wrapJSONParseError(err)
	}
	call, errs := Validate(payload)
	if len(errs) > 0 {
		return nil, wrapValidationErrors(errs)
	}
	return call, nil
}
