package toolcall

import (
	"strings"
)

// Validate checks payload against the tool-call schema and returns the
// normalized call plus a list of human-readable problems. The result is
// all-or-nothing: either (call, nil) with every field populated per the
// schema, or (nil, errs) with at least one entry. Unknown keys are dropped
// silently. No input shape causes a panic; every failure, including wrong
// types and missing keys, becomes an entry in errs.
//
// Fields are evaluated in order action, q, k. A field failing does not stop
// the others from being checked, so one call can report several problems;
// the only exception is q, which is inspected only when action resolved to
// "search" (an Answer call ignores q entirely, without error).
func Validate(payload map[string]any) (Call, []string) {
	var errs []string

	action, ok := validateAction(payload["action"])
	if !ok {
		errs = append(errs, msgActionInvalid)
	}

	var query string
	if ok && action == ActionSearch {
		q, qok := validateQuery(payload["q"])
		if !qok {
			errs = append(errs, msgQueryInvalid)
		}
		query = q
	}

	k, kmsg := validateK(payload["k"])
	if kmsg != "" {
		errs = append(errs, kmsg)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if action == ActionSearch {
		return Search{Query: query, TopK: k}, nil
	}
	return Answer{TopK: k}, nil
}

// validateAction trims a string value and accepts exactly the two enum
// literals. Missing keys, nulls, and non-string values are invalid.
func validateAction(v any) (Action, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	switch a := Action(strings.TrimSpace(s)); a {
	case ActionSearch, ActionAnswer:
		return a, true
	}
	return "", false
}

// validateQuery requires a string that is non-empty after trimming.
func validateQuery(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
