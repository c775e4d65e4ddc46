package toolcall

import (
	json "github.com/goccy/go-json"
)

// Action discriminates the two call variants.
type Action string

const (
	ActionSearch Action = "search"
	ActionAnswer Action = "answer"
)

// Bounds and default for the k field (number of results).
const (
	MinK     = 1
	MaxK     = 5
	DefaultK = 3
)

// Call is a validated, normalized tool call. There are exactly two variants:
// Search carries a mandatory query, Answer carries none. The variant is fixed
// at construction; a query can never leak into an Answer.
type Call interface {
	Action() Action
	// K returns the result count, always within [MinK, MaxK].
	K() int
	// Map returns the cleaned mapping form of the call. Feeding it back to
	// Validate yields an equal call and no errors.
	Map() map[string]any

	isCall()
}

// Search is the "search" variant. Query is trimmed and never empty.
type Search struct {
	Query string
	TopK  int
}

// Action returns ActionSearch.
func (Search) Action() Action { return ActionSearch }

func (s Search) K() int { return s.TopK }

// Map returns the cleaned mapping {action, q, k}.
func (s Search) Map() map[string]any {
	return map[string]any{
		"action": string(ActionSearch),
		"q":      s.Query,
		"k":      s.TopK,
	}
}

// MarshalJSON encodes the cleaned mapping form.
func (s Search) MarshalJSON() ([]byte, error) { return json.Marshal(s.Map()) }

func (Search) isCall() {}

// Answer is the "answer" variant. It has no query field; a q supplied in the
// raw payload is dropped without error.
type Answer struct {
	TopK int
}

// Action returns ActionAnswer.
func (Answer) Action() Action { return ActionAnswer }

func (a Answer) K() int { return a.TopK }

// Map returns the cleaned mapping {action, k}.
func (a Answer) Map() map[string]any {
	return map[string]any{
		"action": string(ActionAnswer),
		"k":      a.TopK,
	}
}

// MarshalJSON encodes the cleaned mapping form.
func (a Answer) MarshalJSON() ([]byte, error) { return json.Marshal(a.Map()) }

func (Answer) isCall() {}
