package toolcall

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// validateK applies the k rules. The raw value is classified by runtime shape
// (absent, string, number, anything else) and each class has its own path:
//
//   - absent or explicit null takes DefaultK;
//   - strings are trimmed and parsed as a number, a failed parse is
//     msgKNotInteger;
//   - numbers (parsed or native, integer or floating point) must be whole,
//     otherwise msgKNotWhole;
//   - whole numbers must be within [MinK, MaxK], otherwise msgKOutOfRange;
//   - any other type (bool, list, object) is msgKNotInteger.
//
// The returned message is empty when k is valid.
func validateK(v any) (int, string) {
	f, msg := coerceKNumber(v)
	if msg != "" {
		return 0, msg
	}
	// NaN and infinities are reachable via string input ("nan", "inf");
	// neither is a whole number.
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, msgKNotWhole
	}
	// Range is checked on the float so oversized whole inputs ("1e300")
	// report range instead of overflowing the int conversion.
	if f < MinK || f > MaxK {
		return 0, msgKOutOfRange
	}
	return int(f), ""
}

// coerceKNumber maps the raw k value to a candidate float64. Absent keys and
// explicit nulls coerce to DefaultK. json.Number counts as the string form
// since it arrives as unparsed digits.
func coerceKNumber(v any) (float64, string) {
	switch k := v.(type) {
	case nil:
		return DefaultK, ""
	case string:
		return parseKString(k)
	case json.Number:
		return parseKString(k.String())
	case float64:
		return k, ""
	case float32:
		return float64(k), ""
	case int:
		return float64(k), ""
	case int8:
		return float64(k), ""
	case int16:
		return float64(k), ""
	case int32:
		return float64(k), ""
	case int64:
		return float64(k), ""
	case uint:
		return float64(k), ""
	case uint8:
		return float64(k), ""
	case uint16:
		return float64(k), ""
	case uint32:
		return float64(k), ""
	case uint64:
		return float64(k), ""
	default:
		return 0, msgKNotInteger
	}
}

// parseKString trims and parses the string form of k.
func parseKString(s string) (float64, string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, msgKNotInteger
	}
	return f, ""
}
