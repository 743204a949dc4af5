package formguard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// absentValue marks a field key missing from the input map. Absence is not
// an error by itself; only the required rule rejects it.
type absentValue struct{}

var absent any = absentValue{}

// isEmpty reports whether a value counts as empty under the optional-field
// policy: absent, nil, empty string, numeric zero, false, or a zero-length
// container. A nil or zero-value file record is empty too.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil, absentValue:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case *FileInput:
		return v == nil || (v.Name == "" && v.TempPath == "")
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	if n, ok := numericValue(value); ok {
		return n == 0
	}
	return false
}

// numericValue reports whether a value is numeric-looking and returns its
// magnitude. Numeric-looking covers every numeric Go type plus strings that
// parse as a number; such strings always take the numeric branch of min/max,
// so "25" compares as a magnitude, never as a two-character string.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		// ParseFloat also swallows hex floats and digit-group underscores;
		// only plain decimal literals count as numeric-looking, everything
		// else stays a string. NaN in particular compares false against
		// every bound and would satisfy contradictory min/max rules.
		if strings.ContainsAny(v, "xXpP_") {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// isIntegral applies the strict integer filter: integer types pass, floats
// pass only when whole, and strings must be all digits with an optional
// sign — no whitespace, no decimal point.
func isIntegral(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case float64:
		return v == math.Trunc(v)
	case string:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	}
	return false
}

// displayString renders a scalar for membership checks and messages.
func displayString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case absentValue:
		return ""
	case *FileInput:
		if v == nil {
			return ""
		}
		return v.Name
	}
	return fmt.Sprint(value)
}
