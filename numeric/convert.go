package numeric

import (
	"math/big"
	"strconv"
	"strings"
)

// Scalar conversions over the closed set of Ember value kinds. These
// back the compiler's toInt/toFloat/toDouble/toBool/toString builtins;
// the dispatch the compiler resolves per static type happens here over
// a type switch.

// ToInt converts a scalar to a host int. String conversion parses the
// longest leading decimal integer, yielding zero when there is none.
func ToInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case float32:
		return int(x)
	case float64:
		return int(x)
	case string:
		return leadingInt(x)
	default:
		return 0
	}
}

// ToFloat converts a scalar to a 32-bit float.
func ToFloat(v any) float32 {
	return float32(ToDouble(v))
}

// ToDouble converts a scalar to a 64-bit float. String conversion
// parses the longest leading decimal number, yielding zero when there
// is none.
func ToDouble(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case float32:
		return float64(x)
	case float64:
		return x
	case string:
		return leadingFloat(x)
	default:
		return 0
	}
}

// ToBool converts a scalar to a bool. Strings are true only for "true"
// and "1"; numerics are true when nonzero.
func ToBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x == "true" || x == "1"
	default:
		return false
	}
}

// ToString renders a scalar as text. Floats use FloatDigits fractional
// digits and decimals use DecDigits, matching the print facility.
func ToString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case float32:
		return FormatFloat(x)
	case float64:
		return FormatDouble(x)
	case *big.Int:
		return FormatInt(x)
	case *big.Float:
		return FormatDec(x)
	default:
		return ""
	}
}

// leadingInt parses the longest leading base-10 integer of s, with an
// optional sign.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// leadingFloat parses the longest leading decimal number of s.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
