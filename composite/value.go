package composite

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a single value under the engine's invariant
// convention: no digit grouping, "." as the decimal point, RFC 3339 for
// times. A nil value renders as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case time.Duration:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		if n, ok := toInt64(v); ok {
			return strconv.FormatInt(n, 10)
		}
		if n, ok := toUint64(v); ok {
			return strconv.FormatUint(n, 10)
		}
		return fmt.Sprint(v)
	}
}

// applyFormat renders a value through its format specifier. Specifiers are
// a single verb letter with an optional precision, e.g. "D2", "F1", "X8".
// Unknown specifiers and values the verb cannot apply to fall back to the
// invariant default rendering.
func applyFormat(v any, spec string) string {
	if spec == "" {
		return FormatValue(v)
	}

	verb := spec[0]
	prec := -1
	if len(spec) > 1 {
		n, err := strconv.Atoi(spec[1:])
		if err != nil {
			return FormatValue(v)
		}
		prec = n
	}

	switch verb {
	case 'D', 'd':
		if n, ok := toInt64(v); ok {
			return padDecimal(strconv.FormatInt(n, 10), prec)
		}
	case 'X':
		if n, ok := toUint64(v); ok {
			return padDecimal(strings.ToUpper(strconv.FormatUint(n, 16)), prec)
		}
	case 'x':
		if n, ok := toUint64(v); ok {
			return padDecimal(strconv.FormatUint(n, 16), prec)
		}
	case 'F', 'f', 'N', 'n':
		if f, ok := toFloat64(v); ok {
			if prec < 0 {
				prec = 2
			}
			return strconv.FormatFloat(f, 'f', prec, 64)
		}
	case 'E', 'e':
		if f, ok := toFloat64(v); ok {
			if prec < 0 {
				prec = 6
			}
			return strconv.FormatFloat(f, verb, prec, 64)
		}
	case 'P', 'p':
		if f, ok := toFloat64(v); ok {
			if prec < 0 {
				prec = 2
			}
			return strconv.FormatFloat(f*100, 'f', prec, 64) + "%"
		}
	}

	return FormatValue(v)
}

// padDecimal left-pads digits with zeros to the requested width, keeping a
// leading minus sign in front of the padding.
func padDecimal(digits string, width int) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	for len(digits) < width {
		digits = "0" + digits
	}
	if neg {
		return "-" + digits
	}
	return digits
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	default:
		return 0, false
	}
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		if n, ok := toInt64(v); ok {
			return float64(n), true
		}
		return 0, false
	}
}
