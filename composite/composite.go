// Package composite implements a positional composite-format engine for
// format strings of the form "{index[,alignment][:format]}".
//
// The engine renders every value under a single invariant convention:
// numbers use "." as the decimal point with no digit grouping, times render
// as RFC 3339, and booleans as "true"/"false", regardless of the host
// locale. Escaped braces "{{" and "}}" produce single literal braces. Text
// that looks like a format item but is not one (a stray "{", a non-numeric
// index) is passed through as literal text; referencing an argument index
// that was not supplied is an error.
package composite

import (
	"strconv"
	"strings"
)

// formatItem is one parsed "{index[,alignment][:format]}" occurrence.
type formatItem struct {
	index     int
	alignment int
	spec      string
}

// Sprintf renders a composite format string against a positional argument
// list. It returns an *IndexError when a format item references an index
// with no corresponding argument.
func Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(format))

	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			sb.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			sb.WriteByte('}')
			i += 2
		case c == '{':
			item, next, ok := scanItem(format, i)
			if !ok {
				sb.WriteByte('{')
				i++
				continue
			}
			if item.index >= len(args) {
				return "", &IndexError{Index: item.index, ArgCount: len(args)}
			}
			writeAligned(&sb, applyFormat(args[item.index], item.spec), item.alignment)
			i = next
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

// scanItem parses a format item starting at the '{' at position start.
// It returns the parsed item and the position just past the closing '}'.
// ok is false when the text is not a well-formed item, in which case the
// caller treats the brace as literal text.
func scanItem(format string, start int) (item formatItem, next int, ok bool) {
	i := start + 1

	digits := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	if i == digits {
		return formatItem{}, 0, false
	}
	index, err := strconv.Atoi(format[digits:i])
	if err != nil {
		return formatItem{}, 0, false
	}
	item.index = index

	if i < len(format) && format[i] == ',' {
		i++
		sign := 1
		if i < len(format) && format[i] == '-' {
			sign = -1
			i++
		}
		digits = i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i == digits {
			return formatItem{}, 0, false
		}
		width, err := strconv.Atoi(format[digits:i])
		if err != nil {
			return formatItem{}, 0, false
		}
		item.alignment = sign * width
	}

	if i < len(format) && format[i] == ':' {
		i++
		spec := i
		for i < len(format) && format[i] != '}' {
			i++
		}
		item.spec = format[spec:i]
	}

	if i >= len(format) || format[i] != '}' {
		return formatItem{}, 0, false
	}

	return item, i + 1, true
}

// writeAligned writes s padded with spaces to the absolute alignment width.
// Positive alignment right-aligns, negative left-aligns, zero writes s as-is.
func writeAligned(sb *strings.Builder, s string, alignment int) {
	width := alignment
	if width < 0 {
		width = -width
	}
	pad := width - len([]rune(s))

	if alignment > 0 && pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(s)
	if alignment < 0 && pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
}
