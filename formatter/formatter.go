// Package formatter parses and formats message templates with named
// placeholders for structured logging.
//
// A template such as "User {UserId} logged in from {IpAddress}" is parsed
// once into a positional form ("User {0} logged in from {1}") plus the
// ordered list of placeholder names. From that single parse the formatter
// offers two views of an argument list: the rendered display string
// (Format) and the name/value pairs a structured-logging backend indexes
// events by (GetValue, GetValues). Placeholders carry optional alignment
// and format-specifier text, "{Count,5:D2}", which is forwarded untouched
// to the positional engine in package composite.
package formatter

import (
	"reflect"
	"strings"
	"sync"

	"github.com/d-saravanan/logvalues/composite"
)

const (
	// NullValue is the display text substituted for nil arguments.
	NullValue = "(null)"

	// OriginalFormatKey names the synthetic trailing pair that carries
	// the raw, unparsed template.
	OriginalFormatKey = "{OriginalFormat}"
)

// Value is one extracted name/value pair.
type Value struct {
	Name  string
	Value any
}

// MessageFormatter wraps a single message template for its lifetime. The
// template is held unparsed until the first call to ValueNames, Format,
// GetValue or GetValues; the parse runs exactly once and its result is
// cached, so concurrent first use is safe.
type MessageFormatter struct {
	originalFormat string

	parseOnce  sync.Once
	format     string
	valueNames []string
}

// New creates a formatter for the given message template. The template is
// not validated: malformed placeholder syntax degrades to literal text at
// parse time rather than failing.
func New(format string) *MessageFormatter {
	return &MessageFormatter{originalFormat: format}
}

func (f *MessageFormatter) parse() {
	f.parseOnce.Do(func() {
		f.format, f.valueNames = parseFormat(f.originalFormat)
	})
}

// OriginalFormat returns the raw template as supplied to New.
func (f *MessageFormatter) OriginalFormat() string {
	return f.originalFormat
}

// ValueNames returns the placeholder names in first-encountered order.
// Repeated placeholder names appear once per occurrence.
func (f *MessageFormatter) ValueNames() []string {
	f.parse()
	return f.valueNames
}

// Format renders the template against the argument list. Nil arguments
// render as "(null)"; slice and array arguments are flattened to their
// elements joined with ", ". The error is non-nil when the template
// references more arguments than were supplied.
func (f *MessageFormatter) Format(values ...any) (string, error) {
	f.parse()

	args := values
	copied := false
	for i, v := range values {
		formatted, changed := formatArgument(v)
		if !changed {
			continue
		}
		if !copied {
			args = make([]any, len(values))
			copy(args, values)
			copied = true
		}
		args[i] = formatted
	}

	return composite.Sprintf(f.format, args...)
}

// GetValue returns the name/value pair at index. Valid indexes run from 0
// through len(ValueNames()) inclusive: the final index is one past the
// known names and returns the synthetic ("{OriginalFormat}", raw template)
// pair. Any other index returns a *RangeError.
func (f *MessageFormatter) GetValue(values []any, index int) (Value, error) {
	f.parse()

	if index < 0 || index > len(f.valueNames) {
		return Value{}, &RangeError{Index: index, Count: len(f.valueNames)}
	}
	if index < len(f.valueNames) {
		return Value{Name: f.valueNames[index], Value: values[index]}, nil
	}
	return Value{Name: OriginalFormatKey, Value: f.originalFormat}, nil
}

// GetValues returns the aligned name/value pairs followed by the synthetic
// ("{OriginalFormat}", raw template) pair. The result always has
// len(values)+1 entries with the synthetic pair last; when more values
// than names are supplied the intervening entries stay zero-valued.
func (f *MessageFormatter) GetValues(values []any) []Value {
	f.parse()

	pairs := make([]Value, len(values)+1)
	for i := range f.valueNames {
		pairs[i] = Value{Name: f.valueNames[i], Value: values[i]}
	}
	pairs[len(pairs)-1] = Value{Name: OriginalFormatKey, Value: f.originalFormat}
	return pairs
}

// formatArgument pre-processes one argument before positional rendering.
// changed reports whether the returned value replaces the original. Nil
// becomes the null marker. Strings pass through even though they are
// iterable. Slices and arrays flatten to their elements joined with ", ",
// nil elements rendering as the null marker.
func formatArgument(v any) (formatted any, changed bool) {
	if v == nil {
		return NullValue, true
	}
	if _, ok := v.(string); ok {
		return v, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v, false
	}

	var sb strings.Builder
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		elem := rv.Index(i)
		if isNilElement(elem) {
			sb.WriteString(NullValue)
			continue
		}
		sb.WriteString(composite.FormatValue(elem.Interface()))
	}
	return sb.String(), true
}

func isNilElement(elem reflect.Value) bool {
	switch elem.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return elem.IsNil()
	default:
		return false
	}
}
