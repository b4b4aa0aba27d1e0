package formatter

import (
	"sync"
	"testing"

	"github.com/d-saravanan/logvalues/composite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name   string
		format string
		values []any
		want   string
	}{
		{
			name:   "single placeholder",
			format: "{Name}",
			values: []any{"x"},
			want:   "x",
		},
		{
			name:   "mixed text and placeholders",
			format: "User {UserId} logged in from {IpAddress}",
			values: []any{int64(42), "10.0.0.1"},
			want:   "User 42 logged in from 10.0.0.1",
		},
		{
			name:   "escaped braces render literally",
			format: "{{escaped}}",
			values: nil,
			want:   "{escaped}",
		},
		{
			name:   "repeated name consumes two arguments",
			format: "{A} and {A}",
			values: []any{1, 2},
			want:   "1 and 2",
		},
		{
			name:   "alignment and format spec",
			format: "{Count,5:D2}",
			values: []any{7},
			want:   "   07",
		},
		{
			name:   "nil renders as null marker",
			format: "value: {Value}",
			values: []any{nil},
			want:   "value: (null)",
		},
		{
			name:   "collection flattens with null elements",
			format: "{Items}",
			values: []any{[]any{1, nil, 3}},
			want:   "1, (null), 3",
		},
		{
			name:   "string slice flattens",
			format: "tags: {Tags}",
			values: []any{[]string{"a", "b"}},
			want:   "tags: a, b",
		},
		{
			name:   "string is not treated as a collection",
			format: "{Word}",
			values: []any{"abc"},
			want:   "abc",
		},
		{
			name:   "braces with placeholder both sides escaped",
			format: "{{{X}}}",
			values: []any{"v"},
			want:   "{v}",
		},
		{
			name:   "no placeholders ignores values",
			format: "plain text",
			values: nil,
			want:   "plain text",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.format).Format(tc.values...)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatShortTemplates(t *testing.T) {
	// Templates under three characters are literals: no names, rendered
	// unchanged even when they contain braces.
	for _, format := range []string{"", "{", "{}", "ab"} {
		f := New(format)

		assert.Empty(t, f.ValueNames())

		got, err := f.Format()
		require.NoError(t, err)
		assert.Equal(t, format, got)
	}
}

func TestFormatMissingArgument(t *testing.T) {
	_, err := New("{A} and {B}").Format("only one")

	require.Error(t, err)
	var indexErr *composite.IndexError
	require.ErrorAs(t, err, &indexErr)
	assert.Equal(t, 1, indexErr.Index)
	assert.Equal(t, 1, indexErr.ArgCount)
}

func TestFormatDoesNotMutateCaller(t *testing.T) {
	values := []any{nil, []any{1, nil}}
	_, err := New("{A} {B}").Format(values...)

	require.NoError(t, err)
	assert.Nil(t, values[0])
	assert.Equal(t, []any{1, nil}, values[1])
}

func TestValueNames(t *testing.T) {
	f := New("User {UserId} did {Action}")

	assert.Equal(t, []string{"UserId", "Action"}, f.ValueNames())
	// Repeated calls observe the same cached parse.
	assert.Equal(t, f.ValueNames(), f.ValueNames())
}

func TestOriginalFormat(t *testing.T) {
	raw := "User {UserId} logged in"
	f := New(raw)

	assert.Equal(t, raw, f.OriginalFormat())

	// Rendering does not disturb the stored raw template.
	_, err := f.Format(1)
	require.NoError(t, err)
	assert.Equal(t, raw, f.OriginalFormat())
}

func TestGetValue(t *testing.T) {
	f := New("User {UserId} did {Action}")
	values := []any{42, "login"}

	first, err := f.GetValue(values, 0)
	require.NoError(t, err)
	assert.Equal(t, Value{Name: "UserId", Value: 42}, first)

	second, err := f.GetValue(values, 1)
	require.NoError(t, err)
	assert.Equal(t, Value{Name: "Action", Value: "login"}, second)
}

func TestGetValueSyntheticPair(t *testing.T) {
	raw := "User {UserId} did {Action}"
	f := New(raw)

	// Index len(names) is valid and returns the raw template, whatever the
	// values hold.
	pair, err := f.GetValue(nil, 2)

	require.NoError(t, err)
	assert.Equal(t, OriginalFormatKey, pair.Name)
	assert.Equal(t, raw, pair.Value)
}

func TestGetValueRangeErrors(t *testing.T) {
	f := New("{A}")

	for _, index := range []int{-1, 2, 100} {
		_, err := f.GetValue([]any{"x"}, index)

		require.Error(t, err)
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, index, rangeErr.Index)
		assert.Equal(t, 1, rangeErr.Count)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestGetValues(t *testing.T) {
	raw := "User {UserId} did {Action}"
	f := New(raw)

	pairs := f.GetValues([]any{42, "login"})

	require.Len(t, pairs, 3)
	assert.Equal(t, Value{Name: "UserId", Value: 42}, pairs[0])
	assert.Equal(t, Value{Name: "Action", Value: "login"}, pairs[1])
	assert.Equal(t, Value{Name: OriginalFormatKey, Value: raw}, pairs[2])
}

func TestGetValuesMoreValuesThanNames(t *testing.T) {
	raw := "only {One}"
	f := New(raw)

	pairs := f.GetValues([]any{1, 2, 3})

	// Sized to len(values)+1: the zip fills the first len(names) slots,
	// the synthetic pair is last, slots between stay zero-valued.
	require.Len(t, pairs, 4)
	assert.Equal(t, Value{Name: "One", Value: 1}, pairs[0])
	assert.Equal(t, Value{}, pairs[1])
	assert.Equal(t, Value{}, pairs[2])
	assert.Equal(t, Value{Name: OriginalFormatKey, Value: raw}, pairs[3])
}

func TestGetValuesNoNames(t *testing.T) {
	raw := "no placeholders here"
	pairs := New(raw).GetValues(nil)

	require.Len(t, pairs, 1)
	assert.Equal(t, Value{Name: OriginalFormatKey, Value: raw}, pairs[0])
}

func TestConcurrentFirstParse(t *testing.T) {
	f := New("User {UserId} did {Action}")

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.ValueNames()
		}(i)
	}
	wg.Wait()

	for _, names := range results {
		assert.Equal(t, []string{"UserId", "Action"}, names)
	}
}
