package formatter

import (
	"errors"
	"fmt"
)

// RangeError reports a GetValue index outside the valid range
// [0, len(ValueNames())].
type RangeError struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value index %d out of range [0, %d]", e.Index, e.Count)
}

// Is implements error comparison by index and name count.
func (e *RangeError) Is(target error) bool {
	var t *RangeError
	if errors.As(target, &t) {
		return e.Index == t.Index && e.Count == t.Count
	}
	return false
}
