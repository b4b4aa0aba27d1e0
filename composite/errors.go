package composite

import (
	"errors"
	"fmt"
)

// IndexError reports a format item that references an argument index with
// no corresponding entry in the argument list.
type IndexError struct {
	Index    int
	ArgCount int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("format item references argument %d but only %d argument(s) were supplied", e.Index, e.ArgCount)
}

// Is implements error comparison by index and argument count.
func (e *IndexError) Is(target error) bool {
	var t *IndexError
	if errors.As(target, &t) {
		return e.Index == t.Index && e.ArgCount == t.ArgCount
	}
	return false
}
