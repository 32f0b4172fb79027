package hermite

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or argument lies outside its
	// valid range.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidOperation is returned when an operation is not permitted in
	// the spline's current configuration.
	ErrInvalidOperation = errors.New("invalid operation")
)

// IndexError reports an index that is outside the bounds accepted by Op.
// It matches [ErrOutOfRange] under [errors.Is].
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("hermite: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// checkIndex validates 0 <= i < n, or 0 <= i <= n when inclusive is set.
func checkIndex(op string, i, n int, inclusive bool) error {
	hi := n
	if inclusive {
		hi = n + 1
	}
	if i < 0 || i >= hi {
		return &IndexError{Op: op, Index: i, Len: hi}
	}
	return nil
}
