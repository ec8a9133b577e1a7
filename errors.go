package ssd1306

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error caused by a call that was
// invalid before anything reached the bus: a parameter out of range, a
// second Init, or a frame write before Init. Such calls send nothing.
//
// Transport failures are returned as produced by the transport; see the
// transport package for their kinds.
var ErrPrecondition = errors.New("ssd1306: precondition violation")

var errNotInitialized = fmt.Errorf("%w: device is not initialized", ErrPrecondition)

func precondition(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, a...)...)
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return precondition("%s %d out of range [%d, %d]", name, v, lo, hi)
	}
	return nil
}

func checkSpan(name string, start, end, limit int) error {
	if start < 0 || end >= limit || start > end {
		return precondition("%s range [%d, %d] must satisfy 0 <= start <= end < %d", name, start, end, limit)
	}
	return nil
}
