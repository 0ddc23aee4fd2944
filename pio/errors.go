package pio

import "strconv"

// Error is the tagged I/O result type: a small closed set of wire-level
// failure modes, distinct from the bool-returning Validate family.
type Error int

const (
	// ErrNone is the zero value: no error.
	ErrNone Error = iota

	// ErrMismatch indicates a header magic that doesn't match the type
	// being popped (e.g. popping Graph from an ADJ_AUG stream).
	ErrMismatch

	// ErrShort indicates the reader ran out of bytes before a record or
	// slice finished.
	ErrShort
)

func (e Error) Error() string {
	switch e {
	case ErrNone:
		return "pio: no error"
	case ErrMismatch:
		return "pio: header type mismatch"
	case ErrShort:
		return "pio: short read"
	default:
		return "pio: unknown error (" + strconv.Itoa(int(e)) + ")"
	}
}
