package accessor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is the cause of every IndexError.
	ErrInvalidIndex = errors.New("accessor: invalid index")

	// ErrUnsupported is the cause of every UnsupportedError.
	ErrUnsupported = errors.New("accessor: operation requires the host memory intrinsic")
)

// IndexError is the panic value raised when [Index, Index+Width) does not
// lie inside a buffer of length Len, or when the translated offset cannot
// be represented.
type IndexError struct {
	Index int64
	Width int64
	Len   int64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("accessor: index %d width %d out of range for length %d", e.Index, e.Width, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// UnsupportedError is the panic value raised by the pure byte-array path
// for operations that need single-instruction atomicity.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("accessor: %s: operation requires the host memory intrinsic", e.Op)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
