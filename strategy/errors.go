package strategy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the host memory access intrinsic is not
	// available in this build.
	ErrUnavailable = errors.New("strategy: host memory access unavailable")

	// ErrMisalignedAtomicAccess is the cause of every MisalignedAccessError.
	ErrMisalignedAtomicAccess = errors.New("strategy: misaligned atomic access")

	// ErrUnknownType is returned by ParseType for unrecognised names.
	ErrUnknownType = errors.New("strategy: unknown strategy type")

	// ErrFieldNotFound is returned by FieldOffset.
	ErrFieldNotFound = errors.New("strategy: field not found")
)

// MisalignedAccessError is the panic value raised when an operation that
// needs a single atomic instruction targets an address that is not a
// multiple of the operand width.
type MisalignedAccessError struct {
	Op        string
	Address   int64
	Alignment int
}

func (e *MisalignedAccessError) Error() string {
	return fmt.Sprintf("strategy: %s: address %#x is not %d-byte aligned", e.Op, e.Address, e.Alignment)
}

func (e *MisalignedAccessError) Unwrap() error { return ErrMisalignedAtomicAccess }
