package memaccess

import (
	"github.com/hupe1980/memaccess/accessor"
	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/strategy"
)

var (
	// ErrUnavailable is returned when no strategy can serve a request
	// because the host memory intrinsic is absent.
	ErrUnavailable = strategy.ErrUnavailable

	// ErrMisalignedAtomicAccess is wrapped by the panic value of a
	// compare-and-swap or ordered write at a misaligned address.
	ErrMisalignedAtomicAccess = strategy.ErrMisalignedAtomicAccess

	// ErrUnsupported is wrapped by the panic value of a volatile, atomic or
	// ordered operation on a byte array without the host intrinsic.
	ErrUnsupported = accessor.ErrUnsupported

	// ErrInvalidIndex is wrapped by the panic value of a byte array access
	// outside the buffer.
	ErrInvalidIndex = accessor.ErrInvalidIndex

	// ErrMalformedSequence is returned when decoding an invalid character
	// lead byte.
	ErrMalformedSequence = bitcodec.ErrMalformedSequence
)
