package mem

import (
	"unsafe"
)

// CacheLine is the default alignment used by Aligned callers that only need
// "well aligned" memory.
const CacheLine = 64

// Aligned allocates a byte slice of the given size whose first byte is a
// multiple of alignment. alignment must be a power of two.
//
// The slice keeps the larger backing array alive.
func Aligned(size, alignment int) []byte {
	if size <= 0 {
		return nil
	}
	if alignment <= 1 {
		return make([]byte, size)
	}

	buf := make([]byte, size+alignment)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // alignment arithmetic only
	shift := int((uintptr(alignment) - addr&uintptr(alignment-1)) & uintptr(alignment-1))
	return buf[shift : shift+size : shift+size]
}

// Skewed returns a slice of the given size that starts skew bytes past an
// alignment boundary. Useful for exercising misaligned access paths.
func Skewed(size, alignment, skew int) []byte {
	if size <= 0 {
		return nil
	}
	buf := Aligned(size+skew, alignment)
	return buf[skew : skew+size : skew+size]
}

// AddressOf returns the native address of the first byte of b, or 0 for an
// empty slice.
func AddressOf(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	return int64(uintptr(unsafe.Pointer(unsafe.SliceData(b)))) //nolint:gosec // address is only used while b is alive
}
