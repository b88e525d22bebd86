package host

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// PtrSize is the width of a pointer word in bytes.
const PtrSize = 4 << (^uintptr(0) >> 63) // unsafe.Sizeof(uintptr(0)) but an ideal const

// BigEndian reports whether the host stores multi-byte values most significant byte first.
const BigEndian = cpu.IsBigEndian

// Host exposes single-instruction memory primitives on raw pointers.
//
// Plain multi-byte accesses tolerate whatever alignment the hardware does.
// Atomic accesses require natural alignment; callers are responsible for
// checking it.
type Host interface {
	Load8(p unsafe.Pointer) uint8
	Load16(p unsafe.Pointer) uint16
	Load32(p unsafe.Pointer) uint32
	Load64(p unsafe.Pointer) uint64
	LoadPointer(p unsafe.Pointer) unsafe.Pointer

	Store8(p unsafe.Pointer, v uint8)
	Store16(p unsafe.Pointer, v uint16)
	Store32(p unsafe.Pointer, v uint32)
	Store64(p unsafe.Pointer, v uint64)
	StorePointer(p unsafe.Pointer, v unsafe.Pointer)

	AtomicLoad8(p unsafe.Pointer) uint8
	AtomicLoad16(p unsafe.Pointer) uint16
	AtomicLoad32(p unsafe.Pointer) uint32
	AtomicLoad64(p unsafe.Pointer) uint64
	AtomicLoadPointer(p unsafe.Pointer) unsafe.Pointer

	AtomicStore8(p unsafe.Pointer, v uint8)
	AtomicStore16(p unsafe.Pointer, v uint16)
	AtomicStore32(p unsafe.Pointer, v uint32)
	AtomicStore64(p unsafe.Pointer, v uint64)
	AtomicStorePointer(p unsafe.Pointer, v unsafe.Pointer)

	CompareAndSwap32(p unsafe.Pointer, old, new uint32) bool
	CompareAndSwap64(p unsafe.Pointer, old, new uint64) bool
	CompareAndSwapPointer(p unsafe.Pointer, old, new unsafe.Pointer) bool

	// Copy moves n bytes from src to dst. The ranges may overlap.
	Copy(dst, src unsafe.Pointer, n int)
	// Fill sets n bytes starting at p to v.
	Fill(p unsafe.Pointer, n int, v byte)
}

// Pointer resolves a base/offset pair. A nil base means offset is a raw
// native address.
func Pointer(base unsafe.Pointer, offset int64) unsafe.Pointer {
	if base == nil {
		return unsafe.Pointer(uintptr(offset)) //nolint:govet // raw native address supplied by the caller
	}
	return unsafe.Add(base, offset)
}

// Address returns the numeric address of p.
func Address(p unsafe.Pointer) int64 {
	return int64(uintptr(p))
}

// IsAligned reports whether p is a multiple of alignment, which must be a power of two.
func IsAligned(p unsafe.Pointer, alignment uintptr) bool {
	return uintptr(p)&(alignment-1) == 0
}
