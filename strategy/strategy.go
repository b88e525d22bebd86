package strategy

import "unsafe"

// AddressAccess is the primitive access surface over raw native addresses.
type AddressAccess interface {
	GetBool(addr int64) bool
	PutBool(addr int64, v bool)
	GetByte(addr int64) byte
	PutByte(addr int64, v byte)
	GetChar(addr int64) uint16
	PutChar(addr int64, v uint16)
	GetShort(addr int64) int16
	PutShort(addr int64, v int16)
	GetInt(addr int64) int32
	PutInt(addr int64, v int32)
	GetFloat(addr int64) float32
	PutFloat(addr int64, v float32)
	GetLong(addr int64) int64
	PutLong(addr int64, v int64)
	GetDouble(addr int64) float64
	PutDouble(addr int64, v float64)

	GetBoolVolatile(addr int64) bool
	PutBoolVolatile(addr int64, v bool)
	GetByteVolatile(addr int64) byte
	PutByteVolatile(addr int64, v byte)
	GetCharVolatile(addr int64) uint16
	PutCharVolatile(addr int64, v uint16)
	GetShortVolatile(addr int64) int16
	PutShortVolatile(addr int64, v int16)
	GetIntVolatile(addr int64) int32
	PutIntVolatile(addr int64, v int32)
	GetFloatVolatile(addr int64) float32
	PutFloatVolatile(addr int64, v float32)
	GetLongVolatile(addr int64) int64
	PutLongVolatile(addr int64, v int64)
	GetDoubleVolatile(addr int64) float64
	PutDoubleVolatile(addr int64, v float64)

	GetCharEndian(addr int64, bigEndian bool) uint16
	PutCharEndian(addr int64, v uint16, bigEndian bool)
	GetShortEndian(addr int64, bigEndian bool) int16
	PutShortEndian(addr int64, v int16, bigEndian bool)
	GetIntEndian(addr int64, bigEndian bool) int32
	PutIntEndian(addr int64, v int32, bigEndian bool)
	GetFloatEndian(addr int64, bigEndian bool) float32
	PutFloatEndian(addr int64, v float32, bigEndian bool)
	GetLongEndian(addr int64, bigEndian bool) int64
	PutLongEndian(addr int64, v int64, bigEndian bool)
	GetDoubleEndian(addr int64, bigEndian bool) float64
	PutDoubleEndian(addr int64, v float64, bigEndian bool)

	CompareAndSwapInt(addr int64, expected, x int32) bool
	CompareAndSwapLong(addr int64, expected, x int64) bool
	PutIntOrdered(addr int64, v int32)
	PutLongOrdered(addr int64, v int64)

	// CopyMemory copies n bytes from src to dst.
	CopyMemory(src, dst, n int64)
	// SetMemory sets n bytes starting at addr to v.
	SetMemory(addr, n int64, v byte)
}

// ObjectAccess is the primitive access surface over base/offset pairs.
type ObjectAccess interface {
	GetBoolAt(base unsafe.Pointer, offset int64) bool
	PutBoolAt(base unsafe.Pointer, offset int64, v bool)
	GetByteAt(base unsafe.Pointer, offset int64) byte
	PutByteAt(base unsafe.Pointer, offset int64, v byte)
	GetCharAt(base unsafe.Pointer, offset int64) uint16
	PutCharAt(base unsafe.Pointer, offset int64, v uint16)
	GetShortAt(base unsafe.Pointer, offset int64) int16
	PutShortAt(base unsafe.Pointer, offset int64, v int16)
	GetIntAt(base unsafe.Pointer, offset int64) int32
	PutIntAt(base unsafe.Pointer, offset int64, v int32)
	GetFloatAt(base unsafe.Pointer, offset int64) float32
	PutFloatAt(base unsafe.Pointer, offset int64, v float32)
	GetLongAt(base unsafe.Pointer, offset int64) int64
	PutLongAt(base unsafe.Pointer, offset int64, v int64)
	GetDoubleAt(base unsafe.Pointer, offset int64) float64
	PutDoubleAt(base unsafe.Pointer, offset int64, v float64)
	GetPointerAt(base unsafe.Pointer, offset int64) unsafe.Pointer
	PutPointerAt(base unsafe.Pointer, offset int64, v unsafe.Pointer)

	GetBoolVolatileAt(base unsafe.Pointer, offset int64) bool
	PutBoolVolatileAt(base unsafe.Pointer, offset int64, v bool)
	GetByteVolatileAt(base unsafe.Pointer, offset int64) byte
	PutByteVolatileAt(base unsafe.Pointer, offset int64, v byte)
	GetCharVolatileAt(base unsafe.Pointer, offset int64) uint16
	PutCharVolatileAt(base unsafe.Pointer, offset int64, v uint16)
	GetShortVolatileAt(base unsafe.Pointer, offset int64) int16
	PutShortVolatileAt(base unsafe.Pointer, offset int64, v int16)
	GetIntVolatileAt(base unsafe.Pointer, offset int64) int32
	PutIntVolatileAt(base unsafe.Pointer, offset int64, v int32)
	GetFloatVolatileAt(base unsafe.Pointer, offset int64) float32
	PutFloatVolatileAt(base unsafe.Pointer, offset int64, v float32)
	GetLongVolatileAt(base unsafe.Pointer, offset int64) int64
	PutLongVolatileAt(base unsafe.Pointer, offset int64, v int64)
	GetDoubleVolatileAt(base unsafe.Pointer, offset int64) float64
	PutDoubleVolatileAt(base unsafe.Pointer, offset int64, v float64)
	GetPointerVolatileAt(base unsafe.Pointer, offset int64) unsafe.Pointer
	PutPointerVolatileAt(base unsafe.Pointer, offset int64, v unsafe.Pointer)

	GetCharEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) uint16
	PutCharEndianAt(base unsafe.Pointer, offset int64, v uint16, bigEndian bool)
	GetShortEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int16
	PutShortEndianAt(base unsafe.Pointer, offset int64, v int16, bigEndian bool)
	GetIntEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int32
	PutIntEndianAt(base unsafe.Pointer, offset int64, v int32, bigEndian bool)
	GetFloatEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float32
	PutFloatEndianAt(base unsafe.Pointer, offset int64, v float32, bigEndian bool)
	GetLongEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int64
	PutLongEndianAt(base unsafe.Pointer, offset int64, v int64, bigEndian bool)
	GetDoubleEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float64
	PutDoubleEndianAt(base unsafe.Pointer, offset int64, v float64, bigEndian bool)

	CompareAndSwapIntAt(base unsafe.Pointer, offset int64, expected, x int32) bool
	CompareAndSwapLongAt(base unsafe.Pointer, offset int64, expected, x int64) bool
	CompareAndSwapPointerAt(base unsafe.Pointer, offset int64, expected, x unsafe.Pointer) bool
	PutIntOrderedAt(base unsafe.Pointer, offset int64, v int32)
	PutLongOrderedAt(base unsafe.Pointer, offset int64, v int64)
	PutPointerOrderedAt(base unsafe.Pointer, offset int64, v unsafe.Pointer)

	CopyMemoryAt(srcBase unsafe.Pointer, srcOffset int64, dstBase unsafe.Pointer, dstOffset, n int64)
	SetMemoryAt(base unsafe.Pointer, offset, n int64, v byte)
}

// Strategy is the full access capability plus array layout introspection.
type Strategy interface {
	AddressAccess
	ObjectAccess

	// ArrayBaseOffset returns the offset of element 0 from the array's
	// first byte.
	ArrayBaseOffset(k Kind) int64
	// ArrayIndexScale returns the distance in bytes between elements.
	ArrayIndexScale(k Kind) int64
}
