package accessor

// MemoryAccessor reads and writes primitives at single addresses of one
// resource. Methods without a byte order use native order.
type MemoryAccessor interface {
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

	// CopyMemory copies n bytes from src to dst. The ranges may overlap.
	CopyMemory(src, dst, n int64)
	// CopyFromBytes copies src to the n=len(src) bytes at dst.
	CopyFromBytes(dst int64, src []byte)
	// CopyToBytes fills dst from the bytes starting at src.
	CopyToBytes(src int64, dst []byte)
	// SetMemory sets n bytes starting at addr to v.
	SetMemory(addr, n int64, v byte)
}

// ConcurrentAccessor adds volatile, compare-and-swap and ordered writes.
type ConcurrentAccessor interface {
	MemoryAccessor

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

	CompareAndSwapInt(addr int64, expected, x int32) bool
	CompareAndSwapLong(addr int64, expected, x int64) bool
	PutIntOrdered(addr int64, v int32)
	PutLongOrdered(addr int64, v int64)
}
