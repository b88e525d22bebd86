package accessor

import (
	"unsafe"

	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/conv"
	"github.com/hupe1980/memaccess/strategy"
)

// access maps single addresses onto a strategy's object space.
//
// Unbounded views (length < 0) add delta to the address and pass it on with
// a nil base, i.e. as a native address. Bounded views check
// [addr, addr+width) against length and address base+delta+addr.
type access struct {
	s      strategy.Strategy
	base   unsafe.Pointer
	delta  int64
	length int64
}

var _ ConcurrentAccessor = (*access)(nil)

func (a *access) offset(addr, width int64) int64 {
	if a.length < 0 {
		return a.delta + addr
	}
	checkRange(addr, width, a.length)
	off, err := conv.AddOffset(a.delta, addr)
	if err != nil {
		panic(&IndexError{Index: addr, Width: width, Len: a.length})
	}
	return off
}

// checkRange panics unless [index, index+width) lies inside [0, length).
func checkRange(index, width, length int64) {
	if index < 0 || width < 0 || width > length || index > length-width {
		panic(&IndexError{Index: index, Width: width, Len: length})
	}
}

func (a *access) GetBool(addr int64) bool {
	return a.s.GetBoolAt(a.base, a.offset(addr, bitcodec.BoolSize))
}

func (a *access) PutBool(addr int64, v bool) {
	a.s.PutBoolAt(a.base, a.offset(addr, bitcodec.BoolSize), v)
}

func (a *access) GetByte(addr int64) byte {
	return a.s.GetByteAt(a.base, a.offset(addr, bitcodec.ByteSize))
}

func (a *access) PutByte(addr int64, v byte) {
	a.s.PutByteAt(a.base, a.offset(addr, bitcodec.ByteSize), v)
}

func (a *access) GetChar(addr int64) uint16 {
	return a.s.GetCharAt(a.base, a.offset(addr, bitcodec.CharSize))
}

func (a *access) PutChar(addr int64, v uint16) {
	a.s.PutCharAt(a.base, a.offset(addr, bitcodec.CharSize), v)
}

func (a *access) GetShort(addr int64) int16 {
	return a.s.GetShortAt(a.base, a.offset(addr, bitcodec.ShortSize))
}

func (a *access) PutShort(addr int64, v int16) {
	a.s.PutShortAt(a.base, a.offset(addr, bitcodec.ShortSize), v)
}

func (a *access) GetInt(addr int64) int32 {
	return a.s.GetIntAt(a.base, a.offset(addr, bitcodec.IntSize))
}

func (a *access) PutInt(addr int64, v int32) {
	a.s.PutIntAt(a.base, a.offset(addr, bitcodec.IntSize), v)
}

func (a *access) GetFloat(addr int64) float32 {
	return a.s.GetFloatAt(a.base, a.offset(addr, bitcodec.FloatSize))
}

func (a *access) PutFloat(addr int64, v float32) {
	a.s.PutFloatAt(a.base, a.offset(addr, bitcodec.FloatSize), v)
}

func (a *access) GetLong(addr int64) int64 {
	return a.s.GetLongAt(a.base, a.offset(addr, bitcodec.LongSize))
}

func (a *access) PutLong(addr int64, v int64) {
	a.s.PutLongAt(a.base, a.offset(addr, bitcodec.LongSize), v)
}

func (a *access) GetDouble(addr int64) float64 {
	return a.s.GetDoubleAt(a.base, a.offset(addr, bitcodec.DoubleSize))
}

func (a *access) PutDouble(addr int64, v float64) {
	a.s.PutDoubleAt(a.base, a.offset(addr, bitcodec.DoubleSize), v)
}

func (a *access) GetCharEndian(addr int64, bigEndian bool) uint16 {
	return a.s.GetCharEndianAt(a.base, a.offset(addr, bitcodec.CharSize), bigEndian)
}

func (a *access) PutCharEndian(addr int64, v uint16, bigEndian bool) {
	a.s.PutCharEndianAt(a.base, a.offset(addr, bitcodec.CharSize), v, bigEndian)
}

func (a *access) GetShortEndian(addr int64, bigEndian bool) int16 {
	return a.s.GetShortEndianAt(a.base, a.offset(addr, bitcodec.ShortSize), bigEndian)
}

func (a *access) PutShortEndian(addr int64, v int16, bigEndian bool) {
	a.s.PutShortEndianAt(a.base, a.offset(addr, bitcodec.ShortSize), v, bigEndian)
}

func (a *access) GetIntEndian(addr int64, bigEndian bool) int32 {
	return a.s.GetIntEndianAt(a.base, a.offset(addr, bitcodec.IntSize), bigEndian)
}

func (a *access) PutIntEndian(addr int64, v int32, bigEndian bool) {
	a.s.PutIntEndianAt(a.base, a.offset(addr, bitcodec.IntSize), v, bigEndian)
}

func (a *access) GetFloatEndian(addr int64, bigEndian bool) float32 {
	return a.s.GetFloatEndianAt(a.base, a.offset(addr, bitcodec.FloatSize), bigEndian)
}

func (a *access) PutFloatEndian(addr int64, v float32, bigEndian bool) {
	a.s.PutFloatEndianAt(a.base, a.offset(addr, bitcodec.FloatSize), v, bigEndian)
}

func (a *access) GetLongEndian(addr int64, bigEndian bool) int64 {
	return a.s.GetLongEndianAt(a.base, a.offset(addr, bitcodec.LongSize), bigEndian)
}

func (a *access) PutLongEndian(addr int64, v int64, bigEndian bool) {
	a.s.PutLongEndianAt(a.base, a.offset(addr, bitcodec.LongSize), v, bigEndian)
}

func (a *access) GetDoubleEndian(addr int64, bigEndian bool) float64 {
	return a.s.GetDoubleEndianAt(a.base, a.offset(addr, bitcodec.DoubleSize), bigEndian)
}

func (a *access) PutDoubleEndian(addr int64, v float64, bigEndian bool) {
	a.s.PutDoubleEndianAt(a.base, a.offset(addr, bitcodec.DoubleSize), v, bigEndian)
}

func (a *access) GetBoolVolatile(addr int64) bool {
	return a.s.GetBoolVolatileAt(a.base, a.offset(addr, bitcodec.BoolSize))
}

func (a *access) PutBoolVolatile(addr int64, v bool) {
	a.s.PutBoolVolatileAt(a.base, a.offset(addr, bitcodec.BoolSize), v)
}

func (a *access) GetByteVolatile(addr int64) byte {
	return a.s.GetByteVolatileAt(a.base, a.offset(addr, bitcodec.ByteSize))
}

func (a *access) PutByteVolatile(addr int64, v byte) {
	a.s.PutByteVolatileAt(a.base, a.offset(addr, bitcodec.ByteSize), v)
}

func (a *access) GetCharVolatile(addr int64) uint16 {
	return a.s.GetCharVolatileAt(a.base, a.offset(addr, bitcodec.CharSize))
}

func (a *access) PutCharVolatile(addr int64, v uint16) {
	a.s.PutCharVolatileAt(a.base, a.offset(addr, bitcodec.CharSize), v)
}

func (a *access) GetShortVolatile(addr int64) int16 {
	return a.s.GetShortVolatileAt(a.base, a.offset(addr, bitcodec.ShortSize))
}

func (a *access) PutShortVolatile(addr int64, v int16) {
	a.s.PutShortVolatileAt(a.base, a.offset(addr, bitcodec.ShortSize), v)
}

func (a *access) GetIntVolatile(addr int64) int32 {
	return a.s.GetIntVolatileAt(a.base, a.offset(addr, bitcodec.IntSize))
}

func (a *access) PutIntVolatile(addr int64, v int32) {
	a.s.PutIntVolatileAt(a.base, a.offset(addr, bitcodec.IntSize), v)
}

func (a *access) GetFloatVolatile(addr int64) float32 {
	return a.s.GetFloatVolatileAt(a.base, a.offset(addr, bitcodec.FloatSize))
}

func (a *access) PutFloatVolatile(addr int64, v float32) {
	a.s.PutFloatVolatileAt(a.base, a.offset(addr, bitcodec.FloatSize), v)
}

func (a *access) GetLongVolatile(addr int64) int64 {
	return a.s.GetLongVolatileAt(a.base, a.offset(addr, bitcodec.LongSize))
}

func (a *access) PutLongVolatile(addr int64, v int64) {
	a.s.PutLongVolatileAt(a.base, a.offset(addr, bitcodec.LongSize), v)
}

func (a *access) GetDoubleVolatile(addr int64) float64 {
	return a.s.GetDoubleVolatileAt(a.base, a.offset(addr, bitcodec.DoubleSize))
}

func (a *access) PutDoubleVolatile(addr int64, v float64) {
	a.s.PutDoubleVolatileAt(a.base, a.offset(addr, bitcodec.DoubleSize), v)
}

func (a *access) CompareAndSwapInt(addr int64, expected, x int32) bool {
	return a.s.CompareAndSwapIntAt(a.base, a.offset(addr, bitcodec.IntSize), expected, x)
}

func (a *access) CompareAndSwapLong(addr int64, expected, x int64) bool {
	return a.s.CompareAndSwapLongAt(a.base, a.offset(addr, bitcodec.LongSize), expected, x)
}

func (a *access) PutIntOrdered(addr int64, v int32) {
	a.s.PutIntOrderedAt(a.base, a.offset(addr, bitcodec.IntSize), v)
}

func (a *access) PutLongOrdered(addr int64, v int64) {
	a.s.PutLongOrderedAt(a.base, a.offset(addr, bitcodec.LongSize), v)
}

func (a *access) CopyMemory(src, dst, n int64) {
	if n == 0 {
		return
	}
	srcOff := a.offset(src, n)
	dstOff := a.offset(dst, n)
	a.s.CopyMemoryAt(a.base, srcOff, a.base, dstOff, n)
}

func (a *access) CopyFromBytes(dst int64, src []byte) {
	n := int64(len(src))
	if n == 0 {
		return
	}
	a.s.CopyMemoryAt(unsafe.Pointer(unsafe.SliceData(src)), 0, a.base, a.offset(dst, n), n)
}

func (a *access) CopyToBytes(src int64, dst []byte) {
	n := int64(len(dst))
	if n == 0 {
		return
	}
	a.s.CopyMemoryAt(a.base, a.offset(src, n), unsafe.Pointer(unsafe.SliceData(dst)), 0, n)
}

func (a *access) SetMemory(addr, n int64, v byte) {
	if n == 0 {
		return
	}
	a.s.SetMemoryAt(a.base, a.offset(addr, n), n, v)
}
