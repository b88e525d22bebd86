package strategy

import (
	"math"
	"unsafe"

	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/host"
)

// Standard forwards every access straight to the host intrinsic. Multi-byte
// accesses at unaligned addresses are only safe on hardware that tolerates
// them.
type Standard struct {
	h host.Host
}

var _ Strategy = (*Standard)(nil)

// NewStandard returns a Standard strategy on top of h. It returns
// ErrUnavailable if h is nil.
func NewStandard(h host.Host) (*Standard, error) {
	if h == nil {
		return nil, ErrUnavailable
	}
	return &Standard{h: h}, nil
}

func (s *Standard) String() string { return TypeStandard.String() }

func (s *Standard) ArrayBaseOffset(k Kind) int64 { return layoutOf(k).BaseOffset }

func (s *Standard) ArrayIndexScale(k Kind) int64 { return layoutOf(k).IndexScale }

// ---- object space: plain ----

func (s *Standard) GetBoolAt(base unsafe.Pointer, offset int64) bool {
	return s.h.Load8(host.Pointer(base, offset)) != 0
}

func (s *Standard) PutBoolAt(base unsafe.Pointer, offset int64, v bool) {
	s.h.Store8(host.Pointer(base, offset), boolByte(v))
}

func (s *Standard) GetByteAt(base unsafe.Pointer, offset int64) byte {
	return s.h.Load8(host.Pointer(base, offset))
}

func (s *Standard) PutByteAt(base unsafe.Pointer, offset int64, v byte) {
	s.h.Store8(host.Pointer(base, offset), v)
}

func (s *Standard) GetCharAt(base unsafe.Pointer, offset int64) uint16 {
	return s.h.Load16(host.Pointer(base, offset))
}

func (s *Standard) PutCharAt(base unsafe.Pointer, offset int64, v uint16) {
	s.h.Store16(host.Pointer(base, offset), v)
}

func (s *Standard) GetShortAt(base unsafe.Pointer, offset int64) int16 {
	return int16(s.h.Load16(host.Pointer(base, offset)))
}

func (s *Standard) PutShortAt(base unsafe.Pointer, offset int64, v int16) {
	s.h.Store16(host.Pointer(base, offset), uint16(v))
}

func (s *Standard) GetIntAt(base unsafe.Pointer, offset int64) int32 {
	return int32(s.h.Load32(host.Pointer(base, offset)))
}

func (s *Standard) PutIntAt(base unsafe.Pointer, offset int64, v int32) {
	s.h.Store32(host.Pointer(base, offset), uint32(v))
}

func (s *Standard) GetFloatAt(base unsafe.Pointer, offset int64) float32 {
	return math.Float32frombits(s.h.Load32(host.Pointer(base, offset)))
}

func (s *Standard) PutFloatAt(base unsafe.Pointer, offset int64, v float32) {
	s.h.Store32(host.Pointer(base, offset), math.Float32bits(v))
}

func (s *Standard) GetLongAt(base unsafe.Pointer, offset int64) int64 {
	return int64(s.h.Load64(host.Pointer(base, offset)))
}

func (s *Standard) PutLongAt(base unsafe.Pointer, offset int64, v int64) {
	s.h.Store64(host.Pointer(base, offset), uint64(v))
}

func (s *Standard) GetDoubleAt(base unsafe.Pointer, offset int64) float64 {
	return math.Float64frombits(s.h.Load64(host.Pointer(base, offset)))
}

func (s *Standard) PutDoubleAt(base unsafe.Pointer, offset int64, v float64) {
	s.h.Store64(host.Pointer(base, offset), math.Float64bits(v))
}

func (s *Standard) GetPointerAt(base unsafe.Pointer, offset int64) unsafe.Pointer {
	return s.h.LoadPointer(pointerSlot("GetPointer", base, offset))
}

func (s *Standard) PutPointerAt(base unsafe.Pointer, offset int64, v unsafe.Pointer) {
	s.h.StorePointer(pointerSlot("PutPointer", base, offset), v)
}

// ---- object space: volatile ----

func (s *Standard) GetBoolVolatileAt(base unsafe.Pointer, offset int64) bool {
	return s.h.AtomicLoad8(host.Pointer(base, offset)) != 0
}

func (s *Standard) PutBoolVolatileAt(base unsafe.Pointer, offset int64, v bool) {
	s.h.AtomicStore8(host.Pointer(base, offset), boolByte(v))
}

func (s *Standard) GetByteVolatileAt(base unsafe.Pointer, offset int64) byte {
	return s.h.AtomicLoad8(host.Pointer(base, offset))
}

func (s *Standard) PutByteVolatileAt(base unsafe.Pointer, offset int64, v byte) {
	s.h.AtomicStore8(host.Pointer(base, offset), v)
}

func (s *Standard) GetCharVolatileAt(base unsafe.Pointer, offset int64) uint16 {
	return s.h.AtomicLoad16(host.Pointer(base, offset))
}

func (s *Standard) PutCharVolatileAt(base unsafe.Pointer, offset int64, v uint16) {
	s.h.AtomicStore16(host.Pointer(base, offset), v)
}

func (s *Standard) GetShortVolatileAt(base unsafe.Pointer, offset int64) int16 {
	return int16(s.h.AtomicLoad16(host.Pointer(base, offset)))
}

func (s *Standard) PutShortVolatileAt(base unsafe.Pointer, offset int64, v int16) {
	s.h.AtomicStore16(host.Pointer(base, offset), uint16(v))
}

func (s *Standard) GetIntVolatileAt(base unsafe.Pointer, offset int64) int32 {
	return int32(s.h.AtomicLoad32(host.Pointer(base, offset)))
}

func (s *Standard) PutIntVolatileAt(base unsafe.Pointer, offset int64, v int32) {
	s.h.AtomicStore32(host.Pointer(base, offset), uint32(v))
}

func (s *Standard) GetFloatVolatileAt(base unsafe.Pointer, offset int64) float32 {
	return math.Float32frombits(s.h.AtomicLoad32(host.Pointer(base, offset)))
}

func (s *Standard) PutFloatVolatileAt(base unsafe.Pointer, offset int64, v float32) {
	s.h.AtomicStore32(host.Pointer(base, offset), math.Float32bits(v))
}

func (s *Standard) GetLongVolatileAt(base unsafe.Pointer, offset int64) int64 {
	return int64(s.h.AtomicLoad64(host.Pointer(base, offset)))
}

func (s *Standard) PutLongVolatileAt(base unsafe.Pointer, offset int64, v int64) {
	s.h.AtomicStore64(host.Pointer(base, offset), uint64(v))
}

func (s *Standard) GetDoubleVolatileAt(base unsafe.Pointer, offset int64) float64 {
	return math.Float64frombits(s.h.AtomicLoad64(host.Pointer(base, offset)))
}

func (s *Standard) PutDoubleVolatileAt(base unsafe.Pointer, offset int64, v float64) {
	s.h.AtomicStore64(host.Pointer(base, offset), math.Float64bits(v))
}

func (s *Standard) GetPointerVolatileAt(base unsafe.Pointer, offset int64) unsafe.Pointer {
	return s.h.AtomicLoadPointer(pointerSlot("GetPointerVolatile", base, offset))
}

func (s *Standard) PutPointerVolatileAt(base unsafe.Pointer, offset int64, v unsafe.Pointer) {
	s.h.AtomicStorePointer(pointerSlot("PutPointerVolatile", base, offset), v)
}

// ---- object space: explicit byte order ----
//
// A request in native order is a plain access; anything else is assembled
// byte by byte.

func (s *Standard) GetCharEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) uint16 {
	if bigEndian == host.BigEndian {
		return s.GetCharAt(base, offset)
	}
	return bitcodec.ReadChar(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutCharEndianAt(base unsafe.Pointer, offset int64, v uint16, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutCharAt(base, offset, v)
		return
	}
	bitcodec.WriteChar(s.plain(base, offset), 0, v, bigEndian)
}

func (s *Standard) GetShortEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int16 {
	if bigEndian == host.BigEndian {
		return s.GetShortAt(base, offset)
	}
	return bitcodec.ReadShort(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutShortEndianAt(base unsafe.Pointer, offset int64, v int16, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutShortAt(base, offset, v)
		return
	}
	bitcodec.WriteShort(s.plain(base, offset), 0, v, bigEndian)
}

func (s *Standard) GetIntEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int32 {
	if bigEndian == host.BigEndian {
		return s.GetIntAt(base, offset)
	}
	return bitcodec.ReadInt(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutIntEndianAt(base unsafe.Pointer, offset int64, v int32, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutIntAt(base, offset, v)
		return
	}
	bitcodec.WriteInt(s.plain(base, offset), 0, v, bigEndian)
}

func (s *Standard) GetFloatEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float32 {
	if bigEndian == host.BigEndian {
		return s.GetFloatAt(base, offset)
	}
	return bitcodec.ReadFloat(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutFloatEndianAt(base unsafe.Pointer, offset int64, v float32, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutFloatAt(base, offset, v)
		return
	}
	bitcodec.WriteFloat(s.plain(base, offset), 0, v, bigEndian)
}

func (s *Standard) GetLongEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int64 {
	if bigEndian == host.BigEndian {
		return s.GetLongAt(base, offset)
	}
	return bitcodec.ReadLong(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutLongEndianAt(base unsafe.Pointer, offset int64, v int64, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutLongAt(base, offset, v)
		return
	}
	bitcodec.WriteLong(s.plain(base, offset), 0, v, bigEndian)
}

func (s *Standard) GetDoubleEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float64 {
	if bigEndian == host.BigEndian {
		return s.GetDoubleAt(base, offset)
	}
	return bitcodec.ReadDouble(s.plain(base, offset), 0, bigEndian)
}

func (s *Standard) PutDoubleEndianAt(base unsafe.Pointer, offset int64, v float64, bigEndian bool) {
	if bigEndian == host.BigEndian {
		s.PutDoubleAt(base, offset, v)
		return
	}
	bitcodec.WriteDouble(s.plain(base, offset), 0, v, bigEndian)
}

// ---- object space: atomics ----

func (s *Standard) CompareAndSwapIntAt(base unsafe.Pointer, offset int64, expected, x int32) bool {
	return s.h.CompareAndSwap32(host.Pointer(base, offset), uint32(expected), uint32(x))
}

func (s *Standard) CompareAndSwapLongAt(base unsafe.Pointer, offset int64, expected, x int64) bool {
	return s.h.CompareAndSwap64(host.Pointer(base, offset), uint64(expected), uint64(x))
}

func (s *Standard) CompareAndSwapPointerAt(base unsafe.Pointer, offset int64, expected, x unsafe.Pointer) bool {
	return s.h.CompareAndSwapPointer(pointerSlot("CompareAndSwapPointer", base, offset), expected, x)
}

func (s *Standard) PutIntOrderedAt(base unsafe.Pointer, offset int64, v int32) {
	s.h.AtomicStore32(host.Pointer(base, offset), uint32(v))
}

func (s *Standard) PutLongOrderedAt(base unsafe.Pointer, offset int64, v int64) {
	s.h.AtomicStore64(host.Pointer(base, offset), uint64(v))
}

func (s *Standard) PutPointerOrderedAt(base unsafe.Pointer, offset int64, v unsafe.Pointer) {
	s.h.AtomicStorePointer(pointerSlot("PutPointerOrdered", base, offset), v)
}

// ---- object space: bulk ----

func (s *Standard) CopyMemoryAt(srcBase unsafe.Pointer, srcOffset int64, dstBase unsafe.Pointer, dstOffset, n int64) {
	s.h.Copy(host.Pointer(dstBase, dstOffset), host.Pointer(srcBase, srcOffset), int(n))
}

func (s *Standard) SetMemoryAt(base unsafe.Pointer, offset, n int64, v byte) {
	s.h.Fill(host.Pointer(base, offset), int(n), v)
}

// ---- address space ----

func (s *Standard) GetBool(addr int64) bool { return s.GetBoolAt(nil, addr) }
func (s *Standard) PutBool(addr int64, v bool) { s.PutBoolAt(nil, addr, v) }
func (s *Standard) GetByte(addr int64) byte { return s.GetByteAt(nil, addr) }
func (s *Standard) PutByte(addr int64, v byte) { s.PutByteAt(nil, addr, v) }
func (s *Standard) GetChar(addr int64) uint16 { return s.GetCharAt(nil, addr) }
func (s *Standard) PutChar(addr int64, v uint16) { s.PutCharAt(nil, addr, v) }
func (s *Standard) GetShort(addr int64) int16 { return s.GetShortAt(nil, addr) }
func (s *Standard) PutShort(addr int64, v int16) { s.PutShortAt(nil, addr, v) }
func (s *Standard) GetInt(addr int64) int32 { return s.GetIntAt(nil, addr) }
func (s *Standard) PutInt(addr int64, v int32) { s.PutIntAt(nil, addr, v) }
func (s *Standard) GetFloat(addr int64) float32 { return s.GetFloatAt(nil, addr) }
func (s *Standard) PutFloat(addr int64, v float32) { s.PutFloatAt(nil, addr, v) }
func (s *Standard) GetLong(addr int64) int64 { return s.GetLongAt(nil, addr) }
func (s *Standard) PutLong(addr int64, v int64) { s.PutLongAt(nil, addr, v) }
func (s *Standard) GetDouble(addr int64) float64 { return s.GetDoubleAt(nil, addr) }
func (s *Standard) PutDouble(addr int64, v float64) { s.PutDoubleAt(nil, addr, v) }

func (s *Standard) GetBoolVolatile(addr int64) bool { return s.GetBoolVolatileAt(nil, addr) }
func (s *Standard) PutBoolVolatile(addr int64, v bool) { s.PutBoolVolatileAt(nil, addr, v) }
func (s *Standard) GetByteVolatile(addr int64) byte { return s.GetByteVolatileAt(nil, addr) }
func (s *Standard) PutByteVolatile(addr int64, v byte) { s.PutByteVolatileAt(nil, addr, v) }
func (s *Standard) GetCharVolatile(addr int64) uint16 { return s.GetCharVolatileAt(nil, addr) }
func (s *Standard) PutCharVolatile(addr int64, v uint16) { s.PutCharVolatileAt(nil, addr, v) }
func (s *Standard) GetShortVolatile(addr int64) int16 { return s.GetShortVolatileAt(nil, addr) }
func (s *Standard) PutShortVolatile(addr int64, v int16) { s.PutShortVolatileAt(nil, addr, v) }
func (s *Standard) GetIntVolatile(addr int64) int32 { return s.GetIntVolatileAt(nil, addr) }
func (s *Standard) PutIntVolatile(addr int64, v int32) { s.PutIntVolatileAt(nil, addr, v) }
func (s *Standard) GetFloatVolatile(addr int64) float32 { return s.GetFloatVolatileAt(nil, addr) }
func (s *Standard) PutFloatVolatile(addr int64, v float32) { s.PutFloatVolatileAt(nil, addr, v) }
func (s *Standard) GetLongVolatile(addr int64) int64 { return s.GetLongVolatileAt(nil, addr) }
func (s *Standard) PutLongVolatile(addr int64, v int64) { s.PutLongVolatileAt(nil, addr, v) }
func (s *Standard) GetDoubleVolatile(addr int64) float64 { return s.GetDoubleVolatileAt(nil, addr) }
func (s *Standard) PutDoubleVolatile(addr int64, v float64) {
	s.PutDoubleVolatileAt(nil, addr, v)
}

func (s *Standard) GetCharEndian(addr int64, bigEndian bool) uint16 {
	return s.GetCharEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutCharEndian(addr int64, v uint16, bigEndian bool) {
	s.PutCharEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) GetShortEndian(addr int64, bigEndian bool) int16 {
	return s.GetShortEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutShortEndian(addr int64, v int16, bigEndian bool) {
	s.PutShortEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) GetIntEndian(addr int64, bigEndian bool) int32 {
	return s.GetIntEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutIntEndian(addr int64, v int32, bigEndian bool) {
	s.PutIntEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) GetFloatEndian(addr int64, bigEndian bool) float32 {
	return s.GetFloatEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutFloatEndian(addr int64, v float32, bigEndian bool) {
	s.PutFloatEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) GetLongEndian(addr int64, bigEndian bool) int64 {
	return s.GetLongEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutLongEndian(addr int64, v int64, bigEndian bool) {
	s.PutLongEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) GetDoubleEndian(addr int64, bigEndian bool) float64 {
	return s.GetDoubleEndianAt(nil, addr, bigEndian)
}

func (s *Standard) PutDoubleEndian(addr int64, v float64, bigEndian bool) {
	s.PutDoubleEndianAt(nil, addr, v, bigEndian)
}

func (s *Standard) CompareAndSwapInt(addr int64, expected, x int32) bool {
	return s.CompareAndSwapIntAt(nil, addr, expected, x)
}

func (s *Standard) CompareAndSwapLong(addr int64, expected, x int64) bool {
	return s.CompareAndSwapLongAt(nil, addr, expected, x)
}

func (s *Standard) PutIntOrdered(addr int64, v int32) { s.PutIntOrderedAt(nil, addr, v) }
func (s *Standard) PutLongOrdered(addr int64, v int64) { s.PutLongOrderedAt(nil, addr, v) }

func (s *Standard) CopyMemory(src, dst, n int64) { s.CopyMemoryAt(nil, src, nil, dst, n) }

func (s *Standard) SetMemory(addr, n int64, v byte) { s.SetMemoryAt(nil, addr, n, v) }

func (s *Standard) plain(base unsafe.Pointer, offset int64) plainBytes {
	return plainBytes{h: s.h, base: base, offset: offset}
}

func (s *Standard) volatile(base unsafe.Pointer, offset int64) volatileBytes {
	return volatileBytes{h: s.h, base: base, offset: offset}
}

// pointerSlot resolves base+offset and panics unless the result can hold a
// pointer word atomically.
func pointerSlot(op string, base unsafe.Pointer, offset int64) unsafe.Pointer {
	requireAligned(op, base, offset, host.PtrSize)
	return host.Pointer(base, offset)
}

// aligned reports whether base+offset is a multiple of size.
func aligned(base unsafe.Pointer, offset int64, size uintptr) bool {
	return host.IsAligned(host.Pointer(base, offset), size)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
