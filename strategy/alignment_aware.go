package strategy

import (
	"unsafe"

	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/host"
)

// AlignmentAware checks the natural alignment of every multi-byte access.
// Aligned accesses go to the embedded Standard strategy. Misaligned plain and
// volatile accesses are assembled from single bytes in native order.
// Misaligned compare-and-swap and ordered writes panic with a
// *MisalignedAccessError before memory is touched.
type AlignmentAware struct {
	*Standard
}

var _ Strategy = (*AlignmentAware)(nil)

// NewAlignmentAware returns an AlignmentAware strategy on top of h. It
// returns ErrUnavailable if h is nil.
func NewAlignmentAware(h host.Host) (*AlignmentAware, error) {
	s, err := NewStandard(h)
	if err != nil {
		return nil, err
	}
	return &AlignmentAware{Standard: s}, nil
}

func (a *AlignmentAware) String() string { return TypeAlignmentAware.String() }

// ---- object space: plain ----

func (a *AlignmentAware) GetCharAt(base unsafe.Pointer, offset int64) uint16 {
	if aligned(base, offset, bitcodec.CharSize) {
		return a.Standard.GetCharAt(base, offset)
	}
	return bitcodec.ReadChar(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutCharAt(base unsafe.Pointer, offset int64, v uint16) {
	if aligned(base, offset, bitcodec.CharSize) {
		a.Standard.PutCharAt(base, offset, v)
		return
	}
	bitcodec.WriteChar(a.plain(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetShortAt(base unsafe.Pointer, offset int64) int16 {
	if aligned(base, offset, bitcodec.ShortSize) {
		return a.Standard.GetShortAt(base, offset)
	}
	return bitcodec.ReadShort(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutShortAt(base unsafe.Pointer, offset int64, v int16) {
	if aligned(base, offset, bitcodec.ShortSize) {
		a.Standard.PutShortAt(base, offset, v)
		return
	}
	bitcodec.WriteShort(a.plain(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetIntAt(base unsafe.Pointer, offset int64) int32 {
	if aligned(base, offset, bitcodec.IntSize) {
		return a.Standard.GetIntAt(base, offset)
	}
	return bitcodec.ReadInt(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutIntAt(base unsafe.Pointer, offset int64, v int32) {
	if aligned(base, offset, bitcodec.IntSize) {
		a.Standard.PutIntAt(base, offset, v)
		return
	}
	bitcodec.WriteInt(a.plain(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetFloatAt(base unsafe.Pointer, offset int64) float32 {
	if aligned(base, offset, bitcodec.FloatSize) {
		return a.Standard.GetFloatAt(base, offset)
	}
	return bitcodec.ReadFloat(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutFloatAt(base unsafe.Pointer, offset int64, v float32) {
	if aligned(base, offset, bitcodec.FloatSize) {
		a.Standard.PutFloatAt(base, offset, v)
		return
	}
	bitcodec.WriteFloat(a.plain(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetLongAt(base unsafe.Pointer, offset int64) int64 {
	if aligned(base, offset, bitcodec.LongSize) {
		return a.Standard.GetLongAt(base, offset)
	}
	return bitcodec.ReadLong(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutLongAt(base unsafe.Pointer, offset int64, v int64) {
	if aligned(base, offset, bitcodec.LongSize) {
		a.Standard.PutLongAt(base, offset, v)
		return
	}
	bitcodec.WriteLong(a.plain(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetDoubleAt(base unsafe.Pointer, offset int64) float64 {
	if aligned(base, offset, bitcodec.DoubleSize) {
		return a.Standard.GetDoubleAt(base, offset)
	}
	return bitcodec.ReadDouble(a.plain(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutDoubleAt(base unsafe.Pointer, offset int64, v float64) {
	if aligned(base, offset, bitcodec.DoubleSize) {
		a.Standard.PutDoubleAt(base, offset, v)
		return
	}
	bitcodec.WriteDouble(a.plain(base, offset), 0, v, host.BigEndian)
}

// ---- object space: volatile ----
//
// A misaligned volatile access is not atomic as a whole; each byte is.

func (a *AlignmentAware) GetCharVolatileAt(base unsafe.Pointer, offset int64) uint16 {
	if aligned(base, offset, bitcodec.CharSize) {
		return a.Standard.GetCharVolatileAt(base, offset)
	}
	return bitcodec.ReadChar(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutCharVolatileAt(base unsafe.Pointer, offset int64, v uint16) {
	if aligned(base, offset, bitcodec.CharSize) {
		a.Standard.PutCharVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteChar(a.volatile(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetShortVolatileAt(base unsafe.Pointer, offset int64) int16 {
	if aligned(base, offset, bitcodec.ShortSize) {
		return a.Standard.GetShortVolatileAt(base, offset)
	}
	return bitcodec.ReadShort(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutShortVolatileAt(base unsafe.Pointer, offset int64, v int16) {
	if aligned(base, offset, bitcodec.ShortSize) {
		a.Standard.PutShortVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteShort(a.volatile(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetIntVolatileAt(base unsafe.Pointer, offset int64) int32 {
	if aligned(base, offset, bitcodec.IntSize) {
		return a.Standard.GetIntVolatileAt(base, offset)
	}
	return bitcodec.ReadInt(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutIntVolatileAt(base unsafe.Pointer, offset int64, v int32) {
	if aligned(base, offset, bitcodec.IntSize) {
		a.Standard.PutIntVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteInt(a.volatile(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetFloatVolatileAt(base unsafe.Pointer, offset int64) float32 {
	if aligned(base, offset, bitcodec.FloatSize) {
		return a.Standard.GetFloatVolatileAt(base, offset)
	}
	return bitcodec.ReadFloat(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutFloatVolatileAt(base unsafe.Pointer, offset int64, v float32) {
	if aligned(base, offset, bitcodec.FloatSize) {
		a.Standard.PutFloatVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteFloat(a.volatile(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetLongVolatileAt(base unsafe.Pointer, offset int64) int64 {
	if aligned(base, offset, bitcodec.LongSize) {
		return a.Standard.GetLongVolatileAt(base, offset)
	}
	return bitcodec.ReadLong(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutLongVolatileAt(base unsafe.Pointer, offset int64, v int64) {
	if aligned(base, offset, bitcodec.LongSize) {
		a.Standard.PutLongVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteLong(a.volatile(base, offset), 0, v, host.BigEndian)
}

func (a *AlignmentAware) GetDoubleVolatileAt(base unsafe.Pointer, offset int64) float64 {
	if aligned(base, offset, bitcodec.DoubleSize) {
		return a.Standard.GetDoubleVolatileAt(base, offset)
	}
	return bitcodec.ReadDouble(a.volatile(base, offset), 0, host.BigEndian)
}

func (a *AlignmentAware) PutDoubleVolatileAt(base unsafe.Pointer, offset int64, v float64) {
	if aligned(base, offset, bitcodec.DoubleSize) {
		a.Standard.PutDoubleVolatileAt(base, offset, v)
		return
	}
	bitcodec.WriteDouble(a.volatile(base, offset), 0, v, host.BigEndian)
}

// ---- object space: explicit byte order ----

func (a *AlignmentAware) GetCharEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) uint16 {
	if bigEndian == host.BigEndian {
		return a.GetCharAt(base, offset)
	}
	return bitcodec.ReadChar(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutCharEndianAt(base unsafe.Pointer, offset int64, v uint16, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutCharAt(base, offset, v)
		return
	}
	bitcodec.WriteChar(a.plain(base, offset), 0, v, bigEndian)
}

func (a *AlignmentAware) GetShortEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int16 {
	if bigEndian == host.BigEndian {
		return a.GetShortAt(base, offset)
	}
	return bitcodec.ReadShort(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutShortEndianAt(base unsafe.Pointer, offset int64, v int16, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutShortAt(base, offset, v)
		return
	}
	bitcodec.WriteShort(a.plain(base, offset), 0, v, bigEndian)
}

func (a *AlignmentAware) GetIntEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int32 {
	if bigEndian == host.BigEndian {
		return a.GetIntAt(base, offset)
	}
	return bitcodec.ReadInt(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutIntEndianAt(base unsafe.Pointer, offset int64, v int32, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutIntAt(base, offset, v)
		return
	}
	bitcodec.WriteInt(a.plain(base, offset), 0, v, bigEndian)
}

func (a *AlignmentAware) GetFloatEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float32 {
	if bigEndian == host.BigEndian {
		return a.GetFloatAt(base, offset)
	}
	return bitcodec.ReadFloat(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutFloatEndianAt(base unsafe.Pointer, offset int64, v float32, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutFloatAt(base, offset, v)
		return
	}
	bitcodec.WriteFloat(a.plain(base, offset), 0, v, bigEndian)
}

func (a *AlignmentAware) GetLongEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) int64 {
	if bigEndian == host.BigEndian {
		return a.GetLongAt(base, offset)
	}
	return bitcodec.ReadLong(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutLongEndianAt(base unsafe.Pointer, offset int64, v int64, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutLongAt(base, offset, v)
		return
	}
	bitcodec.WriteLong(a.plain(base, offset), 0, v, bigEndian)
}

func (a *AlignmentAware) GetDoubleEndianAt(base unsafe.Pointer, offset int64, bigEndian bool) float64 {
	if bigEndian == host.BigEndian {
		return a.GetDoubleAt(base, offset)
	}
	return bitcodec.ReadDouble(a.plain(base, offset), 0, bigEndian)
}

func (a *AlignmentAware) PutDoubleEndianAt(base unsafe.Pointer, offset int64, v float64, bigEndian bool) {
	if bigEndian == host.BigEndian {
		a.PutDoubleAt(base, offset, v)
		return
	}
	bitcodec.WriteDouble(a.plain(base, offset), 0, v, bigEndian)
}

// ---- object space: atomics ----

func (a *AlignmentAware) CompareAndSwapIntAt(base unsafe.Pointer, offset int64, expected, x int32) bool {
	requireAligned("CompareAndSwapInt", base, offset, bitcodec.IntSize)
	return a.Standard.CompareAndSwapIntAt(base, offset, expected, x)
}

func (a *AlignmentAware) CompareAndSwapLongAt(base unsafe.Pointer, offset int64, expected, x int64) bool {
	requireAligned("CompareAndSwapLong", base, offset, bitcodec.LongSize)
	return a.Standard.CompareAndSwapLongAt(base, offset, expected, x)
}

func (a *AlignmentAware) PutIntOrderedAt(base unsafe.Pointer, offset int64, v int32) {
	requireAligned("PutIntOrdered", base, offset, bitcodec.IntSize)
	a.Standard.PutIntOrderedAt(base, offset, v)
}

func (a *AlignmentAware) PutLongOrderedAt(base unsafe.Pointer, offset int64, v int64) {
	requireAligned("PutLongOrdered", base, offset, bitcodec.LongSize)
	a.Standard.PutLongOrderedAt(base, offset, v)
}

// ---- address space ----

func (a *AlignmentAware) GetChar(addr int64) uint16 { return a.GetCharAt(nil, addr) }

func (a *AlignmentAware) PutChar(addr int64, v uint16) { a.PutCharAt(nil, addr, v) }

func (a *AlignmentAware) GetShort(addr int64) int16 { return a.GetShortAt(nil, addr) }

func (a *AlignmentAware) PutShort(addr int64, v int16) { a.PutShortAt(nil, addr, v) }

func (a *AlignmentAware) GetInt(addr int64) int32 { return a.GetIntAt(nil, addr) }

func (a *AlignmentAware) PutInt(addr int64, v int32) { a.PutIntAt(nil, addr, v) }

func (a *AlignmentAware) GetFloat(addr int64) float32 { return a.GetFloatAt(nil, addr) }

func (a *AlignmentAware) PutFloat(addr int64, v float32) { a.PutFloatAt(nil, addr, v) }

func (a *AlignmentAware) GetLong(addr int64) int64 { return a.GetLongAt(nil, addr) }

func (a *AlignmentAware) PutLong(addr int64, v int64) { a.PutLongAt(nil, addr, v) }

func (a *AlignmentAware) GetDouble(addr int64) float64 { return a.GetDoubleAt(nil, addr) }

func (a *AlignmentAware) PutDouble(addr int64, v float64) { a.PutDoubleAt(nil, addr, v) }

func (a *AlignmentAware) GetCharVolatile(addr int64) uint16 { return a.GetCharVolatileAt(nil, addr) }

func (a *AlignmentAware) PutCharVolatile(addr int64, v uint16) { a.PutCharVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetShortVolatile(addr int64) int16 { return a.GetShortVolatileAt(nil, addr) }

func (a *AlignmentAware) PutShortVolatile(addr int64, v int16) { a.PutShortVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetIntVolatile(addr int64) int32 { return a.GetIntVolatileAt(nil, addr) }

func (a *AlignmentAware) PutIntVolatile(addr int64, v int32) { a.PutIntVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetFloatVolatile(addr int64) float32 { return a.GetFloatVolatileAt(nil, addr) }

func (a *AlignmentAware) PutFloatVolatile(addr int64, v float32) { a.PutFloatVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetLongVolatile(addr int64) int64 { return a.GetLongVolatileAt(nil, addr) }

func (a *AlignmentAware) PutLongVolatile(addr int64, v int64) { a.PutLongVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetDoubleVolatile(addr int64) float64 { return a.GetDoubleVolatileAt(nil, addr) }

func (a *AlignmentAware) PutDoubleVolatile(addr int64, v float64) { a.PutDoubleVolatileAt(nil, addr, v) }

func (a *AlignmentAware) GetCharEndian(addr int64, bigEndian bool) uint16 {
	return a.GetCharEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutCharEndian(addr int64, v uint16, bigEndian bool) {
	a.PutCharEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) GetShortEndian(addr int64, bigEndian bool) int16 {
	return a.GetShortEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutShortEndian(addr int64, v int16, bigEndian bool) {
	a.PutShortEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) GetIntEndian(addr int64, bigEndian bool) int32 {
	return a.GetIntEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutIntEndian(addr int64, v int32, bigEndian bool) {
	a.PutIntEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) GetFloatEndian(addr int64, bigEndian bool) float32 {
	return a.GetFloatEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutFloatEndian(addr int64, v float32, bigEndian bool) {
	a.PutFloatEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) GetLongEndian(addr int64, bigEndian bool) int64 {
	return a.GetLongEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutLongEndian(addr int64, v int64, bigEndian bool) {
	a.PutLongEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) GetDoubleEndian(addr int64, bigEndian bool) float64 {
	return a.GetDoubleEndianAt(nil, addr, bigEndian)
}

func (a *AlignmentAware) PutDoubleEndian(addr int64, v float64, bigEndian bool) {
	a.PutDoubleEndianAt(nil, addr, v, bigEndian)
}

func (a *AlignmentAware) CompareAndSwapInt(addr int64, expected, x int32) bool {
	return a.CompareAndSwapIntAt(nil, addr, expected, x)
}

func (a *AlignmentAware) CompareAndSwapLong(addr int64, expected, x int64) bool {
	return a.CompareAndSwapLongAt(nil, addr, expected, x)
}

func (a *AlignmentAware) PutIntOrdered(addr int64, v int32) { a.PutIntOrderedAt(nil, addr, v) }

func (a *AlignmentAware) PutLongOrdered(addr int64, v int64) { a.PutLongOrderedAt(nil, addr, v) }

func requireAligned(op string, base unsafe.Pointer, offset int64, size uintptr) {
	p := host.Pointer(base, offset)
	if !host.IsAligned(p, size) {
		panic(&MisalignedAccessError{Op: op, Address: host.Address(p), Alignment: int(size)})
	}
}
