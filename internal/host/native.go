package host

import (
	"encoding/binary"
	"sync/atomic"
	"unsafe"
)

// Native accesses memory directly through unsafe pointers and sync/atomic.
type Native struct{}

var _ Host = Native{}

func (Native) Load8(p unsafe.Pointer) uint8 {
	return *(*uint8)(p)
}

// Multi-byte plain accesses go through fixed-size byte arrays: the compiler
// merges them into a single load/store where the target allows unaligned
// access, and they never trip checkptr alignment checks.

func (Native) Load16(p unsafe.Pointer) uint16 {
	return binary.NativeEndian.Uint16((*[2]byte)(p)[:])
}

func (Native) Load32(p unsafe.Pointer) uint32 {
	return binary.NativeEndian.Uint32((*[4]byte)(p)[:])
}

func (Native) Load64(p unsafe.Pointer) uint64 {
	return binary.NativeEndian.Uint64((*[8]byte)(p)[:])
}

func (Native) LoadPointer(p unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(p)
}

func (Native) Store8(p unsafe.Pointer, v uint8) {
	*(*uint8)(p) = v
}

func (Native) Store16(p unsafe.Pointer, v uint16) {
	binary.NativeEndian.PutUint16((*[2]byte)(p)[:], v)
}

func (Native) Store32(p unsafe.Pointer, v uint32) {
	binary.NativeEndian.PutUint32((*[4]byte)(p)[:], v)
}

func (Native) Store64(p unsafe.Pointer, v uint64) {
	binary.NativeEndian.PutUint64((*[8]byte)(p)[:], v)
}

func (Native) StorePointer(p unsafe.Pointer, v unsafe.Pointer) {
	*(*unsafe.Pointer)(p) = v
}

func (Native) AtomicLoad8(p unsafe.Pointer) uint8 {
	w, shift := enclosingWord(p, 1)
	return uint8(atomic.LoadUint32(w) >> shift)
}

func (n Native) AtomicLoad16(p unsafe.Pointer) uint16 {
	if uintptr(p)&3 == 3 {
		// Straddles two words: no single atomic covers it.
		return n.load16Split(p)
	}
	w, shift := enclosingWord(p, 2)
	return uint16(atomic.LoadUint32(w) >> shift)
}

func (Native) AtomicLoad32(p unsafe.Pointer) uint32 {
	return atomic.LoadUint32((*uint32)(p))
}

func (Native) AtomicLoad64(p unsafe.Pointer) uint64 {
	return atomic.LoadUint64((*uint64)(p))
}

func (Native) AtomicLoadPointer(p unsafe.Pointer) unsafe.Pointer {
	return atomic.LoadPointer((*unsafe.Pointer)(p))
}

func (Native) AtomicStore8(p unsafe.Pointer, v uint8) {
	w, shift := enclosingWord(p, 1)
	storeLane(w, shift, 0xFF, uint32(v))
}

func (n Native) AtomicStore16(p unsafe.Pointer, v uint16) {
	if uintptr(p)&3 == 3 {
		n.store16Split(p, v)
		return
	}
	w, shift := enclosingWord(p, 2)
	storeLane(w, shift, 0xFFFF, uint32(v))
}

func (Native) AtomicStore32(p unsafe.Pointer, v uint32) {
	atomic.StoreUint32((*uint32)(p), v)
}

func (Native) AtomicStore64(p unsafe.Pointer, v uint64) {
	atomic.StoreUint64((*uint64)(p), v)
}

func (Native) AtomicStorePointer(p unsafe.Pointer, v unsafe.Pointer) {
	atomic.StorePointer((*unsafe.Pointer)(p), v)
}

func (Native) CompareAndSwap32(p unsafe.Pointer, old, new uint32) bool {
	return atomic.CompareAndSwapUint32((*uint32)(p), old, new)
}

func (Native) CompareAndSwap64(p unsafe.Pointer, old, new uint64) bool {
	return atomic.CompareAndSwapUint64((*uint64)(p), old, new)
}

func (Native) CompareAndSwapPointer(p unsafe.Pointer, old, new unsafe.Pointer) bool {
	return atomic.CompareAndSwapPointer((*unsafe.Pointer)(p), old, new)
}

func (Native) Copy(dst, src unsafe.Pointer, n int) {
	if n <= 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func (Native) Fill(p unsafe.Pointer, n int, v byte) {
	if n <= 0 {
		return
	}
	b := unsafe.Slice((*byte)(p), n)
	if v == 0 {
		clear(b)
		return
	}
	for i := range b {
		b[i] = v
	}
}

func (n Native) load16Split(p unsafe.Pointer) uint16 {
	b0 := uint16(n.AtomicLoad8(p))
	b1 := uint16(n.AtomicLoad8(unsafe.Add(p, 1)))
	if BigEndian {
		return b0<<8 | b1
	}
	return b1<<8 | b0
}

func (n Native) store16Split(p unsafe.Pointer, v uint16) {
	if BigEndian {
		n.AtomicStore8(p, uint8(v>>8))
		n.AtomicStore8(unsafe.Add(p, 1), uint8(v))
		return
	}
	n.AtomicStore8(p, uint8(v))
	n.AtomicStore8(unsafe.Add(p, 1), uint8(v>>8))
}

// enclosingWord returns the aligned 32-bit word containing the size-byte lane
// at p, and the bit shift of that lane inside the word.
func enclosingWord(p unsafe.Pointer, size uintptr) (*uint32, uint) {
	lane := uintptr(p) & 3
	w := (*uint32)(unsafe.Add(p, -int(lane)))
	if BigEndian {
		return w, uint((4 - size - lane) * 8)
	}
	return w, uint(lane * 8)
}

func storeLane(w *uint32, shift uint, mask, v uint32) {
	mask <<= shift
	v <<= shift
	for {
		old := atomic.LoadUint32(w)
		if atomic.CompareAndSwapUint32(w, old, old&^mask|v) {
			return
		}
	}
}
