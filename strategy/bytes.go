package strategy

import (
	"unsafe"

	"github.com/hupe1980/memaccess/internal/host"
)

// plainBytes exposes the bytes at base+offset to the bit codec through plain
// single-byte host accesses.
type plainBytes struct {
	h      host.Host
	base   unsafe.Pointer
	offset int64
}

func (b plainBytes) GetByte(i int64) byte {
	return b.h.Load8(host.Pointer(b.base, b.offset+i))
}

func (b plainBytes) PutByte(i int64, v byte) {
	b.h.Store8(host.Pointer(b.base, b.offset+i), v)
}

// volatileBytes is plainBytes with every byte accessed atomically.
type volatileBytes struct {
	h      host.Host
	base   unsafe.Pointer
	offset int64
}

func (b volatileBytes) GetByte(i int64) byte {
	return b.h.AtomicLoad8(host.Pointer(b.base, b.offset+i))
}

func (b volatileBytes) PutByte(i int64, v byte) {
	b.h.AtomicStore8(host.Pointer(b.base, b.offset+i), v)
}
