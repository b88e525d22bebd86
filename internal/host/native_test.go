//go:build !purego

package host

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/memaccess/internal/mem"
	"github.com/hupe1980/memaccess/testutil"
)

func at(buf []byte, i int) unsafe.Pointer {
	return unsafe.Pointer(&buf[i])
}

func TestDefault(t *testing.T) {
	assert.True(t, Available())
	assert.Equal(t, Native{}, Default())
}

func TestNative_PlainRoundTrip(t *testing.T) {
	var n Native
	buf := mem.Aligned(32, 8)

	for off := 0; off < 8; off++ {
		n.Store8(at(buf, off), 0xA5)
		assert.Equal(t, uint8(0xA5), n.Load8(at(buf, off)))

		n.Store16(at(buf, off), 0xBEEF)
		assert.Equal(t, uint16(0xBEEF), n.Load16(at(buf, off)))

		n.Store32(at(buf, off), 0xDEADBEEF)
		assert.Equal(t, uint32(0xDEADBEEF), n.Load32(at(buf, off)))

		n.Store64(at(buf, off), 0x0123456789ABCDEF)
		assert.Equal(t, uint64(0x0123456789ABCDEF), n.Load64(at(buf, off)))
	}
}

func TestNative_NativeOrder(t *testing.T) {
	var n Native
	buf := mem.Aligned(4, 4)
	n.Store32(at(buf, 0), 0x12345678)

	if BigEndian {
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf)
	} else {
		assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, buf)
	}
}

func TestNative_AtomicLanesKeepNeighbours(t *testing.T) {
	var n Native
	buf := mem.Aligned(8, 8)
	for i := range buf {
		buf[i] = 0x11
	}

	n.AtomicStore8(at(buf, 1), 0xFF)
	assert.Equal(t, []byte{0x11, 0xFF, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11}, buf)
	assert.Equal(t, uint8(0xFF), n.AtomicLoad8(at(buf, 1)))
	assert.Equal(t, uint8(0x11), n.AtomicLoad8(at(buf, 2)))

	for lane := 0; lane < 4; lane++ {
		n.AtomicStore16(at(buf, lane), 0xCAFE)
		assert.Equal(t, uint16(0xCAFE), n.AtomicLoad16(at(buf, lane)), "lane %d", lane)
		assert.Equal(t, uint16(0xCAFE), n.Load16(at(buf, lane)), "lane %d", lane)
	}
}

func TestNative_AtomicWords(t *testing.T) {
	var n Native
	buf := mem.Aligned(16, 8)

	n.AtomicStore32(at(buf, 4), 7)
	assert.Equal(t, uint32(7), n.AtomicLoad32(at(buf, 4)))
	assert.Equal(t, uint32(7), n.Load32(at(buf, 4)))

	n.AtomicStore64(at(buf, 8), 1<<40)
	assert.Equal(t, uint64(1<<40), n.AtomicLoad64(at(buf, 8)))

	assert.True(t, n.CompareAndSwap32(at(buf, 4), 7, 9))
	assert.False(t, n.CompareAndSwap32(at(buf, 4), 7, 11))
	assert.Equal(t, uint32(9), n.Load32(at(buf, 4)))

	assert.True(t, n.CompareAndSwap64(at(buf, 8), 1<<40, 3))
	assert.False(t, n.CompareAndSwap64(at(buf, 8), 1<<40, 5))
	assert.Equal(t, uint64(3), n.Load64(at(buf, 8)))
}

func TestNative_Pointers(t *testing.T) {
	var n Native
	a, b := new(int), new(int)

	holder := struct {
		_ uint64
		p unsafe.Pointer
	}{}
	slot := unsafe.Pointer(&holder.p)

	n.StorePointer(slot, unsafe.Pointer(a))
	assert.Equal(t, unsafe.Pointer(a), n.LoadPointer(slot))

	n.AtomicStorePointer(slot, unsafe.Pointer(b))
	assert.Equal(t, unsafe.Pointer(b), n.AtomicLoadPointer(slot))

	assert.True(t, n.CompareAndSwapPointer(slot, unsafe.Pointer(b), unsafe.Pointer(a)))
	assert.False(t, n.CompareAndSwapPointer(slot, unsafe.Pointer(b), nil))
	assert.Equal(t, unsafe.Pointer(a), holder.p)
}

func TestNative_CopyAndFill(t *testing.T) {
	var n Native
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	// Overlapping forward move.
	n.Copy(at(buf, 2), at(buf, 0), 4)
	assert.Equal(t, []byte{1, 2, 1, 2, 3, 4, 7, 8}, buf)

	n.Fill(at(buf, 1), 3, 0x7F)
	assert.Equal(t, []byte{1, 0x7F, 0x7F, 0x7F, 3, 4, 7, 8}, buf)

	n.Fill(at(buf, 0), 8, 0)
	assert.Equal(t, make([]byte, 8), buf)

	n.Copy(at(buf, 0), at(buf, 1), 0)
	n.Fill(at(buf, 0), -1, 9)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestPointer(t *testing.T) {
	buf := mem.Aligned(16, 8)
	base := unsafe.Pointer(&buf[0])

	assert.Equal(t, unsafe.Pointer(&buf[5]), Pointer(base, 5))
	assert.True(t, IsAligned(base, 8))
	assert.False(t, IsAligned(unsafe.Pointer(&buf[1]), 2))
}

func TestPointer_RawAddress(t *testing.T) {
	// Raw addresses must point outside the Go heap.
	region := testutil.Region(t, 64)
	data := region.Bytes()
	addr := region.Address()

	assert.Equal(t, unsafe.Pointer(&data[3]), Pointer(nil, addr+3))
	assert.Equal(t, addr+3, Address(Pointer(nil, addr+3)))

	var n Native
	n.Store32(Pointer(nil, addr+8), 0xCAFEBABE)
	assert.Equal(t, uint32(0xCAFEBABE), n.Load32(unsafe.Pointer(&data[8])))
	assert.True(t, n.CompareAndSwap64(Pointer(nil, addr+16), 0, 7))
	assert.Equal(t, uint64(7), n.AtomicLoad64(Pointer(nil, addr+16)))
}

func TestNative_ConcurrentLaneStores(t *testing.T) {
	var n Native
	buf := mem.Aligned(4, 4)

	const rounds = 2000
	var g errgroup.Group
	for lane := 0; lane < 4; lane++ {
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				n.AtomicStore8(at(buf, lane), uint8(lane+1))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// No lane store may clobber a neighbour.
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
}

func BenchmarkNative_AtomicStore8(b *testing.B) {
	var n Native
	buf := mem.Aligned(4, 4)
	p := at(buf, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n.AtomicStore8(p, uint8(i))
	}
}
