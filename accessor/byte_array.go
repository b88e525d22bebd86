package accessor

import (
	"unsafe"

	"github.com/hupe1980/memaccess/strategy"
)

// ByteArray accesses a []byte as flat storage indexed from 0. Every access
// is bounds-checked and panics with an *IndexError when [index,
// index+width) leaves the buffer.
//
// With a strategy available, index i is translated to the array offset
// ArrayBaseOffset(Byte)+i and served by the strategy, so volatile and
// atomic operations work. Without one, a pure path serves plain and
// explicit-order accesses and panics with an *UnsupportedError for the
// rest.
type ByteArray struct {
	ConcurrentAccessor

	buf       []byte
	intrinsic bool
}

// NewByteArray returns a ByteArray over buf. The accessor aliases buf; it
// never copies or grows it.
func NewByteArray(buf []byte, optFns ...Option) *ByteArray {
	b := &ByteArray{buf: buf}

	s, err := resolve(optFns)
	if err != nil || s.ArrayBaseOffset(strategy.Byte) < 0 {
		b.ConcurrentAccessor = &pureBytes{buf: buf}
		return b
	}

	b.ConcurrentAccessor = &access{
		s:      s,
		base:   unsafe.Pointer(unsafe.SliceData(buf)),
		delta:  s.ArrayBaseOffset(strategy.Byte),
		length: int64(len(buf)),
	}
	b.intrinsic = true
	return b
}

// Bytes returns the backing buffer.
func (b *ByteArray) Bytes() []byte { return b.buf }

// Len returns the length of the backing buffer.
func (b *ByteArray) Len() int { return len(b.buf) }

// Intrinsic reports whether accesses go through a strategy. When false,
// volatile, compare-and-swap and ordered operations panic.
func (b *ByteArray) Intrinsic() bool { return b.intrinsic }
