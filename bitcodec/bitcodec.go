package bitcodec

import "golang.org/x/sys/cpu"

// NativeBigEndian reports whether the host byte order is big endian.
const NativeBigEndian = cpu.IsBigEndian

// Sizes in bytes of the primitive kinds.
const (
	BoolSize   = 1
	ByteSize   = 1
	CharSize   = 2
	ShortSize  = 2
	IntSize    = 4
	FloatSize  = 4
	LongSize   = 8
	DoubleSize = 8
)

const (
	// NullArrayLength is the length written in place of a nil array.
	NullArrayLength = -1
	// CacheLineLength is the assumed CPU cache line size.
	CacheLineLength = 64
)

// Reader reads single bytes from a resource.
type Reader interface {
	GetByte(offset int64) byte
}

// Writer writes single bytes to a resource.
type Writer interface {
	PutByte(offset int64, v byte)
}

// ReadWriter groups Reader and Writer.
type ReadWriter interface {
	Reader
	Writer
}

// Bytes adapts a byte slice to ReadWriter. Offsets are slice indexes.
type Bytes []byte

// GetByte returns b[offset].
func (b Bytes) GetByte(offset int64) byte {
	return b[offset]
}

// PutByte sets b[offset].
func (b Bytes) PutByte(offset int64, v byte) {
	b[offset] = v
}
