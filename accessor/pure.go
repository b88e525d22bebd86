package accessor

import (
	"github.com/hupe1980/memaccess/bitcodec"
)

// pureBytes serves a byte array without the host intrinsic. Multi-byte
// values are assembled by the bit codec in native order; operations that
// need atomicity panic with an *UnsupportedError.
type pureBytes struct {
	buf bitcodec.Bytes
}

var _ ConcurrentAccessor = (*pureBytes)(nil)

func (p *pureBytes) at(index, width int64) int64 {
	checkRange(index, width, int64(len(p.buf)))
	return index
}

func (p *pureBytes) GetBool(index int64) bool {
	return p.buf[p.at(index, bitcodec.BoolSize)] != 0
}

func (p *pureBytes) PutBool(index int64, v bool) {
	var b byte
	if v {
		b = 1
	}
	p.buf[p.at(index, bitcodec.BoolSize)] = b
}

func (p *pureBytes) GetByte(index int64) byte {
	return p.buf[p.at(index, bitcodec.ByteSize)]
}

func (p *pureBytes) PutByte(index int64, v byte) {
	p.buf[p.at(index, bitcodec.ByteSize)] = v
}

func (p *pureBytes) GetChar(index int64) uint16 {
	return bitcodec.ReadChar(p.buf, p.at(index, bitcodec.CharSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutChar(index int64, v uint16) {
	bitcodec.WriteChar(p.buf, p.at(index, bitcodec.CharSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetShort(index int64) int16 {
	return bitcodec.ReadShort(p.buf, p.at(index, bitcodec.ShortSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutShort(index int64, v int16) {
	bitcodec.WriteShort(p.buf, p.at(index, bitcodec.ShortSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetInt(index int64) int32 {
	return bitcodec.ReadInt(p.buf, p.at(index, bitcodec.IntSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutInt(index int64, v int32) {
	bitcodec.WriteInt(p.buf, p.at(index, bitcodec.IntSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetFloat(index int64) float32 {
	return bitcodec.ReadFloat(p.buf, p.at(index, bitcodec.FloatSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutFloat(index int64, v float32) {
	bitcodec.WriteFloat(p.buf, p.at(index, bitcodec.FloatSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetLong(index int64) int64 {
	return bitcodec.ReadLong(p.buf, p.at(index, bitcodec.LongSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutLong(index int64, v int64) {
	bitcodec.WriteLong(p.buf, p.at(index, bitcodec.LongSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetDouble(index int64) float64 {
	return bitcodec.ReadDouble(p.buf, p.at(index, bitcodec.DoubleSize), bitcodec.NativeBigEndian)
}

func (p *pureBytes) PutDouble(index int64, v float64) {
	bitcodec.WriteDouble(p.buf, p.at(index, bitcodec.DoubleSize), v, bitcodec.NativeBigEndian)
}

func (p *pureBytes) GetCharEndian(index int64, bigEndian bool) uint16 {
	return bitcodec.ReadChar(p.buf, p.at(index, bitcodec.CharSize), bigEndian)
}

func (p *pureBytes) PutCharEndian(index int64, v uint16, bigEndian bool) {
	bitcodec.WriteChar(p.buf, p.at(index, bitcodec.CharSize), v, bigEndian)
}

func (p *pureBytes) GetShortEndian(index int64, bigEndian bool) int16 {
	return bitcodec.ReadShort(p.buf, p.at(index, bitcodec.ShortSize), bigEndian)
}

func (p *pureBytes) PutShortEndian(index int64, v int16, bigEndian bool) {
	bitcodec.WriteShort(p.buf, p.at(index, bitcodec.ShortSize), v, bigEndian)
}

func (p *pureBytes) GetIntEndian(index int64, bigEndian bool) int32 {
	return bitcodec.ReadInt(p.buf, p.at(index, bitcodec.IntSize), bigEndian)
}

func (p *pureBytes) PutIntEndian(index int64, v int32, bigEndian bool) {
	bitcodec.WriteInt(p.buf, p.at(index, bitcodec.IntSize), v, bigEndian)
}

func (p *pureBytes) GetFloatEndian(index int64, bigEndian bool) float32 {
	return bitcodec.ReadFloat(p.buf, p.at(index, bitcodec.FloatSize), bigEndian)
}

func (p *pureBytes) PutFloatEndian(index int64, v float32, bigEndian bool) {
	bitcodec.WriteFloat(p.buf, p.at(index, bitcodec.FloatSize), v, bigEndian)
}

func (p *pureBytes) GetLongEndian(index int64, bigEndian bool) int64 {
	return bitcodec.ReadLong(p.buf, p.at(index, bitcodec.LongSize), bigEndian)
}

func (p *pureBytes) PutLongEndian(index int64, v int64, bigEndian bool) {
	bitcodec.WriteLong(p.buf, p.at(index, bitcodec.LongSize), v, bigEndian)
}

func (p *pureBytes) GetDoubleEndian(index int64, bigEndian bool) float64 {
	return bitcodec.ReadDouble(p.buf, p.at(index, bitcodec.DoubleSize), bigEndian)
}

func (p *pureBytes) PutDoubleEndian(index int64, v float64, bigEndian bool) {
	bitcodec.WriteDouble(p.buf, p.at(index, bitcodec.DoubleSize), v, bigEndian)
}

func (p *pureBytes) CopyMemory(src, dst, n int64) {
	if n == 0 {
		return
	}
	copy(p.buf[p.at(dst, n):dst+n], p.buf[p.at(src, n):src+n])
}

func (p *pureBytes) CopyFromBytes(dst int64, src []byte) {
	n := int64(len(src))
	if n == 0 {
		return
	}
	copy(p.buf[p.at(dst, n):dst+n], src)
}

func (p *pureBytes) CopyToBytes(src int64, dst []byte) {
	n := int64(len(dst))
	if n == 0 {
		return
	}
	copy(dst, p.buf[p.at(src, n):src+n])
}

func (p *pureBytes) SetMemory(index, n int64, v byte) {
	if n == 0 {
		return
	}
	b := p.buf[p.at(index, n) : index+n]
	if v == 0 {
		clear(b)
		return
	}
	for i := range b {
		b[i] = v
	}
}

func (p *pureBytes) GetBoolVolatile(int64) bool {
	panic(&UnsupportedError{Op: "GetBoolVolatile"})
}

func (p *pureBytes) PutBoolVolatile(int64, bool) {
	panic(&UnsupportedError{Op: "PutBoolVolatile"})
}

func (p *pureBytes) GetByteVolatile(int64) byte {
	panic(&UnsupportedError{Op: "GetByteVolatile"})
}

func (p *pureBytes) PutByteVolatile(int64, byte) {
	panic(&UnsupportedError{Op: "PutByteVolatile"})
}

func (p *pureBytes) GetCharVolatile(int64) uint16 {
	panic(&UnsupportedError{Op: "GetCharVolatile"})
}

func (p *pureBytes) PutCharVolatile(int64, uint16) {
	panic(&UnsupportedError{Op: "PutCharVolatile"})
}

func (p *pureBytes) GetShortVolatile(int64) int16 {
	panic(&UnsupportedError{Op: "GetShortVolatile"})
}

func (p *pureBytes) PutShortVolatile(int64, int16) {
	panic(&UnsupportedError{Op: "PutShortVolatile"})
}

func (p *pureBytes) GetIntVolatile(int64) int32 {
	panic(&UnsupportedError{Op: "GetIntVolatile"})
}

func (p *pureBytes) PutIntVolatile(int64, int32) {
	panic(&UnsupportedError{Op: "PutIntVolatile"})
}

func (p *pureBytes) GetFloatVolatile(int64) float32 {
	panic(&UnsupportedError{Op: "GetFloatVolatile"})
}

func (p *pureBytes) PutFloatVolatile(int64, float32) {
	panic(&UnsupportedError{Op: "PutFloatVolatile"})
}

func (p *pureBytes) GetLongVolatile(int64) int64 {
	panic(&UnsupportedError{Op: "GetLongVolatile"})
}

func (p *pureBytes) PutLongVolatile(int64, int64) {
	panic(&UnsupportedError{Op: "PutLongVolatile"})
}

func (p *pureBytes) GetDoubleVolatile(int64) float64 {
	panic(&UnsupportedError{Op: "GetDoubleVolatile"})
}

func (p *pureBytes) PutDoubleVolatile(int64, float64) {
	panic(&UnsupportedError{Op: "PutDoubleVolatile"})
}

func (p *pureBytes) CompareAndSwapInt(int64, int32, int32) bool {
	panic(&UnsupportedError{Op: "CompareAndSwapInt"})
}

func (p *pureBytes) CompareAndSwapLong(int64, int64, int64) bool {
	panic(&UnsupportedError{Op: "CompareAndSwapLong"})
}

func (p *pureBytes) PutIntOrdered(int64, int32) {
	panic(&UnsupportedError{Op: "PutIntOrdered"})
}

func (p *pureBytes) PutLongOrdered(int64, int64) {
	panic(&UnsupportedError{Op: "PutLongOrdered"})
}
