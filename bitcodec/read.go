package bitcodec

import "math"

// ReadChar reads a 16-bit character in the given byte order.
func ReadChar[R Reader](r R, offset int64, bigEndian bool) uint16 {
	if bigEndian {
		return ReadCharB(r, offset)
	}
	return ReadCharL(r, offset)
}

// ReadCharB reads a big-endian 16-bit character.
func ReadCharB[R Reader](r R, offset int64) uint16 {
	b1 := uint16(r.GetByte(offset))
	b0 := uint16(r.GetByte(offset + 1))
	return b1<<8 | b0
}

// ReadCharL reads a little-endian 16-bit character.
func ReadCharL[R Reader](r R, offset int64) uint16 {
	b0 := uint16(r.GetByte(offset))
	b1 := uint16(r.GetByte(offset + 1))
	return b1<<8 | b0
}

// ReadShort reads a 16-bit signed integer in the given byte order.
func ReadShort[R Reader](r R, offset int64, bigEndian bool) int16 {
	if bigEndian {
		return ReadShortB(r, offset)
	}
	return ReadShortL(r, offset)
}

// ReadShortB reads a big-endian 16-bit signed integer.
func ReadShortB[R Reader](r R, offset int64) int16 {
	return int16(ReadCharB(r, offset))
}

// ReadShortL reads a little-endian 16-bit signed integer.
func ReadShortL[R Reader](r R, offset int64) int16 {
	return int16(ReadCharL(r, offset))
}

// ReadInt reads a 32-bit signed integer in the given byte order.
func ReadInt[R Reader](r R, offset int64, bigEndian bool) int32 {
	if bigEndian {
		return ReadIntB(r, offset)
	}
	return ReadIntL(r, offset)
}

// ReadIntB reads a big-endian 32-bit signed integer.
func ReadIntB[R Reader](r R, offset int64) int32 {
	b3 := uint32(r.GetByte(offset)) << 24
	b2 := uint32(r.GetByte(offset+1)) << 16
	b1 := uint32(r.GetByte(offset+2)) << 8
	b0 := uint32(r.GetByte(offset + 3))
	return int32(b3 | b2 | b1 | b0)
}

// ReadIntL reads a little-endian 32-bit signed integer.
func ReadIntL[R Reader](r R, offset int64) int32 {
	b0 := uint32(r.GetByte(offset))
	b1 := uint32(r.GetByte(offset+1)) << 8
	b2 := uint32(r.GetByte(offset+2)) << 16
	b3 := uint32(r.GetByte(offset+3)) << 24
	return int32(b3 | b2 | b1 | b0)
}

// ReadFloat reads an IEEE-754 single in the given byte order.
func ReadFloat[R Reader](r R, offset int64, bigEndian bool) float32 {
	if bigEndian {
		return ReadFloatB(r, offset)
	}
	return ReadFloatL(r, offset)
}

// ReadFloatB reads a big-endian IEEE-754 single.
func ReadFloatB[R Reader](r R, offset int64) float32 {
	return math.Float32frombits(uint32(ReadIntB(r, offset)))
}

// ReadFloatL reads a little-endian IEEE-754 single.
func ReadFloatL[R Reader](r R, offset int64) float32 {
	return math.Float32frombits(uint32(ReadIntL(r, offset)))
}

// ReadLong reads a 64-bit signed integer in the given byte order.
func ReadLong[R Reader](r R, offset int64, bigEndian bool) int64 {
	if bigEndian {
		return ReadLongB(r, offset)
	}
	return ReadLongL(r, offset)
}

// ReadLongB reads a big-endian 64-bit signed integer.
func ReadLongB[R Reader](r R, offset int64) int64 {
	var v uint64
	for i := int64(0); i < LongSize; i++ {
		v = v<<8 | uint64(r.GetByte(offset+i))
	}
	return int64(v)
}

// ReadLongL reads a little-endian 64-bit signed integer.
func ReadLongL[R Reader](r R, offset int64) int64 {
	var v uint64
	for i := int64(LongSize - 1); i >= 0; i-- {
		v = v<<8 | uint64(r.GetByte(offset+i))
	}
	return int64(v)
}

// ReadDouble reads an IEEE-754 double in the given byte order.
func ReadDouble[R Reader](r R, offset int64, bigEndian bool) float64 {
	if bigEndian {
		return ReadDoubleB(r, offset)
	}
	return ReadDoubleL(r, offset)
}

// ReadDoubleB reads a big-endian IEEE-754 double.
func ReadDoubleB[R Reader](r R, offset int64) float64 {
	return math.Float64frombits(uint64(ReadLongB(r, offset)))
}

// ReadDoubleL reads a little-endian IEEE-754 double.
func ReadDoubleL[R Reader](r R, offset int64) float64 {
	return math.Float64frombits(uint64(ReadLongL(r, offset)))
}
