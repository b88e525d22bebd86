package bitcodec

import "math"

// WriteChar writes a 16-bit character in the given byte order.
func WriteChar[W Writer](w W, offset int64, v uint16, bigEndian bool) {
	if bigEndian {
		WriteCharB(w, offset, v)
	} else {
		WriteCharL(w, offset, v)
	}
}

// WriteCharB writes a big-endian 16-bit character.
func WriteCharB[W Writer](w W, offset int64, v uint16) {
	w.PutByte(offset, byte(v>>8))
	w.PutByte(offset+1, byte(v))
}

// WriteCharL writes a little-endian 16-bit character.
func WriteCharL[W Writer](w W, offset int64, v uint16) {
	w.PutByte(offset, byte(v))
	w.PutByte(offset+1, byte(v>>8))
}

// WriteShort writes a 16-bit signed integer in the given byte order.
func WriteShort[W Writer](w W, offset int64, v int16, bigEndian bool) {
	WriteChar(w, offset, uint16(v), bigEndian)
}

// WriteShortB writes a big-endian 16-bit signed integer.
func WriteShortB[W Writer](w W, offset int64, v int16) {
	WriteCharB(w, offset, uint16(v))
}

// WriteShortL writes a little-endian 16-bit signed integer.
func WriteShortL[W Writer](w W, offset int64, v int16) {
	WriteCharL(w, offset, uint16(v))
}

// WriteInt writes a 32-bit signed integer in the given byte order.
func WriteInt[W Writer](w W, offset int64, v int32, bigEndian bool) {
	if bigEndian {
		WriteIntB(w, offset, v)
	} else {
		WriteIntL(w, offset, v)
	}
}

// WriteIntB writes a big-endian 32-bit signed integer.
func WriteIntB[W Writer](w W, offset int64, v int32) {
	u := uint32(v)
	w.PutByte(offset, byte(u>>24))
	w.PutByte(offset+1, byte(u>>16))
	w.PutByte(offset+2, byte(u>>8))
	w.PutByte(offset+3, byte(u))
}

// WriteIntL writes a little-endian 32-bit signed integer.
func WriteIntL[W Writer](w W, offset int64, v int32) {
	u := uint32(v)
	w.PutByte(offset, byte(u))
	w.PutByte(offset+1, byte(u>>8))
	w.PutByte(offset+2, byte(u>>16))
	w.PutByte(offset+3, byte(u>>24))
}

// WriteFloat writes an IEEE-754 single in the given byte order.
func WriteFloat[W Writer](w W, offset int64, v float32, bigEndian bool) {
	WriteInt(w, offset, int32(math.Float32bits(v)), bigEndian)
}

// WriteFloatB writes a big-endian IEEE-754 single.
func WriteFloatB[W Writer](w W, offset int64, v float32) {
	WriteIntB(w, offset, int32(math.Float32bits(v)))
}

// WriteFloatL writes a little-endian IEEE-754 single.
func WriteFloatL[W Writer](w W, offset int64, v float32) {
	WriteIntL(w, offset, int32(math.Float32bits(v)))
}

// WriteLong writes a 64-bit signed integer in the given byte order.
func WriteLong[W Writer](w W, offset int64, v int64, bigEndian bool) {
	if bigEndian {
		WriteLongB(w, offset, v)
	} else {
		WriteLongL(w, offset, v)
	}
}

// WriteLongB writes a big-endian 64-bit signed integer.
func WriteLongB[W Writer](w W, offset int64, v int64) {
	u := uint64(v)
	for i := int64(0); i < LongSize; i++ {
		w.PutByte(offset+i, byte(u>>(56-8*i)))
	}
}

// WriteLongL writes a little-endian 64-bit signed integer.
func WriteLongL[W Writer](w W, offset int64, v int64) {
	u := uint64(v)
	for i := int64(0); i < LongSize; i++ {
		w.PutByte(offset+i, byte(u))
		u >>= 8
	}
}

// WriteDouble writes an IEEE-754 double in the given byte order.
func WriteDouble[W Writer](w W, offset int64, v float64, bigEndian bool) {
	WriteLong(w, offset, int64(math.Float64bits(v)), bigEndian)
}

// WriteDoubleB writes a big-endian IEEE-754 double.
func WriteDoubleB[W Writer](w W, offset int64, v float64) {
	WriteLongB(w, offset, int64(math.Float64bits(v)))
}

// WriteDoubleL writes a little-endian IEEE-754 double.
func WriteDoubleL[W Writer](w W, offset int64, v float64) {
	WriteLongL(w, offset, int64(math.Float64bits(v)))
}
