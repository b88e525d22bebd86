package bitcodec

// Integer is the set of types the bit helpers operate on.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// SetBit returns value with the given bit set.
func SetBit[T Integer](value T, bit int) T {
	return value | T(1)<<bit
}

// ClearBit returns value with the given bit cleared.
func ClearBit[T Integer](value T, bit int) T {
	return value &^ (T(1) << bit)
}

// InvertBit returns value with the given bit flipped.
func InvertBit[T Integer](value T, bit int) T {
	return value ^ T(1)<<bit
}

// IsBitSet reports whether the given bit of value is set.
func IsBitSet[T Integer](value T, bit int) bool {
	return value&(T(1)<<bit) != 0
}

// CombineToInt packs x into the upper and y into the lower 16 bits.
func CombineToInt(x, y int16) int32 {
	return int32(x)<<16 | int32(uint16(y))
}

// ExtractShort returns the lower or upper 16 bits of value.
func ExtractShort(value int32, lowerBits bool) int16 {
	if lowerBits {
		return int16(value)
	}
	return int16(value >> 16)
}

// CombineToLong packs x into the upper and y into the lower 32 bits.
func CombineToLong(x, y int32) int64 {
	return int64(x)<<32 | int64(uint32(y))
}

// ExtractInt returns the lower or upper 32 bits of value.
func ExtractInt(value int64, lowerBits bool) int32 {
	if lowerBits {
		return int32(value)
	}
	return int32(value >> 32)
}
