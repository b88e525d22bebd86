package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memaccess/internal/host"
)

// op is one typed put/get pair. Values travel as raw bits; mask keeps the
// significant bits and keeps floats away from NaN payloads.
type op struct {
	name     string
	size     int64
	mask     uint64
	volatile bool
	put      func(s Strategy, addr int64, v uint64)
	get      func(s Strategy, addr int64) uint64
}

const (
	floatMask  = 0xBFFF_FFFF
	doubleMask = 0xBFFF_FFFF_FFFF_FFFF
)

func plainOps() []op {
	return []op{
		{name: "char", size: 2, mask: 0xFFFF,
			put: func(s Strategy, a int64, v uint64) { s.PutChar(a, uint16(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetChar(a)) }},
		{name: "short", size: 2, mask: 0xFFFF,
			put: func(s Strategy, a int64, v uint64) { s.PutShort(a, int16(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint16(s.GetShort(a))) }},
		{name: "int", size: 4, mask: math.MaxUint32,
			put: func(s Strategy, a int64, v uint64) { s.PutInt(a, int32(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint32(s.GetInt(a))) }},
		{name: "float", size: 4, mask: floatMask,
			put: func(s Strategy, a int64, v uint64) { s.PutFloat(a, math.Float32frombits(uint32(v))) },
			get: func(s Strategy, a int64) uint64 { return uint64(math.Float32bits(s.GetFloat(a))) }},
		{name: "long", size: 8, mask: math.MaxUint64,
			put: func(s Strategy, a int64, v uint64) { s.PutLong(a, int64(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetLong(a)) }},
		{name: "double", size: 8, mask: doubleMask,
			put: func(s Strategy, a int64, v uint64) { s.PutDouble(a, math.Float64frombits(v)) },
			get: func(s Strategy, a int64) uint64 { return math.Float64bits(s.GetDouble(a)) }},
	}
}

func volatileOps() []op {
	return []op{
		{name: "char volatile", size: 2, mask: 0xFFFF, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutCharVolatile(a, uint16(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetCharVolatile(a)) }},
		{name: "short volatile", size: 2, mask: 0xFFFF, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutShortVolatile(a, int16(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint16(s.GetShortVolatile(a))) }},
		{name: "int volatile", size: 4, mask: math.MaxUint32, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutIntVolatile(a, int32(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint32(s.GetIntVolatile(a))) }},
		{name: "float volatile", size: 4, mask: floatMask, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutFloatVolatile(a, math.Float32frombits(uint32(v))) },
			get: func(s Strategy, a int64) uint64 { return uint64(math.Float32bits(s.GetFloatVolatile(a))) }},
		{name: "long volatile", size: 8, mask: math.MaxUint64, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutLongVolatile(a, int64(v)) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetLongVolatile(a)) }},
		{name: "double volatile", size: 8, mask: doubleMask, volatile: true,
			put: func(s Strategy, a int64, v uint64) { s.PutDoubleVolatile(a, math.Float64frombits(v)) },
			get: func(s Strategy, a int64) uint64 { return math.Float64bits(s.GetDoubleVolatile(a)) }},
	}
}

func endianOps(bigEndian bool) []op {
	suffix := " LE"
	if bigEndian {
		suffix = " BE"
	}
	return []op{
		{name: "char" + suffix, size: 2, mask: 0xFFFF,
			put: func(s Strategy, a int64, v uint64) { s.PutCharEndian(a, uint16(v), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetCharEndian(a, bigEndian)) }},
		{name: "short" + suffix, size: 2, mask: 0xFFFF,
			put: func(s Strategy, a int64, v uint64) { s.PutShortEndian(a, int16(v), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint16(s.GetShortEndian(a, bigEndian))) }},
		{name: "int" + suffix, size: 4, mask: math.MaxUint32,
			put: func(s Strategy, a int64, v uint64) { s.PutIntEndian(a, int32(v), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return uint64(uint32(s.GetIntEndian(a, bigEndian))) }},
		{name: "float" + suffix, size: 4, mask: floatMask,
			put: func(s Strategy, a int64, v uint64) { s.PutFloatEndian(a, math.Float32frombits(uint32(v)), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return uint64(math.Float32bits(s.GetFloatEndian(a, bigEndian))) }},
		{name: "long" + suffix, size: 8, mask: math.MaxUint64,
			put: func(s Strategy, a int64, v uint64) { s.PutLongEndian(a, int64(v), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return uint64(s.GetLongEndian(a, bigEndian)) }},
		{name: "double" + suffix, size: 8, mask: doubleMask,
			put: func(s Strategy, a int64, v uint64) { s.PutDoubleEndian(a, math.Float64frombits(v), bigEndian) },
			get: func(s Strategy, a int64) uint64 { return math.Float64bits(s.GetDoubleEndian(a, bigEndian)) }},
	}
}

func allOps() []op {
	ops := plainOps()
	ops = append(ops, volatileOps()...)
	ops = append(ops, endianOps(true)...)
	return append(ops, endianOps(false)...)
}

func newStrategies(t testing.TB) (*Standard, *AlignmentAware) {
	t.Helper()
	std, err := NewStandard(host.Native{})
	require.NoError(t, err)
	aa, err := NewAlignmentAware(host.Native{})
	require.NoError(t, err)
	return std, aa
}
