package accessor

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/host"
	"github.com/hupe1980/memaccess/internal/mem"
	"github.com/hupe1980/memaccess/strategy"
	"github.com/hupe1980/memaccess/testutil"
)

func nativeProvider() *strategy.Provider {
	return strategy.NewProvider(strategy.WithHost(host.Native{}))
}

func pureProvider() *strategy.Provider {
	return strategy.NewProvider(strategy.WithHost(nil))
}

// roundTrip writes random values of every type at off and reads them back.
func roundTrip(t *testing.T, acc MemoryAccessor, off int64, f *fuzz.Fuzzer) {
	t.Helper()

	var (
		b  bool
		y  byte
		c  uint16
		s  int16
		n  int32
		l  int64
		fl float32
		d  float64
	)
	f.Fuzz(&b)
	f.Fuzz(&y)
	f.Fuzz(&c)
	f.Fuzz(&s)
	f.Fuzz(&n)
	f.Fuzz(&l)
	f.Fuzz(&fl)
	f.Fuzz(&d)

	acc.PutBool(off, b)
	require.Equal(t, b, acc.GetBool(off))
	acc.PutByte(off, y)
	require.Equal(t, y, acc.GetByte(off))
	acc.PutChar(off, c)
	require.Equal(t, c, acc.GetChar(off))
	acc.PutShort(off, s)
	require.Equal(t, s, acc.GetShort(off))
	acc.PutInt(off, n)
	require.Equal(t, n, acc.GetInt(off))
	acc.PutLong(off, l)
	require.Equal(t, l, acc.GetLong(off))
	acc.PutFloat(off, fl)
	require.Equal(t, math.Float32bits(fl), math.Float32bits(acc.GetFloat(off)))
	acc.PutDouble(off, d)
	require.Equal(t, math.Float64bits(d), math.Float64bits(acc.GetDouble(off)))

	for _, bigEndian := range []bool{true, false} {
		acc.PutCharEndian(off, c, bigEndian)
		require.Equal(t, c, acc.GetCharEndian(off, bigEndian))
		acc.PutShortEndian(off, s, bigEndian)
		require.Equal(t, s, acc.GetShortEndian(off, bigEndian))
		acc.PutIntEndian(off, n, bigEndian)
		require.Equal(t, n, acc.GetIntEndian(off, bigEndian))
		acc.PutLongEndian(off, l, bigEndian)
		require.Equal(t, l, acc.GetLongEndian(off, bigEndian))
		acc.PutFloatEndian(off, fl, bigEndian)
		require.Equal(t, math.Float32bits(fl), math.Float32bits(acc.GetFloatEndian(off, bigEndian)))
		acc.PutDoubleEndian(off, d, bigEndian)
		require.Equal(t, math.Float64bits(d), math.Float64bits(acc.GetDoubleEndian(off, bigEndian)))
	}
}

func TestDirect_RoundTrip(t *testing.T) {
	region := testutil.Region(t, 4096)
	f := fuzz.NewWithSeed(1)

	for _, opts := range [][]Option{
		{WithProvider(nativeProvider())},
		{WithProvider(nativeProvider()), WithAligned()},
	} {
		d, err := NewDirect(opts...)
		require.NoError(t, err)
		for off := int64(0); off < 64; off++ {
			roundTrip(t, d, region.Address()+off, f)
		}
	}
}

func TestBaseAddressed_RoundTripAndLayout(t *testing.T) {
	region := testutil.Region(t, 4096)
	sub, err := region.Region(1024, 64)
	require.NoError(t, err)

	b, err := NewBaseAddressed(sub.Address(), WithProvider(nativeProvider()))
	require.NoError(t, err)
	assert.Equal(t, region.Address()+1024, b.BaseAddress())

	b.PutIntEndian(4, 0x12345678, true)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, sub.Bytes()[4:8])
	b.PutIntEndian(4, 0x12345678, false)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, region.Bytes()[1028:1032])

	f := fuzz.NewWithSeed(2)
	for off := int64(0); off < 56; off++ {
		roundTrip(t, b, off, f)
	}
}

func TestConcurrentAccessors_CompareAndSwap(t *testing.T) {
	region := testutil.Region(t, 64)

	d, err := NewDirect(WithProvider(nativeProvider()))
	require.NoError(t, err)
	b, err := NewBaseAddressed(region.Address()+16, WithProvider(nativeProvider()))
	require.NoError(t, err)
	ba := NewByteArray(mem.Aligned(64, 8), WithProvider(nativeProvider()))
	require.True(t, ba.Intrinsic())

	for name, tc := range map[string]struct {
		acc  ConcurrentAccessor
		addr int64
	}{
		"direct":         {d, region.Address()},
		"base-addressed": {b, 0},
		"byte-array":     {ba, 8},
	} {
		t.Run(name, func(t *testing.T) {
			acc, a := tc.acc, tc.addr

			acc.PutInt(a, 5)
			assert.True(t, acc.CompareAndSwapInt(a, 5, 9))
			assert.Equal(t, int32(9), acc.GetInt(a))
			assert.False(t, acc.CompareAndSwapInt(a, 5, 9))
			assert.Equal(t, int32(9), acc.GetIntVolatile(a))

			acc.PutLongOrdered(a+8, 5)
			assert.True(t, acc.CompareAndSwapLong(a+8, 5, 9))
			assert.False(t, acc.CompareAndSwapLong(a+8, 5, 9))
			assert.Equal(t, int64(9), acc.GetLongVolatile(a+8))

			acc.PutIntOrdered(a, -3)
			assert.Equal(t, int32(-3), acc.GetIntVolatile(a))

			acc.PutDoubleVolatile(a, 1.25)
			assert.Equal(t, 1.25, acc.GetDoubleVolatile(a))
			acc.PutBoolVolatile(a, true)
			assert.True(t, acc.GetBoolVolatile(a))
			acc.PutCharVolatile(a+2, 0xBEEF)
			assert.Equal(t, uint16(0xBEEF), acc.GetCharVolatile(a+2))
		})
	}
}

func TestByteArray_Bounds(t *testing.T) {
	for name, p := range map[string]*strategy.Provider{"intrinsic": nativeProvider(), "pure": pureProvider()} {
		t.Run(name, func(t *testing.T) {
			buf := make([]byte, 16)
			ba := NewByteArray(buf, WithProvider(p))
			assert.Equal(t, 16, ba.Len())
			assert.Equal(t, name == "intrinsic", ba.Intrinsic())

			ba.PutByte(0, 1)
			ba.PutByte(15, 2)
			assert.Equal(t, byte(1), ba.GetByte(0))
			assert.Equal(t, byte(2), ba.GetByte(15))
			ba.PutLong(8, -1)
			assert.Equal(t, int64(-1), ba.GetLong(8))

			bad := map[string]func(){
				"byte past end":  func() { ba.GetByte(16) },
				"negative":       func() { ba.PutByte(-1, 0) },
				"long straddles": func() { ba.GetLong(9) },
				"char at last":   func() { ba.PutChar(15, 1) },
				"huge index":     func() { ba.GetInt(math.MaxInt64) },
				"copy overrun":   func() { ba.CopyMemory(0, 10, 8) },
				"set negative":   func() { ba.SetMemory(0, -1, 0) },
				"from overrun":   func() { ba.CopyFromBytes(12, make([]byte, 5)) },
				"to overrun":     func() { ba.CopyToBytes(12, make([]byte, 5)) },
			}
			for what, call := range bad {
				err := testutil.PanicError(call)
				require.ErrorIs(t, err, ErrInvalidIndex, what)
			}
			assert.Equal(t, byte(1), buf[0])
		})
	}
}

func TestByteArray_PathsAgree(t *testing.T) {
	intrinsic := NewByteArray(make([]byte, 64), WithProvider(nativeProvider()))
	pure := NewByteArray(make([]byte, 64), WithProvider(pureProvider()))
	require.True(t, intrinsic.Intrinsic())
	require.False(t, pure.Intrinsic())

	rng := testutil.NewRNG(99)
	for off := int64(0); off < 56; off++ {
		l := rng.Int64()
		n := rng.Int32()
		c := rng.Uint16()
		for _, acc := range []*ByteArray{intrinsic, pure} {
			acc.PutLong(off, l)
			acc.PutIntEndian(off, n, true)
			acc.PutCharEndian(off+4, c, false)
		}
		require.Equal(t, intrinsic.Bytes(), pure.Bytes(), "offset %d", off)
	}

	// Native order of the pure path matches the host.
	pure.PutInt(0, 0x01020304)
	assert.Equal(t, int32(0x01020304), bitcodec.ReadInt(bitcodec.Bytes(pure.Bytes()), 0, host.BigEndian))
}

func TestByteArray_RoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(3)
	for _, p := range []*strategy.Provider{nativeProvider(), pureProvider()} {
		ba := NewByteArray(make([]byte, 32), WithProvider(p))
		for off := int64(0); off <= 24; off++ {
			roundTrip(t, ba, off, f)
		}
	}
}

func TestByteArray_PureRejectsAtomics(t *testing.T) {
	ba := NewByteArray(make([]byte, 16), WithProvider(pureProvider()))

	calls := map[string]func(){
		"GetBoolVolatile":    func() { ba.GetBoolVolatile(0) },
		"PutByteVolatile":    func() { ba.PutByteVolatile(0, 1) },
		"GetCharVolatile":    func() { ba.GetCharVolatile(0) },
		"PutShortVolatile":   func() { ba.PutShortVolatile(0, 1) },
		"GetIntVolatile":     func() { ba.GetIntVolatile(0) },
		"PutFloatVolatile":   func() { ba.PutFloatVolatile(0, 1) },
		"GetLongVolatile":    func() { ba.GetLongVolatile(0) },
		"PutDoubleVolatile":  func() { ba.PutDoubleVolatile(0, 1) },
		"CompareAndSwapInt":  func() { ba.CompareAndSwapInt(0, 0, 1) },
		"CompareAndSwapLong": func() { ba.CompareAndSwapLong(0, 0, 1) },
		"PutIntOrdered":      func() { ba.PutIntOrdered(0, 1) },
		"PutLongOrdered":     func() { ba.PutLongOrdered(0, 1) },
	}
	for op, call := range calls {
		err := testutil.PanicError(call)
		require.ErrorIs(t, err, ErrUnsupported, op)
		var ue *UnsupportedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, op, ue.Op)
	}
	assert.Equal(t, make([]byte, 16), ba.Bytes())
}

func TestByteArray_AlignedStrategy(t *testing.T) {
	buf := mem.Aligned(32, 8)
	ba := NewByteArray(buf, WithProvider(nativeProvider()), WithAligned())
	require.True(t, ba.Intrinsic())

	// Misaligned volatile access falls back to byte assembly.
	ba.PutLongVolatile(3, 0x0102030405060708)
	assert.Equal(t, int64(0x0102030405060708), ba.GetLongVolatile(3))

	err := testutil.PanicError(func() { ba.CompareAndSwapInt(3, 0, 1) })
	require.ErrorIs(t, err, strategy.ErrMisalignedAtomicAccess)
	assert.Equal(t, int64(0x0102030405060708), ba.GetLong(3))
}

func TestCopyAndSet(t *testing.T) {
	region := testutil.Region(t, 256)
	d, err := NewDirect(WithProvider(nativeProvider()))
	require.NoError(t, err)

	accs := map[string]struct {
		acc  MemoryAccessor
		base int64
	}{
		"direct":    {d, region.Address()},
		"intrinsic": {NewByteArray(make([]byte, 256), WithProvider(nativeProvider())), 0},
		"pure":      {NewByteArray(make([]byte, 256), WithProvider(pureProvider())), 0},
	}

	for name, tc := range accs {
		t.Run(name, func(t *testing.T) {
			acc, a := tc.acc, tc.base

			acc.CopyFromBytes(a+10, []byte("memaccess"))
			out := make([]byte, 9)
			acc.CopyToBytes(a+10, out)
			assert.Equal(t, "memaccess", string(out))

			acc.CopyMemory(a+10, a+100, 9)
			acc.CopyToBytes(a+100, out)
			assert.Equal(t, "memaccess", string(out))

			acc.CopyMemory(a+10, a+12, 9)
			acc.CopyToBytes(a+10, out[:2])
			assert.Equal(t, "me", string(out[:2]))
			acc.CopyToBytes(a+12, out)
			assert.Equal(t, "memaccess", string(out))

			acc.SetMemory(a+200, 8, 0x5A)
			assert.Equal(t, int64(0x5A5A5A5A5A5A5A5A), acc.GetLong(a+200))
			acc.SetMemory(a+200, 8, 0)
			assert.Zero(t, acc.GetLong(a+200))

			acc.CopyFromBytes(a, nil)
			acc.CopyToBytes(a, nil)
			acc.SetMemory(a, 0, 1)
			assert.Equal(t, byte('m'), acc.GetByte(a+12))
		})
	}
}

func TestByteArray_ConcurrentCounter(t *testing.T) {
	ba := NewByteArray(mem.Aligned(64, 8), WithProvider(nativeProvider()), WithAligned())

	const (
		goroutines = 8
		increments = 500
	)

	var g errgroup.Group
	for range goroutines {
		g.Go(func() error {
			for range increments {
				for {
					cur := ba.GetIntVolatile(32)
					if ba.CompareAndSwapInt(32, cur, cur+1) {
						break
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(goroutines*increments), ba.GetIntVolatile(32))
}

func BenchmarkByteArray_GetLong(b *testing.B) {
	for name, p := range map[string]*strategy.Provider{"intrinsic": nativeProvider(), "pure": pureProvider()} {
		ba := NewByteArray(make([]byte, 64), WithProvider(p))
		b.Run(name, func(b *testing.B) {
			var sink int64
			for i := 0; i < b.N; i++ {
				sink += ba.GetLong(int64(i & 31))
			}
			_ = sink
		})
	}
}

func TestByteArray_SkewedBuffer(t *testing.T) {
	for skew := 1; skew < 8; skew++ {
		ba := NewByteArray(mem.Skewed(24, 8, skew), WithProvider(nativeProvider()), WithAligned())

		ba.PutLong(0, -2)
		assert.Equal(t, int64(-2), ba.GetLong(0))
		ba.PutIntVolatile(0, 11)
		assert.Equal(t, int32(11), ba.GetIntVolatile(0))

		err := testutil.PanicError(func() { ba.CompareAndSwapLong(0, 0, 1) })
		require.ErrorIs(t, err, strategy.ErrMisalignedAtomicAccess, "skew %d", skew)

		aligned := int64(16 - skew)
		assert.True(t, ba.CompareAndSwapLong(aligned, 0, 7))
		assert.Equal(t, int64(7), ba.GetLongVolatile(aligned))
	}
}
