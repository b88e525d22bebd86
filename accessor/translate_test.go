package accessor

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memaccess/strategy"
	"github.com/hupe1980/memaccess/testutil"
)

var nilBase = unsafe.Pointer(nil)

func TestDirect_PassesAddressThrough(t *testing.T) {
	m := &mockStrategy{}
	m.On("GetLongVolatileAt", nilBase, int64(0x1000)).Return(int64(42)).Once()
	m.On("CompareAndSwapLongAt", nilBase, int64(0x1008), int64(1), int64(2)).Return(true).Once()

	d, err := NewDirect(WithStrategy(m))
	require.NoError(t, err)
	assert.Same(t, m, d.Strategy())

	assert.Equal(t, int64(42), d.GetLongVolatile(0x1000))
	assert.True(t, d.CompareAndSwapLong(0x1008, 1, 2))
	m.AssertExpectations(t)
}

func TestBaseAddressed_AddsBase(t *testing.T) {
	m := &mockStrategy{}
	m.On("GetIntAt", nilBase, int64(1024)).Return(int32(7)).Once()
	m.On("PutLongEndianAt", nilBase, int64(1008), int64(-1), true).Once()
	m.On("CopyMemoryAt", nilBase, int64(1010), nilBase, int64(1020), int64(8)).Once()
	m.On("SetMemoryAt", nilBase, int64(1000), int64(16), byte(0xFF)).Once()

	b, err := NewBaseAddressed(1000, WithStrategy(m))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), b.BaseAddress())

	assert.Equal(t, int32(7), b.GetInt(24))
	b.PutLongEndian(8, -1, true)
	b.CopyMemory(10, 20, 8)
	b.SetMemory(0, 16, 0xFF)
	b.CopyMemory(0, 0, 0)
	m.AssertExpectations(t)
}

func TestByteArray_TranslatesIndex(t *testing.T) {
	buf := make([]byte, 16)
	base := unsafe.Pointer(unsafe.SliceData(buf))

	m := &mockStrategy{}
	m.On("ArrayBaseOffset", strategy.Byte).Return(int64(0))
	m.On("GetIntAt", base, int64(12)).Return(int32(3)).Once()
	m.On("PutIntAt", base, int64(0), int32(9)).Once()

	ba := NewByteArray(buf, WithStrategy(m))
	require.True(t, ba.Intrinsic())

	assert.Equal(t, int32(3), ba.GetInt(12))
	ba.PutInt(0, 9)

	// Out of range indexes never reach the strategy.
	for _, index := range []int64{13, 16, -1} {
		err := testutil.PanicError(func() { ba.GetInt(index) })
		require.ErrorIs(t, err, ErrInvalidIndex, "index %d", index)
	}
	m.AssertExpectations(t)
	m.AssertNumberOfCalls(t, "GetIntAt", 1)
}

func TestByteArray_NegativeBaseOffsetSelectsPurePath(t *testing.T) {
	m := &mockStrategy{}
	m.On("ArrayBaseOffset", strategy.Byte).Return(int64(-1))

	ba := NewByteArray(make([]byte, 8), WithStrategy(m))
	assert.False(t, ba.Intrinsic())

	ba.PutInt(4, 5)
	assert.Equal(t, int32(5), ba.GetInt(4))
	m.AssertNotCalled(t, "PutIntAt", mock.Anything, mock.Anything, mock.Anything)
}

func TestConstructors_Unavailable(t *testing.T) {
	none := strategy.NewProvider(strategy.WithHost(nil))

	_, err := NewDirect(WithProvider(none))
	assert.ErrorIs(t, err, strategy.ErrUnavailable)

	_, err = NewBaseAddressed(4096, WithProvider(none), WithAligned())
	assert.ErrorIs(t, err, strategy.ErrUnavailable)

	ba := NewByteArray(make([]byte, 4), WithProvider(none))
	assert.False(t, ba.Intrinsic())
}

func TestIndexError_Message(t *testing.T) {
	err := &IndexError{Index: 14, Width: 4, Len: 16}
	assert.EqualError(t, err, "accessor: index 14 width 4 out of range for length 16")
	assert.ErrorIs(t, err, ErrInvalidIndex)

	u := &UnsupportedError{Op: "PutIntOrdered"}
	assert.EqualError(t, u, "accessor: PutIntOrdered: operation requires the host memory intrinsic")
	assert.ErrorIs(t, u, ErrUnsupported)
}
