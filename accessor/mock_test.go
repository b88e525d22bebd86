package accessor

import (
	"unsafe"

	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/memaccess/strategy"
)

// mockStrategy records the object-space calls an accessor makes. Methods
// that are not overridden panic through the nil embedded interface.
type mockStrategy struct {
	strategy.Strategy
	mock.Mock
}

func (m *mockStrategy) ArrayBaseOffset(k strategy.Kind) int64 {
	return m.Called(k).Get(0).(int64)
}

func (m *mockStrategy) GetIntAt(base unsafe.Pointer, offset int64) int32 {
	return m.Called(base, offset).Get(0).(int32)
}

func (m *mockStrategy) PutIntAt(base unsafe.Pointer, offset int64, v int32) {
	m.Called(base, offset, v)
}

func (m *mockStrategy) GetLongVolatileAt(base unsafe.Pointer, offset int64) int64 {
	return m.Called(base, offset).Get(0).(int64)
}

func (m *mockStrategy) PutLongEndianAt(base unsafe.Pointer, offset int64, v int64, bigEndian bool) {
	m.Called(base, offset, v, bigEndian)
}

func (m *mockStrategy) CompareAndSwapLongAt(base unsafe.Pointer, offset int64, expected, x int64) bool {
	return m.Called(base, offset, expected, x).Bool(0)
}

func (m *mockStrategy) CopyMemoryAt(srcBase unsafe.Pointer, srcOffset int64, dstBase unsafe.Pointer, dstOffset, n int64) {
	m.Called(srcBase, srcOffset, dstBase, dstOffset, n)
}

func (m *mockStrategy) SetMemoryAt(base unsafe.Pointer, offset, n int64, v byte) {
	m.Called(base, offset, n, v)
}
