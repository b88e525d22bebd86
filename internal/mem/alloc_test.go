package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAligned(t *testing.T) {
	sizes := []int{1, 3, 7, 10, 63, 64, 65, 1024}
	alignments := []int{1, 2, 4, 8, 16, CacheLine}

	for _, alignment := range alignments {
		for _, size := range sizes {
			buf := Aligned(size, alignment)
			assert.Len(t, buf, size)
			assert.Equal(t, size, cap(buf))
			assert.Zero(t, AddressOf(buf)%int64(alignment), "size=%d alignment=%d", size, alignment)
		}
	}

	assert.Nil(t, Aligned(0, 8))
	assert.Nil(t, Aligned(-1, 8))
}

func TestSkewed(t *testing.T) {
	for skew := 0; skew < 8; skew++ {
		buf := Skewed(16, 8, skew)
		assert.Len(t, buf, 16)
		assert.Equal(t, int64(skew), AddressOf(buf)%8)
	}
	assert.Nil(t, Skewed(0, 8, 1))
}

func TestAddressOf(t *testing.T) {
	assert.Zero(t, AddressOf(nil))
	assert.Zero(t, AddressOf([]byte{}))

	buf := Aligned(32, 8)
	assert.Equal(t, AddressOf(buf)+4, AddressOf(buf[4:]))
}

func BenchmarkAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Aligned(size, CacheLine)
			}
		})
	}
}
