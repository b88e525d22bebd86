package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/hupe1980/memaccess/internal/mmap"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64 returns a pseudo-random int64 over the full range, sign included.
func (r *RNG) Int64() int64 {
	return int64(r.Uint64())
}

// Int32 returns a pseudo-random int32 over the full range.
func (r *RNG) Int32() int32 {
	return int32(r.Uint64())
}

// Uint16 returns a pseudo-random uint16.
func (r *RNG) Uint16() uint16 {
	return uint16(r.Uint64())
}

// Fill fills dst with random bytes.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Uint32())
	}
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.Fill(b)
	return b
}

// Region maps size bytes of anonymous read-write memory outside the Go
// heap and unmaps it when the test ends.
func Region(tb testing.TB, size int) *mmap.Mapping {
	tb.Helper()
	m, err := mmap.MapAnon(size)
	if err != nil {
		tb.Skipf("anonymous mapping unavailable: %v", err)
	}
	tb.Cleanup(func() {
		if err := m.Close(); err != nil {
			tb.Errorf("unmap region: %v", err)
		}
	})
	return m
}

// PanicError runs f and returns the value it panicked with as an error, or
// nil if f returned normally. Non-error panic values are formatted.
func PanicError(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	f()
	return nil
}
