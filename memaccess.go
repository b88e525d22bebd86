package memaccess

import (
	"runtime"
	"unsafe"

	"github.com/hupe1980/memaccess/accessor"
	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/host"
	"github.com/hupe1980/memaccess/strategy"
)

// NewDirect returns an accessor for raw native addresses.
//
// It returns ErrUnavailable when built without the host intrinsic.
func NewDirect(optFns ...Option) (*accessor.Direct, error) {
	return accessor.NewDirect(optFns...)
}

// NewBaseAddressed returns an accessor for the native region starting at
// base.
//
// It returns ErrUnavailable when built without the host intrinsic.
func NewBaseAddressed(base int64, optFns ...Option) (*accessor.BaseAddressed, error) {
	return accessor.NewBaseAddressed(base, optFns...)
}

// NewByteArray returns an accessor over buf. It never fails: without the
// host intrinsic the accessor serves plain and explicit-order accesses only.
func NewByteArray(buf []byte, optFns ...Option) *accessor.ByteArray {
	return accessor.NewByteArray(buf, optFns...)
}

// Equal reports whether a and b hold the same bytes in the inclusive range
// [start, end]. Slices of different length are never equal; two nil slices
// and a slice compared with itself always are.
//
// The range is compared a word at a time from the end when the host
// intrinsic is available. It panics if the range lies outside the slices.
func Equal(a, b []byte, start, end int) bool {
	if sameSlice(a, b) {
		return true
	}
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}

	i := end
	if strategy.Available() {
		x, y := NewByteArray(a), NewByteArray(b)
		for ; i-bitcodec.LongSize+1 >= start; i -= bitcodec.LongSize {
			off := int64(i - bitcodec.LongSize + 1)
			if x.GetLong(off) != y.GetLong(off) {
				return false
			}
		}
	}
	for ; i >= start; i-- {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameSlice(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// Platform describes how memory access is served on this process.
type Platform struct {
	Arch                   string
	GOOS                   string
	BigEndian              bool
	PointerSize            int
	UnalignedAccessAllowed bool
	IntrinsicAvailable     bool
	// Roles maps each strategy type to the name of the strategy serving it,
	// or "unavailable".
	Roles map[strategy.Type]string
}

// Describe reports the platform as seen by p. A nil p describes the
// process-wide provider.
func Describe(p *strategy.Provider) Platform {
	if p == nil {
		p = strategy.DefaultProvider()
	}

	pl := Platform{
		Arch:                   p.Arch(),
		GOOS:                   runtime.GOOS,
		BigEndian:              bitcodec.NativeBigEndian,
		PointerSize:            host.PtrSize,
		UnalignedAccessAllowed: p.UnalignedAccessAllowed(),
		IntrinsicAvailable:     p.Available(),
		Roles:                  make(map[strategy.Type]string, 3),
	}
	for _, t := range []strategy.Type{strategy.TypeStandard, strategy.TypeAlignmentAware, strategy.TypePlatformAware} {
		if !p.Available() {
			pl.Roles[t] = "unavailable"
			continue
		}
		pl.Roles[t] = p.Resolve(t).String()
	}
	return pl
}
