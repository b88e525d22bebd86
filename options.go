package memaccess

import (
	"github.com/hupe1980/memaccess/accessor"
	"github.com/hupe1980/memaccess/strategy"
)

// Option configures the accessor constructors of this package.
type Option = accessor.Option

// WithStrategy binds an accessor to s.
//
// If nil is passed, the platform-aware strategy of the provider is used.
func WithStrategy(s strategy.Strategy) Option {
	return accessor.WithStrategy(s)
}

// WithProvider resolves strategies from p instead of the process-wide
// provider. Useful to emulate another architecture:
//
//	p := strategy.NewProvider(strategy.WithArch("arm64"))
//	d, _ := memaccess.NewDirect(memaccess.WithProvider(p))
func WithProvider(p *strategy.Provider) Option {
	return accessor.WithProvider(p)
}

// WithAligned selects the alignment-aware strategy regardless of the
// architecture.
func WithAligned() Option {
	return accessor.WithAligned()
}
