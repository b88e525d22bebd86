package accessor

import "github.com/hupe1980/memaccess/strategy"

type options struct {
	strategy strategy.Strategy
	provider *strategy.Provider
	aligned  bool
}

// Option configures an accessor constructor.
type Option func(*options)

// WithStrategy binds the accessor to s instead of a provider strategy.
func WithStrategy(s strategy.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithProvider resolves the strategy from p instead of the process-wide
// provider.
func WithProvider(p *strategy.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithAligned requests the alignment-aware strategy instead of the
// platform-aware one.
func WithAligned() Option {
	return func(o *options) {
		o.aligned = true
	}
}

func resolve(optFns []Option) (strategy.Strategy, error) {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.strategy != nil {
		return opts.strategy, nil
	}

	p := opts.provider
	if p == nil {
		p = strategy.DefaultProvider()
	}
	if opts.aligned {
		return p.Get(strategy.TypeAlignmentAware)
	}
	return p.Get(strategy.TypePlatformAware)
}
