package accessor

import "github.com/hupe1980/memaccess/strategy"

// Direct accesses native memory: every address is passed to the strategy
// unchanged.
type Direct struct {
	access
}

var _ ConcurrentAccessor = (*Direct)(nil)

// NewDirect returns a Direct accessor. It returns strategy.ErrUnavailable
// when no strategy can be resolved.
func NewDirect(optFns ...Option) (*Direct, error) {
	s, err := resolve(optFns)
	if err != nil {
		return nil, err
	}
	return &Direct{access: access{s: s, length: -1}}, nil
}

// Strategy returns the bound strategy.
func (d *Direct) Strategy() strategy.Strategy { return d.s }
