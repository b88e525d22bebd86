package accessor

import "github.com/hupe1980/memaccess/strategy"

// BaseAddressed accesses a native region anchored at a fixed base address:
// address a refers to native address base+a.
type BaseAddressed struct {
	access
}

var _ ConcurrentAccessor = (*BaseAddressed)(nil)

// NewBaseAddressed returns a BaseAddressed accessor for the region starting
// at base. It returns strategy.ErrUnavailable when no strategy can be
// resolved.
func NewBaseAddressed(base int64, optFns ...Option) (*BaseAddressed, error) {
	s, err := resolve(optFns)
	if err != nil {
		return nil, err
	}
	return &BaseAddressed{access: access{s: s, delta: base, length: -1}}, nil
}

// BaseAddress returns the native address that address 0 maps to.
func (b *BaseAddressed) BaseAddress() int64 { return b.delta }

// Strategy returns the bound strategy.
func (b *BaseAddressed) Strategy() strategy.Strategy { return b.s }
