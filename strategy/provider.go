package strategy

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/hupe1980/memaccess/internal/host"
)

// Type names the role a strategy is requested for.
type Type int

const (
	// TypeStandard is the strategy that trusts the hardware with unaligned
	// access.
	TypeStandard Type = iota
	// TypeAlignmentAware is the strategy that checks alignment on every call.
	TypeAlignmentAware
	// TypePlatformAware resolves to TypeStandard on architectures known to
	// tolerate unaligned access and to TypeAlignmentAware everywhere else.
	TypePlatformAware
)

func (t Type) String() string {
	switch t {
	case TypeStandard:
		return "standard"
	case TypeAlignmentAware:
		return "alignment-aware"
	case TypePlatformAware:
		return "platform-aware"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses the String form of a Type. Matching ignores case and
// treats '_' like '-', so "PLATFORM_AWARE" is accepted.
func ParseType(s string) (Type, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, t := range []Type{TypeStandard, TypeAlignmentAware, TypePlatformAware} {
		if t.String() == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// unalignedArchs lists the architecture identifiers known to tolerate
// unaligned multi-byte access. Both GOARCH values and common
// os.arch-style spellings are accepted.
var unalignedArchs = []string{"386", "amd64", "amd64p32", "i386", "x86", "x86_64"}

// IsUnalignedAccessAllowed reports whether arch is on the allow-list of
// architectures that tolerate unaligned access.
func IsUnalignedAccessAllowed(arch string) bool {
	return slices.Contains(unalignedArchs, arch)
}

type options struct {
	arch    string
	host    host.Host
	hostSet bool
}

// Option configures a Provider.
type Option func(*options)

// WithArch overrides the architecture used to resolve TypePlatformAware.
func WithArch(arch string) Option {
	return func(o *options) {
		o.arch = arch
	}
}

// WithHost overrides the host intrinsic. A nil host makes every strategy
// unavailable.
func WithHost(h host.Host) Option {
	return func(o *options) {
		o.host = h
		o.hostSet = true
	}
}

// Provider holds the strategy instances selected for each Type. A Provider
// is immutable after construction and safe for concurrent use.
type Provider struct {
	arch      string
	unaligned bool

	standard Strategy
	aligned  Strategy
	platform Strategy

	layouts [numKinds]Layout
}

// NewProvider builds both strategies when the host intrinsic is available
// and resolves TypePlatformAware once.
func NewProvider(optFns ...Option) *Provider {
	opts := options{arch: runtime.GOARCH}
	for _, fn := range optFns {
		fn(&opts)
	}
	if !opts.hostSet {
		opts.host = host.Default()
	}

	p := &Provider{
		arch:      opts.arch,
		unaligned: IsUnalignedAccessAllowed(opts.arch),
	}

	for i := range p.layouts {
		p.layouts[i] = unavailableLayout
	}

	if opts.host == nil {
		return p
	}

	std, _ := NewStandard(opts.host)
	aa, _ := NewAlignmentAware(opts.host)
	p.standard = std
	p.aligned = aa
	if p.unaligned {
		p.platform = std
	} else {
		p.platform = aa
	}

	for _, k := range Kinds() {
		p.layouts[k] = layoutOf(k)
	}
	return p
}

// Arch returns the architecture the provider was resolved for.
func (p *Provider) Arch() string { return p.arch }

// UnalignedAccessAllowed reports whether Arch is on the allow-list.
func (p *Provider) UnalignedAccessAllowed() bool { return p.unaligned }

// Available reports whether strategies exist.
func (p *Provider) Available() bool { return p.standard != nil }

// Get returns the strategy serving t.
func (p *Provider) Get(t Type) (Strategy, error) {
	var s Strategy
	switch t {
	case TypeStandard:
		s = p.standard
	case TypeAlignmentAware:
		s = p.aligned
	case TypePlatformAware:
		s = p.platform
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if s == nil {
		return nil, ErrUnavailable
	}
	return s, nil
}

// MustGet is like Get but panics on error.
func (p *Provider) MustGet(t Type) Strategy {
	s, err := p.Get(t)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the platform-aware strategy, or nil when unavailable.
func (p *Provider) Default() Strategy { return p.platform }

// Resolve returns the concrete Type that serves t: TypePlatformAware maps
// to TypeStandard or TypeAlignmentAware.
func (p *Provider) Resolve(t Type) Type {
	if t != TypePlatformAware {
		return t
	}
	if p.unaligned {
		return TypeStandard
	}
	return TypeAlignmentAware
}

// Layout returns the array layout of k, {-1, -1} when unavailable.
func (p *Provider) Layout(k Kind) Layout {
	if k >= numKinds {
		return unavailableLayout
	}
	return p.layouts[k]
}

// ArrayBaseOffset returns Layout(k).BaseOffset.
func (p *Provider) ArrayBaseOffset(k Kind) int64 { return p.Layout(k).BaseOffset }

// ArrayIndexScale returns Layout(k).IndexScale.
func (p *Provider) ArrayIndexScale(k Kind) int64 { return p.Layout(k).IndexScale }

var defaultProvider = NewProvider()

// DefaultProvider returns the process-wide provider built at initialisation
// from runtime.GOARCH and the build's host intrinsic.
func DefaultProvider() *Provider { return defaultProvider }

// Get returns the process-wide strategy serving t.
func Get(t Type) (Strategy, error) { return defaultProvider.Get(t) }

// MustGet returns the process-wide strategy serving t and panics when it is
// unavailable.
func MustGet(t Type) Strategy { return defaultProvider.MustGet(t) }

// Default returns the process-wide platform-aware strategy, or nil.
func Default() Strategy { return defaultProvider.Default() }

// Available reports whether the process-wide strategies exist.
func Available() bool { return defaultProvider.Available() }

// UnalignedAccessAllowed reports whether the running architecture tolerates
// unaligned access.
func UnalignedAccessAllowed() bool { return defaultProvider.UnalignedAccessAllowed() }

// ArrayBaseOffset returns the process-wide base offset of k, or -1.
func ArrayBaseOffset(k Kind) int64 { return defaultProvider.ArrayBaseOffset(k) }

// ArrayIndexScale returns the process-wide index scale of k, or -1.
func ArrayIndexScale(k Kind) int64 { return defaultProvider.ArrayIndexScale(k) }
