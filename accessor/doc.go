// Package accessor binds a strategy to one memory resource and exposes a
// single-address access surface over it.
//
// Three facades exist:
//
//   - Direct passes addresses through unchanged: every address is a native
//     address.
//   - BaseAddressed adds a fixed base address to every address, so callers
//     work with offsets into one native region.
//   - ByteArray treats a []byte as flat storage. Indexes are bounds-checked.
//     When the host intrinsic is available accesses go through the strategy;
//     otherwise a pure path decodes multi-byte values with the bit codec and
//     every volatile, compare-and-swap or ordered operation panics with an
//     *UnsupportedError.
//
// Accessors are immutable after construction and may be shared between
// goroutines. They never allocate or free the memory they access.
package accessor
