// Package strategy implements the primitive memory access strategies.
//
// A Strategy reads and writes bool, byte, char (uint16), short (int16),
// int (int32), float (float32), long (int64), double (float64) and pointer
// values in two address spaces:
//
//   - raw native addresses (methods without suffix), and
//   - object-relative base/offset pairs (methods with the At suffix). A nil
//     base makes the offset a raw address.
//
// Two implementations exist. Standard forwards every access to the host
// intrinsic and assumes the hardware tolerates unaligned multi-byte access.
// AlignmentAware checks natural alignment per call: misaligned plain and
// volatile accesses are assembled byte by byte in native order, misaligned
// compare-and-swap and ordered writes panic with a *MisalignedAccessError.
// Both produce identical results at aligned offsets.
//
// Pointer slots must be pointer-width aligned for every strategy.
//
// The Provider selects the strategy serving each Type once, at package
// initialisation:
//
//	s := strategy.MustGet(strategy.TypePlatformAware)
//	s.PutLongEndian(addr, 42, true)
//
// Volatile accesses are sequentially consistent. Ordered writes are atomic
// stores with no matching ordered read.
package strategy
