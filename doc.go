// Package memaccess reads and writes primitive values at byte offsets into
// native memory and byte buffers.
//
// The module is layered:
//
//   - bitcodec assembles multi-byte values from single bytes in an explicit
//     byte order and encodes characters in the 1 to 3 byte modified UTF-8
//     form.
//   - strategy holds the access strategies. Standard forwards every access to
//     the host memory intrinsic; AlignmentAware splits misaligned plain and
//     volatile accesses into bytes and refuses misaligned atomics. A Provider
//     picks the platform-aware strategy once from the architecture.
//   - accessor binds a strategy to a memory resource: Direct for raw
//     addresses, BaseAddressed for a native region and ByteArray for a []byte.
//
// # Quick Start
//
//	buf := make([]byte, 64)
//	ba := memaccess.NewByteArray(buf)
//	ba.PutIntEndian(0, 42, true)  // big-endian
//	v := ba.GetIntEndian(0, true) // 42
//
// Native memory:
//
//	d, err := memaccess.NewDirect()
//	if err != nil {
//	    // built with -tags purego: no host intrinsic
//	}
//	d.PutLong(addr, 1)
//	d.CompareAndSwapLong(addr, 1, 2)
//
// # Contract Violations
//
// Misaligned atomics on the alignment-aware strategy, out-of-range byte
// array indexes and atomics on a byte array without the host intrinsic are
// programming errors. They panic with typed error values that unwrap to the
// sentinels re-exported by this package, so recover sites can match them
// with errors.Is.
//
// # Build Tags
//
// With -tags purego the host intrinsic is compiled out: providers report no
// strategies, layouts are -1, Direct and BaseAddressed constructors return
// ErrUnavailable and byte arrays use the pure path.
package memaccess
