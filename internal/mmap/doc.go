// Package mmap provides native memory regions outside the Go heap.
//
// # Overview
//
// Base-addressed accessors and raw-address strategies need memory whose
// address stays valid and is never moved or scanned by the garbage
// collector. A Mapping supplies it, either from a file or anonymously.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	acc, _ := accessor.NewBaseAddressed(m.Address())
//	acc.PutLong(0, 42)
//
//	// A view of part of the mapping
//	r, _ := m.Region(4096, 128)
//	sub, _ := accessor.NewBaseAddressed(r.Address())
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile for files, VirtualAlloc for
//     anonymous regions (Advise is a no-op)
//   - Elsewhere Open and MapAnon return ErrUnsupported.
//
// # Thread Safety
//
// Mapping and Region may be shared between goroutines. Close is idempotent.
// Addresses obtained from a mapping are invalid once Close returns; the
// caller owns that lifecycle.
package mmap
