// Package host is the raw memory capability every access strategy is built on.
//
// It is the only package that dereferences arbitrary addresses. Everything
// above it (strategies, accessors) works through the Host interface, so the
// region of code where undefined behavior can occur stays small enough to
// audit.
//
// # Availability
//
// Default returns the Native implementation unless the module is built with
// the purego tag, in which case it returns nil and every dependent strategy
// is reported as unavailable.
//
// # Sub-word atomics
//
// sync/atomic has no 8- or 16-bit operations. Volatile byte and char/short
// accesses therefore operate on the enclosing aligned 32-bit word: loads
// extract the lane, stores run a CAS loop that replaces only the lane. The
// enclosing word must lie inside the same allocation, which holds for Go heap
// blocks, mmap regions and malloc'd memory.
//
// # Pointers
//
// LoadPointer/StorePointer and their atomic forms must only be used on
// memory the Go garbage collector knows about (fields of Go objects,
// elements of Go-allocated arrays). Storing a Go pointer into native memory
// hides it from the collector.
package host
