// Package mem provides heap buffers with a guaranteed start alignment.
//
// Alignment-sensitive code (atomics, alignment-aware strategies) needs
// buffers whose first byte sits on a known boundary; make([]byte) only
// promises what the allocator's size class happens to give.
package mem
