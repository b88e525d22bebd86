// Package conv provides checked integer conversions and offset arithmetic.
//
// These functions perform bounds checking to prevent overflow when a logical
// index is translated into a byte offset, or when an offset supplied as
// int64 is used to slice Go memory.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices already checked against a length), use direct type casts instead.
package conv
