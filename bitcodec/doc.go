// Package bitcodec assembles and disassembles primitive values from single
// byte accesses in an explicit byte order.
//
// Every function works against a resource that only knows how to get and put
// one byte at an offset (Reader, Writer). Functions are generic over the
// resource type so that small adapter structs are passed by value and never
// escape to the heap.
//
// # Byte order
//
// The B-suffixed functions (ReadIntB, WriteLongB, ...) use big-endian order,
// the L-suffixed ones little-endian order. ReadInt, WriteInt and friends take
// the order as a bool. NativeBigEndian is the host order.
//
// # Characters
//
// WriteUTF8Char and ReadUTF8Char implement the 1-3 byte "modified UTF-8"
// form for 16-bit characters: no 4-byte sequences, no surrogate pairing.
//
// # Bounds
//
// Nothing here checks offsets. Bytes inherits Go's slice bounds checks; other
// resources rely on the caller.
package bitcodec
