package bitcodec

import (
	"errors"
	"fmt"
	"io"
)

// ErrMalformedSequence is returned when a lead byte does not start a valid
// 1, 2 or 3 byte character.
var ErrMalformedSequence = errors.New("bitcodec: malformed byte sequence")

// MalformedError describes the offending lead byte.
type MalformedError struct {
	Lead byte
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("bitcodec: malformed byte sequence: lead byte %#02x", e.Lead)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedSequence }

// UTF8CharLen returns the number of bytes WriteUTF8Char uses for c.
func UTF8CharLen(c uint16) int {
	switch {
	case c <= 0x007F:
		return 1
	case c <= 0x07FF:
		return 2
	default:
		return 3
	}
}

// WriteUTF8Char encodes c at pos and returns the number of bytes written.
func WriteUTF8Char[W Writer](w W, pos int64, c uint16) int {
	switch {
	case c <= 0x007F:
		w.PutByte(pos, byte(c))
		return 1
	case c <= 0x07FF:
		w.PutByte(pos, byte(0xC0|c>>6&0x1F))
		w.PutByte(pos+1, byte(0x80|c&0x3F))
		return 2
	default:
		w.PutByte(pos, byte(0xE0|c>>12&0x0F))
		w.PutByte(pos+1, byte(0x80|c>>6&0x3F))
		w.PutByte(pos+2, byte(0x80|c&0x3F))
		return 3
	}
}

// ReadUTF8Char decodes the character at pos and returns it together with
// the number of bytes consumed.
func ReadUTF8Char[R Reader](r R, pos int64) (uint16, int, error) {
	b := r.GetByte(pos)
	switch b >> 4 {
	case 0, 1, 2, 3, 4, 5, 6, 7:
		return uint16(b), 1, nil
	case 12, 13:
		first := uint16(b&0x1F) << 6
		second := uint16(r.GetByte(pos+1) & 0x3F)
		return first | second, 2, nil
	case 14:
		first := uint16(b&0x0F) << 12
		second := uint16(r.GetByte(pos+1)&0x3F) << 6
		third := uint16(r.GetByte(pos+2) & 0x3F)
		return first | second | third, 3, nil
	default:
		return 0, 0, &MalformedError{Lead: b}
	}
}

// DecodeUTF8Char decodes the character at buf[pos] into dst[dstPos] and
// returns the number of bytes consumed.
func DecodeUTF8Char(buf []byte, pos int, dst []uint16, dstPos int) (int, error) {
	c, n, err := ReadUTF8Char(Bytes(buf), int64(pos))
	if err != nil {
		return 0, err
	}
	dst[dstPos] = c
	return n, nil
}

// ReadUTF8CharFrom decodes a character whose lead byte has already been
// consumed from in. Continuation bytes are read from in.
func ReadUTF8CharFrom(in io.ByteReader, first byte) (uint16, error) {
	switch first >> 4 {
	case 0, 1, 2, 3, 4, 5, 6, 7:
		return uint16(first), nil
	case 12, 13:
		b1, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		return uint16(first&0x1F)<<6 | uint16(b1&0x3F), nil
	case 14:
		b1, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		b2, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		return uint16(first&0x0F)<<12 | uint16(b1&0x3F)<<6 | uint16(b2&0x3F), nil
	default:
		return 0, &MalformedError{Lead: first}
	}
}
