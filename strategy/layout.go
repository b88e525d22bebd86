package strategy

import (
	"fmt"
	"reflect"
	"strings"
)

// Layout describes how elements of one Kind are placed in a Go array or
// slice backing store.
type Layout struct {
	BaseOffset int64
	IndexScale int64
}

// Valid reports whether the layout was obtained from an available host.
func (l Layout) Valid() bool {
	return l.BaseOffset >= 0 && l.IndexScale > 0
}

// Offset returns BaseOffset + index*IndexScale.
func (l Layout) Offset(index int64) int64 {
	return l.BaseOffset + index*l.IndexScale
}

var unavailableLayout = Layout{BaseOffset: -1, IndexScale: -1}

// Element 0 of a Go array or slice backing store sits at its first byte.
func layoutOf(k Kind) Layout {
	size := k.Size()
	if size == 0 {
		return unavailableLayout
	}
	return Layout{BaseOffset: 0, IndexScale: size}
}

// FieldOffset returns the byte offset of the named field from the start of
// a value of struct type t. t may be a pointer to a struct. Dotted names
// select fields of nested structs; promoted fields of embedded structs are
// resolved as well. Paths through embedded pointers are rejected because the
// field is not inside the value.
func FieldOffset(t reflect.Type, name string) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: %q in nil type", ErrFieldNotFound, name)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var offset int64
	cur := t
	for _, part := range strings.Split(name, ".") {
		if cur.Kind() != reflect.Struct {
			return 0, fmt.Errorf("%w: %q in %s: %s is not a struct", ErrFieldNotFound, name, t, cur)
		}
		f, ok := cur.FieldByName(part)
		if !ok {
			return 0, fmt.Errorf("%w: %q in %s", ErrFieldNotFound, name, t)
		}
		// Walk the index path so promoted fields accumulate every
		// embedding offset.
		step := cur
		for _, i := range f.Index {
			if step.Kind() != reflect.Struct {
				return 0, fmt.Errorf("%w: %q in %s: promoted through pointer %s", ErrFieldNotFound, name, t, step)
			}
			sf := step.Field(i)
			offset += int64(sf.Offset)
			step = sf.Type
		}
		cur = f.Type
	}
	return offset, nil
}

// MustFieldOffset is like FieldOffset but panics on error. Intended for
// package-level variables computed once at initialisation.
func MustFieldOffset(t reflect.Type, name string) int64 {
	off, err := FieldOffset(t, name)
	if err != nil {
		panic(err)
	}
	return off
}
