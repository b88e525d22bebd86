package strategy

import (
	"strconv"
	"unsafe"
)

// Kind identifies a primitive array element type.
type Kind uint8

// Element kinds, one per primitive plus object references.
const (
	Bool    Kind = iota // bool
	Byte                // byte
	Char                // uint16
	Short               // int16
	Int                 // int32
	Float               // float32
	Long                // int64
	Double              // float64
	Pointer             // unsafe.Pointer

	numKinds
)

var kindNames = [numKinds]string{
	Bool:    "bool",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Float:   "float",
	Long:    "long",
	Double:  "double",
	Pointer: "pointer",
}

var kindSizes = [numKinds]int64{
	Bool:    int64(unsafe.Sizeof(false)),
	Byte:    int64(unsafe.Sizeof(byte(0))),
	Char:    int64(unsafe.Sizeof(uint16(0))),
	Short:   int64(unsafe.Sizeof(int16(0))),
	Int:     int64(unsafe.Sizeof(int32(0))),
	Float:   int64(unsafe.Sizeof(float32(0))),
	Long:    int64(unsafe.Sizeof(int64(0))),
	Double:  int64(unsafe.Sizeof(float64(0))),
	Pointer: int64(unsafe.Sizeof(unsafe.Pointer(nil))),
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

func (k Kind) String() string {
	if k >= numKinds {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Size returns the width in bytes of one element, or 0 for an unknown kind.
func (k Kind) Size() int64 {
	if k >= numKinds {
		return 0
	}
	return kindSizes[k]
}
