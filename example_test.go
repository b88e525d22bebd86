package memaccess_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/memaccess"
	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/strategy"
)

// Example_byteArray demonstrates explicit byte order on a byte buffer.
func Example_byteArray() {
	buf := make([]byte, 8)
	ba := memaccess.NewByteArray(buf)

	ba.PutIntEndian(0, 0x12345678, true)
	ba.PutShortEndian(4, 0x0102, false)

	fmt.Printf("% x\n", buf)
	fmt.Printf("%#x\n", ba.GetIntEndian(0, true))
	// Output:
	// 12 34 56 78 02 01 00 00
	// 0x12345678
}

// Example_invalidIndex demonstrates recovering an out-of-range access.
func Example_invalidIndex() {
	ba := memaccess.NewByteArray(make([]byte, 4))

	defer func() {
		err, _ := recover().(error)
		fmt.Println(errors.Is(err, memaccess.ErrInvalidIndex))
	}()
	ba.GetLong(0)
	// Output: true
}

// Example_equal demonstrates comparing byte ranges.
func Example_equal() {
	a := []byte("header:payload-1")
	b := []byte("header:payload-2")

	fmt.Println(memaccess.Equal(a, b, 0, 6))
	fmt.Println(memaccess.Equal(a, b, 0, len(a)-1))
	// Output:
	// true
	// false
}

// Example_utf8Char demonstrates the modified UTF-8 character codec.
func Example_utf8Char() {
	buf := make(bitcodec.Bytes, 3)
	n := bitcodec.WriteUTF8Char(buf, 0, 0x20AC)

	c, _, err := bitcodec.ReadUTF8Char(buf, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d % x %#x\n", n, []byte(buf), c)
	// Output: 3 e2 82 ac 0x20ac
}

// Example_emulatedArch demonstrates resolving the platform-aware strategy
// for another architecture.
func Example_emulatedArch() {
	for _, arch := range []string{"amd64", "arm64"} {
		p := strategy.NewProvider(strategy.WithArch(arch))
		fmt.Println(arch, p.Resolve(strategy.TypePlatformAware))
	}
	// Output:
	// amd64 standard
	// arm64 alignment-aware
}
