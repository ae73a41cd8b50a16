package std140

import (
	"encoding/binary"
	"fmt"
	"math"
)

// vec4Size is the std140 rounding unit for matrix columns, array elements,
// and struct alignment.
const vec4Size = 16

// Layout is the std140 placement of a value: the base alignment its offset
// must be a multiple of and the number of bytes it occupies.
type Layout struct {
	Align uint32
	Size  uint32
}

// Value is implemented only by the types in this package. It is the closed
// set of things that can be placed into a std140 block.
type Value interface {
	// Layout returns the std140 alignment and size of the value.
	Layout() Layout
	// Kind identifies the GLSL type of the value.
	Kind() Kind
	// AppendStd140 appends exactly Layout().Size bytes to dst.
	AppendStd140(dst []byte) []byte

	std140()
}

// AlignUp rounds n up to the next multiple of align.
// align must be a power of two.
func AlignUp(n, align uint32) uint32 {
	return (n + align - 1) &^ (align - 1)
}

// Marshal encodes v at offset 0 of a new buffer of v.Layout().Size bytes.
func Marshal(v Value) []byte {
	return v.AppendStd140(make([]byte, 0, v.Layout().Size))
}

// Append encodes v at the end of dst, inserting zero padding first so that
// v starts at an offset aligned to its base alignment.
func Append(dst []byte, v Value) []byte {
	dst = padTo(dst, int(AlignUp(uint32(len(dst)), v.Layout().Align)))
	return v.AppendStd140(dst)
}

// padTo zero-fills dst up to length n. It panics if dst is already longer,
// which means a value wrote more bytes than its layout reported.
func padTo(dst []byte, n int) []byte {
	if len(dst) > n {
		panic(fmt.Sprintf("std140: encoded %d bytes past offset %d", len(dst)-n, n))
	}
	return append(dst, make([]byte, n-len(dst))...)
}

func appendFloat(dst []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
}

func appendUint(dst []byte, u uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, u)
}
