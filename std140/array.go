package std140

// Array is a GLSL array of std140 values. Each element is padded to the
// array stride, which is the largest element size rounded up to 16 bytes.
//
// Nil elements of an Array[Value] are encoded as a zeroed stride.
type Array[T Value] []T

// Stride returns the distance in bytes between consecutive elements.
func (a Array[T]) Stride() uint32 {
	var size uint32
	if len(a) == 0 {
		var zero T
		if any(zero) != nil {
			size = zero.Layout().Size
		}
	}
	for _, e := range a {
		if any(e) == nil {
			continue
		}
		size = max(size, e.Layout().Size)
	}
	return AlignUp(size, vec4Size)
}

// Layout reports a 16-byte alignment and stride*len bytes.
func (a Array[T]) Layout() Layout {
	return Layout{Align: vec4Size, Size: a.Stride() * uint32(len(a))}
}

// Kind returns KindArray.
func (Array[T]) Kind() Kind { return KindArray }

// Elems returns the elements as Values, in order.
func (a Array[T]) Elems() []Value {
	out := make([]Value, len(a))
	for i, e := range a {
		if any(e) != nil {
			out[i] = e
		}
	}
	return out
}

// AppendStd140 writes every element followed by its padding.
func (a Array[T]) AppendStd140(dst []byte) []byte {
	stride := int(a.Stride())
	for _, e := range a {
		start := len(dst)
		if any(e) != nil {
			dst = e.AppendStd140(dst)
		}
		dst = padTo(dst, start+stride)
	}
	return dst
}

func (Array[T]) std140() {}
