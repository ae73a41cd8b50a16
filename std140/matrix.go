package std140

// Matrix types use the GLSL matCxR naming: C columns, each a vector of
// R rows. Columns are stored in order, column 0 first.

// Mat2x2 is a GLSL mat2x2 (mat2).
type Mat2x2 [2]Vec2

// Mat2x3 is a GLSL mat2x3: two vec3 columns.
type Mat2x3 [2]Vec3

// Mat2x4 is a GLSL mat2x4: two vec4 columns.
type Mat2x4 [2]Vec4

// Mat3x2 is a GLSL mat3x2: three vec2 columns.
type Mat3x2 [3]Vec2

// Mat3x3 is a GLSL mat3x3 (mat3).
type Mat3x3 [3]Vec3

// Mat3x4 is a GLSL mat3x4: three vec4 columns.
type Mat3x4 [3]Vec4

// Mat4x2 is a GLSL mat4x2: four vec2 columns.
type Mat4x2 [4]Vec2

// Mat4x3 is a GLSL mat4x3: four vec3 columns.
type Mat4x3 [4]Vec3

// Mat4x4 is a GLSL mat4x4 (mat4).
type Mat4x4 [4]Vec4

// matrixLayout returns the layout of a matrix with the given column count.
// Every column occupies a full 16-byte slot regardless of its row count.
func matrixLayout(columns uint32) Layout {
	return Layout{Align: vec4Size, Size: vec4Size * columns}
}

func (Mat2x2) Layout() Layout { return matrixLayout(2) }
func (Mat2x3) Layout() Layout { return matrixLayout(2) }
func (Mat2x4) Layout() Layout { return matrixLayout(2) }
func (Mat3x2) Layout() Layout { return matrixLayout(3) }
func (Mat3x3) Layout() Layout { return matrixLayout(3) }
func (Mat3x4) Layout() Layout { return matrixLayout(3) }
func (Mat4x2) Layout() Layout { return matrixLayout(4) }
func (Mat4x3) Layout() Layout { return matrixLayout(4) }
func (Mat4x4) Layout() Layout { return matrixLayout(4) }

func (Mat2x2) Kind() Kind { return KindMat2x2 }
func (Mat2x3) Kind() Kind { return KindMat2x3 }
func (Mat2x4) Kind() Kind { return KindMat2x4 }
func (Mat3x2) Kind() Kind { return KindMat3x2 }
func (Mat3x3) Kind() Kind { return KindMat3x3 }
func (Mat3x4) Kind() Kind { return KindMat3x4 }
func (Mat4x2) Kind() Kind { return KindMat4x2 }
func (Mat4x3) Kind() Kind { return KindMat4x3 }
func (Mat4x4) Kind() Kind { return KindMat4x4 }

func (m Mat2x2) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat2x3) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat2x4) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat3x2) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat3x3) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat3x4) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat4x2) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat4x3) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }
func (m Mat4x4) AppendStd140(dst []byte) []byte { return appendColumns(dst, m[:]) }

func (Mat2x2) std140() {}
func (Mat2x3) std140() {}
func (Mat2x4) std140() {}
func (Mat3x2) std140() {}
func (Mat3x3) std140() {}
func (Mat3x4) std140() {}
func (Mat4x2) std140() {}
func (Mat4x3) std140() {}
func (Mat4x4) std140() {}

// appendColumns writes each column padded to a 16-byte slot.
func appendColumns[C Value](dst []byte, cols []C) []byte {
	for _, c := range cols {
		start := len(dst)
		dst = c.AppendStd140(dst)
		dst = padTo(dst, start+vec4Size)
	}
	return dst
}
