// Package mint defines the plain math-interop value types converted by
// mintstd140.
//
// The types carry no behavior. Vectors name their components by axis and
// matrices are stored column-major as a sequence of column vectors. Matrix
// type names follow the rows-by-columns convention, so ColumnMatrix3x2 has
// three rows and two columns (two Vector3 columns).
package mint

// Vector2 is a two-component vector.
type Vector2[T any] struct {
	X, Y T
}

// Vector3 is a three-component vector.
type Vector3[T any] struct {
	X, Y, Z T
}

// Vector4 is a four-component vector.
type Vector4[T any] struct {
	X, Y, Z, W T
}

// Array returns the components in axis order.
func (v Vector2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Array returns the components in axis order.
func (v Vector3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Array returns the components in axis order.
func (v Vector4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// ColumnMatrix2 is a 2x2 column-major matrix.
type ColumnMatrix2[T any] struct {
	X, Y Vector2[T]
}

// ColumnMatrix3 is a 3x3 column-major matrix.
type ColumnMatrix3[T any] struct {
	X, Y, Z Vector3[T]
}

// ColumnMatrix4 is a 4x4 column-major matrix.
type ColumnMatrix4[T any] struct {
	X, Y, Z, W Vector4[T]
}

// ColumnMatrix3x2 has 3 rows and 2 columns.
type ColumnMatrix3x2[T any] struct {
	X, Y Vector3[T]
}

// ColumnMatrix4x2 has 4 rows and 2 columns.
type ColumnMatrix4x2[T any] struct {
	X, Y Vector4[T]
}

// ColumnMatrix2x3 has 2 rows and 3 columns.
type ColumnMatrix2x3[T any] struct {
	X, Y, Z Vector2[T]
}

// ColumnMatrix4x3 has 4 rows and 3 columns.
type ColumnMatrix4x3[T any] struct {
	X, Y, Z Vector4[T]
}

// ColumnMatrix2x4 has 2 rows and 4 columns.
type ColumnMatrix2x4[T any] struct {
	X, Y, Z, W Vector2[T]
}

// ColumnMatrix3x4 has 3 rows and 4 columns.
type ColumnMatrix3x4[T any] struct {
	X, Y, Z, W Vector3[T]
}
