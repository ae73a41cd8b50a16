package mintstd140

import (
	"github.com/chubei/mint-std140/mint"
	"github.com/chubei/mint-std140/std140"
)

// Scalars.

// Float converts a float32 to a std140 float.
func Float(f float32) std140.Float { return std140.Float(f) }

// Int converts an int32 to a std140 int.
func Int(i int32) std140.Int { return std140.Int(i) }

// Uint converts a uint32 to a std140 uint.
func Uint(u uint32) std140.Uint { return std140.Uint(u) }

// Bool converts a bool to a 32-bit std140 bool.
func Bool(b bool) std140.Bool { return std140.NewBool(b) }

// Float vectors.

// Vec2 converts a float32 Vector2 to a vec2.
func Vec2(v mint.Vector2[float32]) std140.Vec2 { return std140.Vec2{v.X, v.Y} }

// Vec3 converts a float32 Vector3 to a vec3.
func Vec3(v mint.Vector3[float32]) std140.Vec3 { return std140.Vec3{v.X, v.Y, v.Z} }

// Vec4 converts a float32 Vector4 to a vec4.
func Vec4(v mint.Vector4[float32]) std140.Vec4 { return std140.Vec4{v.X, v.Y, v.Z, v.W} }

// Signed integer vectors.

// IVec2 converts an int32 Vector2 to an ivec2.
func IVec2(v mint.Vector2[int32]) std140.IVec2 { return std140.IVec2{v.X, v.Y} }

// IVec3 converts an int32 Vector3 to an ivec3.
func IVec3(v mint.Vector3[int32]) std140.IVec3 { return std140.IVec3{v.X, v.Y, v.Z} }

// IVec4 converts an int32 Vector4 to an ivec4.
func IVec4(v mint.Vector4[int32]) std140.IVec4 { return std140.IVec4{v.X, v.Y, v.Z, v.W} }

// Unsigned integer vectors.

// UVec2 converts a uint32 Vector2 to a uvec2.
func UVec2(v mint.Vector2[uint32]) std140.UVec2 { return std140.UVec2{v.X, v.Y} }

// UVec3 converts a uint32 Vector3 to a uvec3.
func UVec3(v mint.Vector3[uint32]) std140.UVec3 { return std140.UVec3{v.X, v.Y, v.Z} }

// UVec4 converts a uint32 Vector4 to a uvec4.
func UVec4(v mint.Vector4[uint32]) std140.UVec4 { return std140.UVec4{v.X, v.Y, v.Z, v.W} }

// Column matrices. mint names matrices rows x columns while GLSL names them
// columns x rows, so ColumnMatrix3x2 (3 rows, 2 columns) becomes mat2x3.
// Each column goes through the vector conversion of its shape.

// Mat2x2 converts a 2x2 column matrix to a mat2x2.
func Mat2x2(m mint.ColumnMatrix2[float32]) std140.Mat2x2 {
	return std140.Mat2x2{Vec2(m.X), Vec2(m.Y)}
}

// Mat2x3 converts a 3-row, 2-column matrix to a mat2x3.
func Mat2x3(m mint.ColumnMatrix3x2[float32]) std140.Mat2x3 {
	return std140.Mat2x3{Vec3(m.X), Vec3(m.Y)}
}

// Mat2x4 converts a 4-row, 2-column matrix to a mat2x4.
func Mat2x4(m mint.ColumnMatrix4x2[float32]) std140.Mat2x4 {
	return std140.Mat2x4{Vec4(m.X), Vec4(m.Y)}
}

// Mat3x2 converts a 2-row, 3-column matrix to a mat3x2.
func Mat3x2(m mint.ColumnMatrix2x3[float32]) std140.Mat3x2 {
	return std140.Mat3x2{Vec2(m.X), Vec2(m.Y), Vec2(m.Z)}
}

// Mat3x3 converts a 3x3 column matrix to a mat3x3.
func Mat3x3(m mint.ColumnMatrix3[float32]) std140.Mat3x3 {
	return std140.Mat3x3{Vec3(m.X), Vec3(m.Y), Vec3(m.Z)}
}

// Mat3x4 converts a 4-row, 3-column matrix to a mat3x4.
func Mat3x4(m mint.ColumnMatrix4x3[float32]) std140.Mat3x4 {
	return std140.Mat3x4{Vec4(m.X), Vec4(m.Y), Vec4(m.Z)}
}

// Mat4x2 converts a 2-row, 4-column matrix to a mat4x2.
func Mat4x2(m mint.ColumnMatrix2x4[float32]) std140.Mat4x2 {
	return std140.Mat4x2{Vec2(m.X), Vec2(m.Y), Vec2(m.Z), Vec2(m.W)}
}

// Mat4x3 converts a 3-row, 4-column matrix to a mat4x3.
func Mat4x3(m mint.ColumnMatrix3x4[float32]) std140.Mat4x3 {
	return std140.Mat4x3{Vec3(m.X), Vec3(m.Y), Vec3(m.Z), Vec3(m.W)}
}

// Mat4x4 converts a 4x4 column matrix to a mat4x4.
func Mat4x4(m mint.ColumnMatrix4[float32]) std140.Mat4x4 {
	return std140.Mat4x4{Vec4(m.X), Vec4(m.Y), Vec4(m.Z), Vec4(m.W)}
}
