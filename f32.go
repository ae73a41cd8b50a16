package mintstd140

import (
	"golang.org/x/image/math/f32"

	"github.com/chubei/mint-std140/std140"
)

// FromF32Vec2 converts an x/image vector to a vec2.
func FromF32Vec2(v f32.Vec2) std140.Vec2 { return std140.Vec2(v) }

// FromF32Vec3 converts an x/image vector to a vec3.
func FromF32Vec3(v f32.Vec3) std140.Vec3 { return std140.Vec3(v) }

// FromF32Vec4 converts an x/image vector to a vec4.
func FromF32Vec4(v f32.Vec4) std140.Vec4 { return std140.Vec4(v) }

// FromF32Mat3 converts a row-major x/image Mat3 to a column-major mat3x3.
// Element m[3*r+c] lands in column c, row r.
func FromF32Mat3(m f32.Mat3) std140.Mat3x3 {
	var out std140.Mat3x3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = m[3*r+c]
		}
	}
	return out
}

// FromF32Mat4 converts a row-major x/image Mat4 to a column-major mat4x4.
// Element m[4*r+c] lands in column c, row r.
func FromF32Mat4(m f32.Mat4) std140.Mat4x4 {
	var out std140.Mat4x4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[4*r+c]
		}
	}
	return out
}
