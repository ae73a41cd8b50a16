// Package mintstd140 converts mint vectors and column matrices into values
// laid out for the std140 uniform-buffer memory layout.
//
// # Overview
//
// Every supported source shape has exactly one conversion function. Shapes
// without a function cannot be converted, so misuse is a compile error
// rather than a runtime failure:
//
//	v := mint.Vector2[float32]{X: 0, Y: 0}
//	s := mintstd140.Vec2(v)
//	// s[0] == v.X, s[1] == v.Y
//
//	m := mint.ColumnMatrix2[float32]{
//	    X: mint.Vector2[float32]{X: 0, Y: 1},
//	    Y: mint.Vector2[float32]{X: 2, Y: 3},
//	}
//	sm := mintstd140.Mat2x2(m) // [[0 1] [2 3]]
//
//	mintstd140.Vec2(mint.Vector2[float64]{}) // does not compile
//
// Conversions copy components bit for bit and never allocate, fail, or
// log. They are safe for concurrent use.
//
// # Matrix naming
//
// mint names matrices rows x columns and GLSL names them columns x rows.
// ColumnMatrix3x2 (three rows, two columns) converts to std140.Mat2x3.
//
// # Padding
//
// Converted values keep their packed form (a vec3 has three components).
// The std140 package inserts the padding required by the layout when
// values are encoded into a block. See package std140 for the rules, and
// package wgslcheck to compare a block against a WGSL uniform struct.
//
// # Sub-packages
//
//   - mint: source vector and matrix types
//   - std140: target value types, arrays, structs, and encoding
//   - wgslcheck: cross-check a std140 struct against WGSL via naga
//   - uniform: create and update GPU uniform buffers through wgpu HAL
package mintstd140
