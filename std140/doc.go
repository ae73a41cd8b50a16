// Package std140 defines values laid out for the std140 uniform-block
// memory layout used by GLSL uniform buffers.
//
// Every value keeps its minimal packed form in memory: a Vec3 holds exactly
// three float32 components and a Mat2x3 holds two Vec3 columns. The std140
// alignment rules apply when a value is placed into a buffer, an Array, or a
// Struct:
//
//   - scalars (float, int, uint, bool) align to 4 bytes and occupy 4 bytes
//   - vec2 aligns to 8 bytes, vec3 and vec4 align to 16 bytes
//   - a matCxR matrix is stored as C columns with a 16-byte stride
//   - array elements are padded to a multiple of 16 bytes
//   - structs align to 16 bytes and their size rounds up to 16 bytes
//
// Encoding is little-endian and padding bytes are always zero.
//
// Example:
//
//	block := std140.NewStruct().
//		Add("model", std140.Mat4x4{}).
//		Add("color", std140.Vec3{1, 0, 0}).
//		Add("alpha", std140.Float(1))
//	buf := block.Bytes() // 96 bytes, alpha packed at offset 76
package std140
