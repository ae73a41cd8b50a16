package std140

// Kind identifies a std140 value type by its GLSL name.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindUint
	KindBool
	KindVec2
	KindVec3
	KindVec4
	KindIVec2
	KindIVec3
	KindIVec4
	KindUVec2
	KindUVec3
	KindUVec4
	KindMat2x2
	KindMat2x3
	KindMat2x4
	KindMat3x2
	KindMat3x3
	KindMat3x4
	KindMat4x2
	KindMat4x3
	KindMat4x4
	KindArray
	KindStruct
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindFloat:   "float",
	KindInt:     "int",
	KindUint:    "uint",
	KindBool:    "bool",
	KindVec2:    "vec2",
	KindVec3:    "vec3",
	KindVec4:    "vec4",
	KindIVec2:   "ivec2",
	KindIVec3:   "ivec3",
	KindIVec4:   "ivec4",
	KindUVec2:   "uvec2",
	KindUVec3:   "uvec3",
	KindUVec4:   "uvec4",
	KindMat2x2:  "mat2x2",
	KindMat2x3:  "mat2x3",
	KindMat2x4:  "mat2x4",
	KindMat3x2:  "mat3x2",
	KindMat3x3:  "mat3x3",
	KindMat3x4:  "mat3x4",
	KindMat4x2:  "mat4x2",
	KindMat4x3:  "mat4x3",
	KindMat4x4:  "mat4x4",
	KindArray:   "array",
	KindStruct:  "struct",
}

// String returns the GLSL spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Zero returns the zero value of a scalar, vector, or matrix kind.
// Arrays and structs have no single zero value and report false.
func Zero(k Kind) (Value, bool) {
	switch k {
	case KindFloat:
		return Float(0), true
	case KindInt:
		return Int(0), true
	case KindUint:
		return Uint(0), true
	case KindBool:
		return Bool(0), true
	case KindVec2:
		return Vec2{}, true
	case KindVec3:
		return Vec3{}, true
	case KindVec4:
		return Vec4{}, true
	case KindIVec2:
		return IVec2{}, true
	case KindIVec3:
		return IVec3{}, true
	case KindIVec4:
		return IVec4{}, true
	case KindUVec2:
		return UVec2{}, true
	case KindUVec3:
		return UVec3{}, true
	case KindUVec4:
		return UVec4{}, true
	case KindMat2x2:
		return Mat2x2{}, true
	case KindMat2x3:
		return Mat2x3{}, true
	case KindMat2x4:
		return Mat2x4{}, true
	case KindMat3x2:
		return Mat3x2{}, true
	case KindMat3x3:
		return Mat3x3{}, true
	case KindMat3x4:
		return Mat3x4{}, true
	case KindMat4x2:
		return Mat4x2{}, true
	case KindMat4x3:
		return Mat4x3{}, true
	case KindMat4x4:
		return Mat4x4{}, true
	default:
		return nil, false
	}
}
