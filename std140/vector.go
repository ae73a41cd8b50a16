package std140

// Vec2 is a GLSL vec2.
type Vec2 [2]float32

// Vec3 is a GLSL vec3. It holds three components; the std140 16-byte
// alignment is applied only when the value is placed.
type Vec3 [3]float32

// Vec4 is a GLSL vec4.
type Vec4 [4]float32

// IVec2 is a GLSL ivec2.
type IVec2 [2]int32

// IVec3 is a GLSL ivec3.
type IVec3 [3]int32

// IVec4 is a GLSL ivec4.
type IVec4 [4]int32

// UVec2 is a GLSL uvec2.
type UVec2 [2]uint32

// UVec3 is a GLSL uvec3.
type UVec3 [3]uint32

// UVec4 is a GLSL uvec4.
type UVec4 [4]uint32

var (
	vec2Layout = Layout{Align: 8, Size: 8}
	vec3Layout = Layout{Align: 16, Size: 12}
	vec4Layout = Layout{Align: 16, Size: 16}
)

func (Vec2) Layout() Layout  { return vec2Layout }
func (Vec3) Layout() Layout  { return vec3Layout }
func (Vec4) Layout() Layout  { return vec4Layout }
func (IVec2) Layout() Layout { return vec2Layout }
func (IVec3) Layout() Layout { return vec3Layout }
func (IVec4) Layout() Layout { return vec4Layout }
func (UVec2) Layout() Layout { return vec2Layout }
func (UVec3) Layout() Layout { return vec3Layout }
func (UVec4) Layout() Layout { return vec4Layout }

func (Vec2) Kind() Kind  { return KindVec2 }
func (Vec3) Kind() Kind  { return KindVec3 }
func (Vec4) Kind() Kind  { return KindVec4 }
func (IVec2) Kind() Kind { return KindIVec2 }
func (IVec3) Kind() Kind { return KindIVec3 }
func (IVec4) Kind() Kind { return KindIVec4 }
func (UVec2) Kind() Kind { return KindUVec2 }
func (UVec3) Kind() Kind { return KindUVec3 }
func (UVec4) Kind() Kind { return KindUVec4 }

func (v Vec2) AppendStd140(dst []byte) []byte { return appendFloats(dst, v[:]) }
func (v Vec3) AppendStd140(dst []byte) []byte { return appendFloats(dst, v[:]) }
func (v Vec4) AppendStd140(dst []byte) []byte { return appendFloats(dst, v[:]) }

func (v IVec2) AppendStd140(dst []byte) []byte { return appendInts(dst, v[:]) }
func (v IVec3) AppendStd140(dst []byte) []byte { return appendInts(dst, v[:]) }
func (v IVec4) AppendStd140(dst []byte) []byte { return appendInts(dst, v[:]) }

func (v UVec2) AppendStd140(dst []byte) []byte { return appendUints(dst, v[:]) }
func (v UVec3) AppendStd140(dst []byte) []byte { return appendUints(dst, v[:]) }
func (v UVec4) AppendStd140(dst []byte) []byte { return appendUints(dst, v[:]) }

func (Vec2) std140()  {}
func (Vec3) std140()  {}
func (Vec4) std140()  {}
func (IVec2) std140() {}
func (IVec3) std140() {}
func (IVec4) std140() {}
func (UVec2) std140() {}
func (UVec3) std140() {}
func (UVec4) std140() {}

func appendFloats(dst []byte, v []float32) []byte {
	for _, f := range v {
		dst = appendFloat(dst, f)
	}
	return dst
}

func appendInts(dst []byte, v []int32) []byte {
	for _, i := range v {
		dst = appendUint(dst, uint32(i))
	}
	return dst
}

func appendUints(dst []byte, v []uint32) []byte {
	for _, u := range v {
		dst = appendUint(dst, u)
	}
	return dst
}
