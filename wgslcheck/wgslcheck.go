// Package wgslcheck compares std140 blocks with WGSL uniform structs.
//
// WGSL lays out uniform structs with its own rules, which agree with
// std140 for most members but not all of them. A mat2x2<f32> has 8-byte
// columns in WGSL and 16-byte columns in std140, for example. Compare lists
// every member where the two layouts disagree so a std140 block is only
// uploaded to a WGSL shader when its bytes line up.
//
// WGSL source is parsed and lowered with naga; member offsets come from
// the lowered IR.
package wgslcheck

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/chubei/mint-std140/std140"
)

var (
	// ErrStructNotFound is returned when the shader declares no struct with
	// the requested name.
	ErrStructNotFound = errors.New("wgslcheck: struct not found")

	// ErrUnsupportedType is returned for struct members that have no std140
	// counterpart (runtime-sized arrays, f16, pointers, textures).
	ErrUnsupportedType = errors.New("wgslcheck: unsupported member type")
)

// Shader is a lowered WGSL module.
type Shader struct {
	module *ir.Module
}

// Parse parses and lowers WGSL source.
func Parse(source string) (*Shader, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("wgslcheck: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("wgslcheck: lower: %w", err)
	}
	return &Shader{module: module}, nil
}

// Member is a WGSL struct member with its offset in the WGSL layout.
type Member struct {
	Name   string
	Kind   std140.Kind
	Offset uint32
	Size   uint32
}

// Structs returns the names of all struct types in declaration order.
func (s *Shader) Structs() []string {
	var names []string
	for _, t := range s.module.Types {
		if _, ok := t.Inner.(ir.StructType); ok && t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// Struct returns the members of the named struct in the WGSL layout.
func (s *Shader) Struct(name string) ([]Member, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(st.Members))
	for _, m := range st.Members {
		kind, err := s.kind(m.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, m.Name, err)
		}
		members = append(members, Member{
			Name:   m.Name,
			Kind:   kind,
			Offset: m.Offset,
			Size:   ir.TypeSize(s.module, m.Type),
		})
	}
	return members, nil
}

// Span returns the byte size of the named struct in the WGSL layout.
func (s *Shader) Span(name string) (uint32, error) {
	st, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return st.Span, nil
}

// Std140 builds a zero-valued std140 struct with the members of the named
// WGSL struct, in order and with the same names. Nested structs and
// fixed-size arrays are mirrored recursively.
func (s *Shader) Std140(name string) (*std140.Struct, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return s.std140Struct(name, st)
}

func (s *Shader) lookup(name string) (ir.StructType, error) {
	for _, t := range s.module.Types {
		if st, ok := t.Inner.(ir.StructType); ok && t.Name == name {
			return st, nil
		}
	}
	return ir.StructType{}, fmt.Errorf("%w: %q", ErrStructNotFound, name)
}

func (s *Shader) std140Struct(name string, st ir.StructType) (*std140.Struct, error) {
	out := std140.NewStruct()
	for _, m := range st.Members {
		v, err := s.zero(m.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, m.Name, err)
		}
		out.Add(m.Name, v)
	}
	return out, nil
}

// zero returns the zero std140 value for a WGSL type.
func (s *Shader) zero(h ir.TypeHandle) (std140.Value, error) {
	if int(h) >= len(s.module.Types) {
		return nil, fmt.Errorf("%w: bad type handle %d", ErrUnsupportedType, h)
	}
	t := s.module.Types[h]
	switch inner := t.Inner.(type) {
	case ir.StructType:
		return s.std140Struct(t.Name, inner)
	case ir.ArrayType:
		if inner.Size.Constant == nil {
			return nil, fmt.Errorf("%w: runtime-sized array", ErrUnsupportedType)
		}
		elems := make(std140.Array[std140.Value], *inner.Size.Constant)
		for i := range elems {
			e, err := s.zero(inner.Base)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return elems, nil
	}
	kind, err := s.kind(h)
	if err != nil {
		return nil, err
	}
	v, _ := std140.Zero(kind)
	return v, nil
}

// kind maps a WGSL type to its std140 kind.
func (s *Shader) kind(h ir.TypeHandle) (std140.Kind, error) {
	if int(h) >= len(s.module.Types) {
		return std140.KindInvalid, fmt.Errorf("%w: bad type handle %d", ErrUnsupportedType, h)
	}
	switch t := s.module.Types[h].Inner.(type) {
	case ir.ScalarType:
		return scalarKind(t)
	case ir.VectorType:
		return vectorKind(t)
	case ir.MatrixType:
		return matrixKind(t)
	case ir.ArrayType:
		if t.Size.Constant == nil {
			return std140.KindInvalid, fmt.Errorf("%w: runtime-sized array", ErrUnsupportedType)
		}
		if _, err := s.kind(t.Base); err != nil {
			return std140.KindInvalid, err
		}
		return std140.KindArray, nil
	case ir.StructType:
		return std140.KindStruct, nil
	default:
		return std140.KindInvalid, fmt.Errorf("%w: %T", ErrUnsupportedType, t)
	}
}

func scalarKind(t ir.ScalarType) (std140.Kind, error) {
	if t.Kind == ir.ScalarBool {
		return std140.KindBool, nil
	}
	if t.Width != 4 {
		return std140.KindInvalid, fmt.Errorf("%w: %d-byte scalar", ErrUnsupportedType, t.Width)
	}
	switch t.Kind {
	case ir.ScalarFloat:
		return std140.KindFloat, nil
	case ir.ScalarSint:
		return std140.KindInt, nil
	case ir.ScalarUint:
		return std140.KindUint, nil
	}
	return std140.KindInvalid, fmt.Errorf("%w: scalar kind %d", ErrUnsupportedType, t.Kind)
}

var vectorKinds = map[ir.ScalarKind][3]std140.Kind{
	ir.ScalarFloat: {std140.KindVec2, std140.KindVec3, std140.KindVec4},
	ir.ScalarSint:  {std140.KindIVec2, std140.KindIVec3, std140.KindIVec4},
	ir.ScalarUint:  {std140.KindUVec2, std140.KindUVec3, std140.KindUVec4},
}

func vectorKind(t ir.VectorType) (std140.Kind, error) {
	kinds, ok := vectorKinds[t.Scalar.Kind]
	if !ok || t.Scalar.Width != 4 || t.Size < ir.Vec2 || t.Size > ir.Vec4 {
		return std140.KindInvalid, fmt.Errorf("%w: vector of %d-byte kind %d", ErrUnsupportedType, t.Scalar.Width, t.Scalar.Kind)
	}
	return kinds[t.Size-ir.Vec2], nil
}

// matrixKinds is indexed by [columns-2][rows-2].
var matrixKinds = [3][3]std140.Kind{
	{std140.KindMat2x2, std140.KindMat2x3, std140.KindMat2x4},
	{std140.KindMat3x2, std140.KindMat3x3, std140.KindMat3x4},
	{std140.KindMat4x2, std140.KindMat4x3, std140.KindMat4x4},
}

func matrixKind(t ir.MatrixType) (std140.Kind, error) {
	if t.Scalar.Kind != ir.ScalarFloat || t.Scalar.Width != 4 ||
		t.Columns < ir.Vec2 || t.Columns > ir.Vec4 || t.Rows < ir.Vec2 || t.Rows > ir.Vec4 {
		return std140.KindInvalid, fmt.Errorf("%w: matrix of %d-byte kind %d", ErrUnsupportedType, t.Scalar.Width, t.Scalar.Kind)
	}
	return matrixKinds[t.Columns-ir.Vec2][t.Rows-ir.Vec2], nil
}
