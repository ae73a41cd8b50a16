package wgslcheck

import (
	"fmt"

	"github.com/gogpu/naga/ir"

	"github.com/chubei/mint-std140/std140"
)

// Mismatch describes one disagreement between a std140 block and a WGSL
// struct. Member is empty for struct-level mismatches.
type Mismatch struct {
	Member string
	Reason string
	WGSL   uint32
	Std140 uint32
}

func (m Mismatch) String() string {
	if m.Member == "" {
		return fmt.Sprintf("%s (wgsl %d, std140 %d)", m.Reason, m.WGSL, m.Std140)
	}
	return fmt.Sprintf("%s: %s (wgsl %d, std140 %d)", m.Member, m.Reason, m.WGSL, m.Std140)
}

// Mismatch reasons.
const (
	ReasonOffset  = "offset differs"
	ReasonKind    = "type differs"
	ReasonName    = "name differs"
	ReasonCount   = "member count differs"
	ReasonSize    = "size differs"
	ReasonMissing = "member missing"
	ReasonLength  = "array length differs"
	ReasonStride  = "array stride differs"
)

// Compare reports where block and the named WGSL struct disagree on member
// names, types, offsets, count, or total size. Nested structs and array
// elements are compared too; their Member is a path such as "lights[1].color"
// and offsets are from the start of block. An empty result means the bytes
// of block can be bound to the WGSL struct unchanged.
func Compare(block *std140.Struct, shader *Shader, name string) ([]Mismatch, error) {
	st, err := shader.lookup(name)
	if err != nil {
		return nil, err
	}
	c := comparer{shader: shader, root: name}
	if err := c.structs("", block, st, 0, 0); err != nil {
		return nil, err
	}
	return c.out, nil
}

type comparer struct {
	shader *Shader
	root   string
	out    []Mismatch
}

func (c *comparer) add(m Mismatch) {
	c.out = append(c.out, m)
}

// structs compares block with st. path is the member path of the struct
// ("" at the top level); wbase and sbase are its WGSL and std140 offsets.
func (c *comparer) structs(path string, block *std140.Struct, st ir.StructType, wbase, sbase uint32) error {
	prefix := ""
	if path != "" {
		prefix = path + "."
	}
	members := block.Members()
	if len(members) != len(st.Members) {
		c.add(Mismatch{
			Member: path,
			Reason: ReasonCount,
			WGSL:   uint32(len(st.Members)),
			Std140: uint32(len(members)),
		})
	}
	for i, w := range st.Members {
		kind, err := c.shader.kind(w.Type)
		if err != nil {
			return fmt.Errorf("%s.%s%s: %w", c.root, prefix, w.Name, err)
		}
		member := prefix + w.Name
		woff := wbase + w.Offset
		if i >= len(members) {
			c.add(Mismatch{Member: member, Reason: ReasonMissing, WGSL: woff})
			continue
		}
		m := members[i]
		soff := sbase + m.Offset
		if m.Name != w.Name {
			c.add(Mismatch{Member: member, Reason: ReasonName, WGSL: woff, Std140: soff})
		}
		if m.Value.Kind() != kind {
			c.add(kindMismatch(member, kind, m.Value.Kind(), woff, soff))
		}
		if woff != soff {
			c.add(Mismatch{Member: member, Reason: ReasonOffset, WGSL: woff, Std140: soff})
		}
		if m.Value.Kind() == kind {
			if err := c.nested(member, m.Value, w.Type, woff, soff); err != nil {
				return err
			}
		}
	}
	if size := block.Layout().Size; size != st.Span {
		c.add(Mismatch{Member: path, Reason: ReasonSize, WGSL: st.Span, Std140: size})
	}
	return nil
}

// elements is implemented by every std140.Array.
type elements interface {
	Elems() []std140.Value
	Stride() uint32
}

// nested descends into v when it is a struct or an array. v already has the
// kind of the WGSL type h.
func (c *comparer) nested(path string, v std140.Value, h ir.TypeHandle, woff, soff uint32) error {
	switch t := c.shader.module.Types[h].Inner.(type) {
	case ir.StructType:
		if block, ok := v.(*std140.Struct); ok {
			return c.structs(path, block, t, woff, soff)
		}
	case ir.ArrayType:
		arr, ok := v.(elements)
		if !ok {
			return nil
		}
		return c.arrays(path, arr, t, woff, soff)
	}
	return nil
}

func (c *comparer) arrays(path string, arr elements, t ir.ArrayType, woff, soff uint32) error {
	kind, err := c.shader.kind(t.Base)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", c.root, path, err)
	}
	elems := arr.Elems()
	n := int(*t.Size.Constant)
	if len(elems) != n {
		c.add(Mismatch{Member: path, Reason: ReasonLength, WGSL: uint32(n), Std140: uint32(len(elems))})
	}
	stride := arr.Stride()
	if stride != t.Stride {
		c.add(Mismatch{Member: path, Reason: ReasonStride, WGSL: t.Stride, Std140: stride})
	}
	for i, e := range elems[:min(n, len(elems))] {
		elem := fmt.Sprintf("%s[%d]", path, i)
		ew := woff + uint32(i)*t.Stride
		es := soff + uint32(i)*stride
		got := std140.KindInvalid
		if e != nil {
			got = e.Kind()
		}
		if got != kind {
			c.add(kindMismatch(elem, kind, got, ew, es))
			continue
		}
		if err := c.nested(elem, e, t.Base, ew, es); err != nil {
			return err
		}
	}
	return nil
}

func kindMismatch(member string, wgsl, std std140.Kind, woff, soff uint32) Mismatch {
	return Mismatch{
		Member: member,
		Reason: ReasonKind + ": " + wgsl.String() + " vs " + std.String(),
		WGSL:   woff,
		Std140: soff,
	}
}

// CompareSource parses WGSL source and compares block against the named
// struct in it.
func CompareSource(block *std140.Struct, source, name string) ([]Mismatch, error) {
	shader, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return Compare(block, shader, name)
}
