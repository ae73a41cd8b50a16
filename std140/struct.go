package std140

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMember is returned when a struct has no member with the
	// requested name.
	ErrUnknownMember = errors.New("std140: unknown struct member")

	// ErrKindMismatch is returned when a replacement value does not have the
	// kind and layout of the member it replaces.
	ErrKindMismatch = errors.New("std140: member kind mismatch")
)

// Member is a named value placed at a byte offset inside a Struct.
type Member struct {
	Name   string
	Offset uint32
	Value  Value
}

type field struct {
	name  string
	value Value
}

// Struct is an ordered std140 struct (or uniform block). Members are placed
// in the order they are added, each at the next offset aligned to its
// base alignment. Offsets are computed from the current member layouts, so
// a nested Struct or Array that grows after it was added moves the members
// that follow it.
//
// A nil *Struct is an empty struct for reading; Add and Set need a struct
// made by NewStruct or declared as a zero value.
//
// A Struct is not safe for concurrent mutation.
type Struct struct {
	fields []field
	index  map[string]int
}

// NewStruct returns an empty struct.
func NewStruct() *Struct {
	return &Struct{index: make(map[string]int)}
}

// Add appends a member and returns s for chaining.
// Add panics if s is nil, name is already used, or v is nil.
func (s *Struct) Add(name string, v Value) *Struct {
	if s == nil {
		panic(fmt.Sprintf("std140: Add(%q) on nil *Struct", name))
	}
	if v == nil {
		panic(fmt.Sprintf("std140: nil value for member %q", name))
	}
	if _, dup := s.index[name]; dup {
		panic(fmt.Sprintf("std140: duplicate member %q", name))
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, field{name: name, value: v})
	return s
}

// Set replaces the value of an existing member. The new value must have the
// same kind and layout as the old one so that no offset moves.
func (s *Struct) Set(name string, v Value) error {
	i, ok := s.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}
	old := s.fields[i].value
	if v == nil || v.Kind() != old.Kind() || v.Layout() != old.Layout() {
		return fmt.Errorf("%w: %q is %s", ErrKindMismatch, name, old.Kind())
	}
	s.fields[i].value = v
	return nil
}

// Offset returns the byte offset of the named member.
func (s *Struct) Offset(name string) (uint32, bool) {
	i, ok := s.lookup(name)
	if !ok {
		return 0, false
	}
	members, _ := s.place()
	return members[i].Offset, true
}

// Members returns the members in declaration order with their current
// offsets. The slice is a copy.
func (s *Struct) Members() []Member {
	members, _ := s.place()
	return members
}

// Len returns the number of members.
func (s *Struct) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Layout returns a 16-byte alignment and the member extent rounded up to 16.
func (s *Struct) Layout() Layout {
	var end uint32
	if s != nil {
		for _, f := range s.fields {
			l := f.value.Layout()
			end = AlignUp(end, l.Align) + l.Size
		}
	}
	return Layout{Align: vec4Size, Size: AlignUp(end, vec4Size)}
}

// Kind returns KindStruct.
func (*Struct) Kind() Kind { return KindStruct }

// AppendStd140 writes every member at its offset relative to the start of
// the struct, with zeroed gaps and trailing padding.
func (s *Struct) AppendStd140(dst []byte) []byte {
	start := len(dst)
	members, end := s.place()
	for _, m := range members {
		dst = padTo(dst, start+int(m.Offset))
		dst = m.Value.AppendStd140(dst)
	}
	return padTo(dst, start+int(AlignUp(end, vec4Size)))
}

// Bytes encodes the struct into a new buffer.
func (s *Struct) Bytes() []byte {
	return Marshal(s)
}

func (*Struct) std140() {}

func (s *Struct) lookup(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[name]
	return i, ok
}

// place computes member offsets and the end of the last member.
func (s *Struct) place() ([]Member, uint32) {
	if s == nil {
		return nil, 0
	}
	members := make([]Member, len(s.fields))
	var end uint32
	for i, f := range s.fields {
		l := f.value.Layout()
		offset := AlignUp(end, l.Align)
		members[i] = Member{Name: f.name, Offset: offset, Value: f.value}
		end = offset + l.Size
	}
	return members, end
}
