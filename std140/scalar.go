package std140

// Float is a GLSL float.
type Float float32

// Int is a GLSL int.
type Int int32

// Uint is a GLSL uint.
type Uint uint32

// Bool is a GLSL bool. std140 stores booleans as 32-bit values,
// zero for false and one for true.
type Bool uint32

// Boolean values.
const (
	False Bool = 0
	True  Bool = 1
)

// NewBool returns True or False.
func NewBool(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Bool reports whether b is non-zero.
func (b Bool) Bool() bool { return b != 0 }

var scalarLayout = Layout{Align: 4, Size: 4}

func (Float) Layout() Layout { return scalarLayout }
func (Int) Layout() Layout   { return scalarLayout }
func (Uint) Layout() Layout  { return scalarLayout }
func (Bool) Layout() Layout  { return scalarLayout }

func (Float) Kind() Kind { return KindFloat }
func (Int) Kind() Kind   { return KindInt }
func (Uint) Kind() Kind  { return KindUint }
func (Bool) Kind() Kind  { return KindBool }

func (f Float) AppendStd140(dst []byte) []byte { return appendFloat(dst, float32(f)) }
func (i Int) AppendStd140(dst []byte) []byte   { return appendUint(dst, uint32(i)) }
func (u Uint) AppendStd140(dst []byte) []byte  { return appendUint(dst, uint32(u)) }
func (b Bool) AppendStd140(dst []byte) []byte  { return appendUint(dst, uint32(b)) }

func (Float) std140() {}
func (Int) std140()   {}
func (Uint) std140()  {}
func (Bool) std140()  {}
