package remote

// ByteBool is a bool stored as a single byte, as MSVC lays out C++
// `bool` fields — distinct from Go's native bool only in that reading
// it off the wire must not assume byte(true)==1 exactly; any nonzero
// byte is true, matching the target compiler's own recognition rule.
type ByteBool uint8

// Pod marks ByteBool as fixed-layout.
func (ByteBool) Pod() {}

// Bool converts to a native Go bool.
func (b ByteBool) Bool() bool { return b != 0 }

// PadBool3 is a ByteBool padded to 4-byte alignment, the common case
// when it's followed by a 4-byte-aligned field.
type PadBool3 struct {
	Value ByteBool
	_     [3]byte
}

// Pod marks PadBool3 as fixed-layout.
func (PadBool3) Pod() {}

// Bool converts to a native Go bool.
func (b PadBool3) Bool() bool { return b.Value.Bool() }

// PadBool2 is a ByteBool padded by 2 bytes.
type PadBool2 struct {
	Value ByteBool
	_     [2]byte
}

// Pod marks PadBool2 as fixed-layout.
func (PadBool2) Pod() {}

// Bool converts to a native Go bool.
func (b PadBool2) Bool() bool { return b.Value.Bool() }

// PadBool1 is a ByteBool padded by 1 byte.
type PadBool1 struct {
	Value ByteBool
	_     [1]byte
}

// Pod marks PadBool1 as fixed-layout.
func (PadBool1) Pod() {}

// Bool converts to a native Go bool.
func (b PadBool1) Bool() bool { return b.Value.Bool() }
