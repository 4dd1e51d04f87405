package remote

// Align4U8 wraps a single byte that is followed by alignment padding
// up to a 4-byte boundary — e.g. a bool or narrow enum embedded in an
// otherwise 4-byte-aligned struct. Go's encoding/binary has no notion
// of implicit padding, so the gap has to be a real field for a
// round-trip read to land subsequent fields correctly.
type Align4U8 struct {
	Value uint8
	_     [3]byte
}

// Pod marks Align4U8 as fixed-layout.
func (Align4U8) Pod() {}

// Align4U16 is Align4U8's 2-byte counterpart.
type Align4U16 struct {
	Value uint16
	_     [2]byte
}

// Pod marks Align4U16 as fixed-layout.
func (Align4U16) Pod() {}
