package remote

// Pod-constrained aliases of the predeclared numeric kinds, needed
// wherever a Vector/Ptr/OrderedMap/HashMap element is a bare number
// rather than a descriptor struct — the predeclared types themselves
// can't carry the Pod marker method.
type (
	U16 uint16
	U32 uint32
	U64 uint64
	I32 int32
	F32 float32
	F64 float64
)

func (U16) Pod() {}
func (U32) Pod() {}
func (U64) Pod() {}
func (I32) Pod() {}
func (F32) Pod() {}
func (F64) Pod() {}
