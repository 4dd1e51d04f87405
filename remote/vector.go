package remote

import (
	"encoding/binary"

	"github.com/necauqua/noita-memreader/process"
)

// Vector is the MSVC std::vector layout: three pointers (begin, end,
// cap). Length is derived, not stored.
type Vector[T process.Pod] struct {
	Begin uint32
	End   uint32
	Cap   uint32
}

// Pod marks Vector as fixed-layout.
func (Vector[T]) Pod() {}

// Len reports (end-begin)/sizeof(T). An absurd (unsigned-wrapped or
// outsized) length is tolerated here — it is the caller's job to
// sanity-bound before bulk-reading an untrusted structure.
func (v Vector[T]) Len() int {
	var zero T
	elemSize := binary.Size(zero)
	if elemSize <= 0 {
		return 0
	}
	return int(v.End-v.Begin) / elemSize
}

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool { return v.Begin == v.End }

// Read decodes every element of the vector.
func (v Vector[T]) Read(ref *process.Ref) ([]T, error) {
	n := v.Len()
	if n <= 0 {
		return nil, nil
	}
	return process.ReadMultiple[T](ref, v.Begin, n)
}

// Get reads the i-th element without materializing the whole vector.
func (v Vector[T]) Get(ref *process.Ref, i int) (T, error) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, ErrInvalidData
	}
	elemSize := binary.Size(zero)
	return process.Read[T](ref, v.Begin+uint32(i*elemSize))
}

// Truncated reads at most max elements, for debug-printing long
// vectors without a full round-trip.
func (v Vector[T]) Truncated(ref *process.Ref, max int) ([]T, error) {
	n := v.Len()
	if n > max {
		n = max
	}
	if n <= 0 {
		return nil, nil
	}
	return process.ReadMultiple[T](ref, v.Begin, n)
}
