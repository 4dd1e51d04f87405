package remote

import (
	"encoding/binary"

	"github.com/necauqua/noita-memreader/process"
)

// Byte is a Pod-constrained raw byte, since the predeclared byte/uint8
// type can't carry the Pod marker method itself.
type Byte uint8

// Pod marks Byte as fixed-layout.
func (Byte) Pod() {}

// SafeArray is a pointer+length run of elements, the MSVC
// CSafeArray<T> layout used by the engine's packed-file formats (a
// mod's cached bytes, a wizard pak's blob).
type SafeArray[T process.Pod] struct {
	Data Ptr[T]
	Len  uint32
}

// Pod marks SafeArray as fixed-layout.
func (SafeArray[T]) Pod() {}

// IsEmpty reports whether the array has no backing data.
func (a SafeArray[T]) IsEmpty() bool { return a.Len == 0 || a.Data.IsNull() }

// Slice narrows the array to [offset, offset+n).
func (a SafeArray[T]) Slice(offset, n uint32) SafeArray[T] {
	var zero T
	size := uint32(binary.Size(zero))
	return SafeArray[T]{Data: Ptr[T](a.Data.Addr() + offset*size), Len: n}
}

// Read decodes every byte/element of the array.
func (a SafeArray[T]) Read(ref *process.Ref) ([]T, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return ReadMultipleAt[T](ref, RawPtr(a.Data), int(a.Len))
}
