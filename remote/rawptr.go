// Package remote is the typed-memory-descriptor layer: bit-exact
// layouts for the target's foreign primitives (strings, vectors,
// ordered maps, hash maps, bitsets, vtables), each able to lazily
// dereference itself through a *process.Ref. Every descriptor here is
// Pod — fixed size, no host pointers — matching process.Pod so they
// can flow directly through process.Read / process.ReadMultiple.
package remote

import (
	"errors"

	"github.com/necauqua/noita-memreader/process"
)

// Sentinel errors for the descriptor layer.
var (
	ErrNullPointer  = errors.New("remote: null pointer with base offset 0")
	ErrInvalidData  = errors.New("remote: invalid decoded data (bad UTF-8, oversize string)")
	ErrCycleOrDepth = errors.New("remote: traversal exceeded its iteration bound")
)

// maxCStringLen bounds the C-string growth search, a corruption
// defense rather than a retry mechanism.
const maxCStringLen = 2048

// maxDescentIterations bounds ordered-map descent against corrupt
// (cyclic) memory.
const maxDescentIterations = 100

// RawPtr is an untyped 32-bit remote address: the escape hatch for
// "I know the address, I don't need a phantom type for it".
type RawPtr uint32

// Pod marks RawPtr as a fixed-layout value.
func (RawPtr) Pod() {}

// IsNull reports whether the address is zero.
func (p RawPtr) IsNull() bool { return p == 0 }

// Offset returns p shifted by n bytes.
func (p RawPtr) Offset(n int32) RawPtr { return RawPtr(int64(p) + int64(n)) }

// Addr returns the plain numeric address.
func (p RawPtr) Addr() uint32 { return uint32(p) }

// ReadRaw reads n bytes at p.
func ReadRaw(ref *process.Ref, p RawPtr, n int) ([]byte, error) {
	return ref.ReadBytes(uint32(p), n)
}

// ReadAt decodes a T at the raw pointer's address.
func ReadAt[T process.Pod](ref *process.Ref, p RawPtr) (T, error) {
	return process.Read[T](ref, uint32(p))
}

// ReadMultipleAt decodes n consecutive T values starting at p.
func ReadMultipleAt[T process.Pod](ref *process.Ref, p RawPtr, n int) ([]T, error) {
	return process.ReadMultiple[T](ref, uint32(p), n)
}
