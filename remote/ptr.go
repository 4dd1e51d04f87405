package remote

import "github.com/necauqua/noita-memreader/process"

// Ptr is a 32-bit remote address tagged with a phantom target type T,
// the Go analogue of the original's Ptr<T, const BASE: u32> with
// BASE fixed at zero — an absolute runtime pointer. On the wire it is
// exactly 4 bytes, matching the target's native pointer width; a
// struct embedding a Ptr field must not grow by a single byte more
// than the pointer it represents.
type Ptr[T process.Pod] uint32

// Pod marks Ptr as fixed-layout.
func (Ptr[T]) Pod() {}

// Addr returns the plain numeric address.
func (p Ptr[T]) Addr() uint32 { return uint32(p) }

// IsNull reports whether the pointer is null.
func (p Ptr[T]) IsNull() bool { return p == 0 }

// Cast reinterprets the pointer as targeting a different type without
// touching the address.
func Cast[U process.Pod, T process.Pod](p Ptr[T]) Ptr[U] { return Ptr[U](p) }

// Read dereferences the pointer. A null pointer is an error.
func (p Ptr[T]) Read(ref *process.Ref) (T, error) {
	var zero T
	if p.IsNull() {
		return zero, ErrNullPointer
	}
	return process.Read[T](ref, uint32(p))
}

// Ibo is a 32-bit offset relative to the target's default image load
// address, rather than a runtime address — the Go analogue of the
// original's Ptr<T, BASE> where BASE is the image base constant, a
// zero-sized type parameter. Go has no const generics, so the base
// can't be carried in the type; instead it's supplied by the caller
// at resolve time, and Ibo itself stays exactly 4 bytes on the wire,
// same as Ptr, rather than growing to store a base it would otherwise
// duplicate in every single instance.
type Ibo[T process.Pod] uint32

// Pod marks Ibo as fixed-layout.
func (Ibo[T]) Pod() {}

// Resolve turns the offset into an absolute Ptr given the image base.
func (p Ibo[T]) Resolve(base uint32) Ptr[T] { return Ptr[T](base + uint32(p)) }

// Read resolves the offset against ref's own connected image base and
// dereferences it.
func (p Ibo[T]) Read(ref *process.Ref) (T, error) {
	return p.Resolve(ref.Base()).Read(ref)
}
