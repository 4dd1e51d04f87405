package remote

import "github.com/necauqua/noita-memreader/process"

// Vftable is a single vtable pointer. Its "-4" slot is an MSVC RTTI
// Complete Object Locator; chasing through it yields the mangled name
// of the object's concrete class, which the virtual filesystem
// component uses to resolve polymorphic file devices without any
// host-side inheritance.
type Vftable uint32

// Pod marks Vftable as fixed-layout.
func (Vftable) Pod() {}

// RttiName chases vtable-4 -> Complete Object Locator -> Type
// Descriptor -> mangled name string, per the MSVC RTTI ABI layout.
func (v Vftable) RttiName(ref *process.Ref) (string, error) {
	col, err := process.Read[RawPtr](ref, uint32(v)-4)
	if err != nil {
		return "", err
	}
	typeDescriptor, err := process.Read[RawPtr](ref, uint32(col)+12)
	if err != nil {
		return "", err
	}
	// The mangled name starts 8 bytes into the Type Descriptor,
	// skipping its own vtable pointer and a spare field.
	name := CString(uint32(typeDescriptor) + 8)
	return name.Read(ref)
}
