// Package process is the refcounted handle consumers hold onto: it
// wraps the OS-specific platform.Handle, owns the immutable PE header
// read once on connect, and exposes the generic Read/ReadMultiple
// primitives every remote descriptor in the remote package is built
// on top of.
package process

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/necauqua/noita-memreader/internal/log"
	"github.com/necauqua/noita-memreader/internal/peimage"
	"github.com/necauqua/noita-memreader/internal/platform"
)

// Pod marks a type as a plain, fixed-layout value with no host-side
// pointers, safe to zero-allocate and fill directly from remote bytes
// via encoding/binary. It is the Go analogue of the original's
// Pod: IntoBytes + FromBytes blanket bound; every descriptor struct in
// the remote package implements it trivially (an empty method set).
type Pod interface {
	// Pod is a marker method with no behavior; its only purpose is to
	// restrict Read/ReadMultiple to types that were deliberately
	// declared fixed-layout.
	Pod()
}

// Options configures a Ref the way pe.Options configures a File: a
// plain struct of tunables passed by pointer, defaulted when nil or
// zero-valued.
type Options struct {
	// Logger is wrapped into the Ref's log helper. No package in this
	// module currently writes diagnostics through it. Defaults to a
	// filtered stdout logger at error level.
	Logger log.Logger
}

// Ref is a live reference to a connected target process. Equality is
// by pid. Safe for concurrent use: every Read call is an independent,
// side-effect-free syscall into the target.
type Ref struct {
	handle platform.Handle
	header *peimage.Header
	log    *log.Helper
}

// Connect opens pid for reading and caches its PE header.
func Connect(pid uint32, opts *Options) (*Ref, error) {
	if opts == nil {
		opts = &Options{}
	}

	handle, err := platform.Connect(pid)
	if err != nil {
		return nil, err
	}

	ref := &Ref{handle: handle, log: log.NewHelper(opts.Logger)}

	header, err := peimage.ReadHeader(ref, handle.Base())
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("process: reading PE header: %w", err)
	}
	ref.header = header

	return ref, nil
}

// NewRefFromHandle wraps an already-open platform.Handle, reading its
// PE header the same way Connect does. Exposed so tests in other
// packages can exercise the reader against an in-memory fake handle
// without a real OS process.
func NewRefFromHandle(handle platform.Handle, opts *Options) (*Ref, error) {
	if opts == nil {
		opts = &Options{}
	}
	ref := &Ref{handle: handle, log: log.NewHelper(opts.Logger)}
	header, err := peimage.ReadHeader(ref, handle.Base())
	if err != nil {
		return nil, fmt.Errorf("process: reading PE header: %w", err)
	}
	ref.header = header
	return ref, nil
}

// NewBareRefFromHandle wraps an already-open platform.Handle without
// reading a PE header, for tests of descriptor/domain logic that
// never call Header() and don't want to fabricate a full image
// fixture just to get a *Ref to read bytes through.
func NewBareRefFromHandle(handle platform.Handle) *Ref {
	return &Ref{handle: handle, log: log.NewHelper(nil)}
}

// Pid returns the target process id.
func (r *Ref) Pid() uint32 { return r.handle.Pid() }

// Base returns the main module's load address.
func (r *Ref) Base() uint32 { return r.handle.Base() }

// Header returns the cached PE header. It panics if called before
// Connect has finished constructing the Ref — the only legitimate
// nil window, since Connect itself is what populates it.
func (r *Ref) Header() *peimage.Header {
	if r.header == nil {
		panic("process: Header() called before the PE header was read")
	}
	return r.header
}

// SteamCompatDataPath returns the Wine prefix root recovered from the
// target's environment on Linux, or "" on Windows or when unset.
func (r *Ref) SteamCompatDataPath() string {
	if p, ok := r.handle.(platform.SteamCompatDataPather); ok {
		return p.SteamCompatDataPath()
	}
	return ""
}

// Close releases the underlying OS handle.
func (r *Ref) Close() error { return r.handle.Close() }

// Equal reports whether two refs point at the same target pid.
func (r *Ref) Equal(other *Ref) bool {
	return other != nil && r.Pid() == other.Pid()
}

// ReadBytes reads n raw bytes at addr. It satisfies peimage.MemReader
// and remote.MemReader.
func (r *Ref) ReadBytes(addr uint32, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.handle.ReadMemory(addr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read decodes one T out of the target's memory at addr.
func Read[T Pod](r *Ref, addr uint32) (T, error) {
	var zero T
	buf, err := r.ReadBytes(addr, binary.Size(zero))
	if err != nil {
		return zero, err
	}
	var v T
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &v); err != nil {
		return zero, fmt.Errorf("process: decoding %T at 0x%08x: %w", zero, addr, err)
	}
	return v, nil
}

// ReadMultiple decodes n consecutive T values out of the target's
// memory starting at addr.
func ReadMultiple[T Pod](r *Ref, addr uint32, n int) ([]T, error) {
	var zero T
	elemSize := binary.Size(zero)
	buf, err := r.ReadBytes(addr, elemSize*n)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	rd := bytes.NewReader(buf)
	for i := range out {
		if err := binary.Read(rd, binary.LittleEndian, &out[i]); err != nil {
			return nil, fmt.Errorf("process: decoding %T[%d] at 0x%08x: %w", zero, i, addr, err)
		}
	}
	return out, nil
}
