//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsHandle wraps an opened process HANDLE. Unlike the process of
// translating this from a language where the OS handle has to be
// explicitly boxed and asserted Send+Sync across threads, Go's
// windows.Handle is a plain integer value type: copying it around
// goroutines needs no extra synchronization, only the underlying
// kernel object's documented thread-safety (which ReadProcessMemory
// and friends guarantee).
type windowsHandle struct {
	pid    uint32
	handle windows.Handle
	base   uint32
}

// Connect opens pid for query+read access and resolves its main
// module's base address by enumerating loaded modules.
func Connect(pid uint32) (Handle, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ, false, pid)
	if err != nil {
		return nil, &ErrProcessNotFound{Pid: pid, Err: err}
	}

	base, err := mainModuleBase(h)
	if err != nil {
		windows.CloseHandle(h)
		return nil, &ErrProcessNotFound{Pid: pid, Err: err}
	}

	return &windowsHandle{pid: pid, handle: h, base: base}, nil
}

func mainModuleBase(h windows.Handle) (uint32, error) {
	var modules [1]windows.Handle
	var needed uint32
	if err := windows.EnumProcessModules(h, &modules[0], uint32(unsafe.Sizeof(modules[0])), &needed); err != nil {
		return 0, fmt.Errorf("EnumProcessModules: %w", err)
	}
	// The first module returned by EnumProcessModules is always the
	// main executable module.
	return uint32(modules[0]), nil
}

func (h *windowsHandle) Pid() uint32  { return h.pid }
func (h *windowsHandle) Base() uint32 { return h.base }

func (h *windowsHandle) ReadMemory(addr uint32, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var read uintptr
	err := windows.ReadProcessMemory(h.handle, uintptr(addr), &buf[0], uintptr(len(buf)), &read)
	if err != nil {
		return fmt.Errorf("ReadProcessMemory at 0x%08x: %w", addr, err)
	}
	if int(read) != len(buf) {
		return &ErrPartialRead{Addr: addr, Requested: len(buf), Got: int(read)}
	}
	return nil
}

func (h *windowsHandle) Close() error {
	return windows.CloseHandle(h.handle)
}
