//go:build linux

package platform

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// win32ImageBase is the default load address of a 32-bit Win32 PE
// image; Wine/Proton honors it just like native Windows does.
const win32ImageBase = 0x00400000

// linuxHandle reads a Wine/Proton process's memory through the
// cross-process vectored-read syscall. The "image base" for a Win32
// target under Wine is always the fixed default, so there is no
// module-enumeration step to perform as there is on native Windows.
type linuxHandle struct {
	pid                 uint32
	steamCompatDataPath string
}

// Connect attaches to pid, recovering STEAM_COMPAT_DATA_PATH from its
// environment for later Wine-prefix path translation (see vfs).
func Connect(pid uint32) (Handle, error) {
	env, err := os.ReadFile(fmt.Sprintf("/proc/%d/environ", pid))
	if err != nil {
		return nil, &ErrProcessNotFound{Pid: pid, Err: err}
	}

	var compatDataPath string
	for _, kv := range bytes.Split(env, []byte{0}) {
		if rest, ok := strings.CutPrefix(string(kv), "STEAM_COMPAT_DATA_PATH="); ok {
			compatDataPath = rest
			break
		}
	}

	return &linuxHandle{pid: pid, steamCompatDataPath: compatDataPath}, nil
}

func (h *linuxHandle) Pid() uint32  { return h.pid }
func (h *linuxHandle) Base() uint32 { return win32ImageBase }

// SteamCompatDataPath returns the Wine prefix root for this process,
// or "" if the process wasn't launched through a Steam compat tool.
func (h *linuxHandle) SteamCompatDataPath() string { return h.steamCompatDataPath }

func (h *linuxHandle) ReadMemory(addr uint32, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	local := []unix.Iovec{{Base: &buf[0], Len: uint64(len(buf))}}
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}

	n, err := unix.ProcessVMReadv(int(h.pid), local, remote, 0)
	if err != nil {
		return fmt.Errorf("process_vm_readv at 0x%08x: %w", addr, err)
	}
	if n != len(buf) {
		return &ErrPartialRead{Addr: addr, Requested: len(buf), Got: n}
	}
	return nil
}

func (h *linuxHandle) Close() error { return nil }
