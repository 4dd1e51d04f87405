package remote

import (
	"fmt"
	"sync"

	"github.com/necauqua/noita-memreader/process"
)

// debugProcess is the pretty-printing-via-process-read facility: a
// package-level slot a test or debug caller opts into so that
// container descriptors can dereference through the target while
// being formatted. Go has no native thread-local storage, so this
// uses a single mutex-guarded package variable instead, documented in
// DESIGN.md — safe here only because the facility is strictly
// debug/test-only and never touched on the read hot path.
var (
	debugMu      sync.Mutex
	debugProcess *process.Ref
)

// SetDebugProcess opts formatting helpers in this package into
// dereferencing through ref. Pass nil to opt back out.
func SetDebugProcess(ref *process.Ref) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugProcess = ref
}

func currentDebugProcess() *process.Ref {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugProcess
}

// DebugString renders a best-effort human-readable form of a value by
// running decode (e.g. an SsoString/SsoStringW/CString Decode method)
// against the opted-in debug process if one is set, and falling back
// to a placeholder otherwise. It performs no length check of its own:
// whatever decode reads is read.
func DebugString(decode func(*process.Ref) (string, error)) string {
	ref := currentDebugProcess()
	if ref == nil {
		return "<no debug process set>"
	}
	s, err := decode(ref)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return s
}
