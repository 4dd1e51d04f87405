// Package vfs models the engine's virtual filesystem: the platform
// singleton, the layered file devices it dispatches reads through
// (disk, mod overlays, packed wizard paks), and the host-side path
// resolution needed to actually fetch bytes for the process owning
// them.
package vfs

import (
	"github.com/necauqua/noita-memreader/remote"
)

// PlatformWin is the engine's OS abstraction singleton: window/frame
// state, input device pointers (kept opaque — never dereferenced) and
// the virtual filesystem root.
type PlatformWin struct {
	Vftable                   remote.Vftable
	Application               remote.RawPtr
	AppConfig                 remote.RawPtr
	InternalWidth             float32
	InternalHeight            float32
	InputDisabled             remote.PadBool3
	Graphics                  remote.RawPtr
	FixedTimeStep             remote.PadBool3
	FrameCount                int32
	FrameRate                 int32
	LastFrameExecutionTime     float64
	AverageFrameExecutionTime  float64
	OneFrameShouldLast         float64
	TimeElapsedTracker         float64
	Width                     int32
	Height                    int32
	EventRecorder             remote.RawPtr
	Mouse                     remote.RawPtr
	Keyboard                  remote.RawPtr
	Touch                     remote.RawPtr
	Joysticks                 remote.Vector[remote.RawPtr]
	SoundPlayer               remote.RawPtr
	FileSystem                remote.Ptr[FileSystem]
	Running                   remote.PadBool3
	MousePosX, MousePosY       float32
	SleepingMode              int32
	PrintFramerate             remote.PadBool3
	WorkingDir                remote.SsoString
	RandomI                   int32
	RandomSeed                int32
	JoysticksEnabled          remote.PadBool3
}

// Pod marks PlatformWin as fixed-layout.
func (PlatformWin) Pod() {}

// PathLocation identifies where a named path root lives.
type PathLocation uint32

const (
	PathLocationUserDirectory    PathLocation = 0
	PathLocationWorkingDirectory PathLocation = 1
)

// Pod marks PathLocation as fixed-layout.
func (PathLocation) Pod() {}

// PathProxy is one named alias the filesystem resolves a logical root
// path through (e.g. "save00" -> the appdata save directory).
type PathProxy struct {
	Name     remote.SsoString
	Location PathLocation
	Path     remote.SsoString
}

// Pod marks PathProxy as fixed-layout.
func (PathProxy) Pod() {}

// FileSystem is the root of the engine's virtual filesystem: a vector
// of opaque device pointers tried in order for each lookup.
type FileSystem struct {
	Devices          remote.Vector[remote.RawPtr]
	PathProxies      remote.Vector[PathProxy]
	Mutex            remote.RawPtr
	DefaultDevice    remote.Ptr[DiskFileDevice]
	DefaultDevice2   remote.Ptr[DiskFileDevice]
}

// Pod marks FileSystem as fixed-layout.
func (FileSystem) Pod() {}
