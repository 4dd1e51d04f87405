package vfs

import (
	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

// DiskFileDevice reads files directly off the host filesystem, rooted
// at a path read from the remote process.
type DiskFileDevice struct {
	Vftable  remote.Vftable
	Path     remote.SsoStringW
	FilterFn remote.RawPtr
}

// Pod marks DiskFileDevice as fixed-layout.
func (DiskFileDevice) Pod() {}

// ModDiskFileDevice scopes a DiskFileDevice to files under a mod's
// path prefix, stripping the prefix before delegating.
type ModDiskFileDevice struct {
	Vftable                  remote.Vftable
	DiskDevice               DiskFileDevice
	ModPathPrefix            remote.SsoString
	ModPathPrefixLowercase   remote.SsoString
}

// Pod marks ModDiskFileDevice as fixed-layout.
func (ModDiskFileDevice) Pod() {}

// modFileEntry is one cached lookup result in a
// ModDiskFileDeviceCaching's entry map.
type modFileEntry struct {
	Filename     remote.SsoString
	Flag         byte
	_            [3]byte
	ModDevice    remote.Ptr[ModDiskFileDevice]
	Cache        remote.SafeArray[remote.Byte]
	_            int32
	OverrideWith remote.SsoString
}

// Pod marks modFileEntry as fixed-layout.
func (modFileEntry) Pod() {}

// ModDiskFileDeviceCaching is the mod loader's front door: a
// precomputed map from lowercased path to either a cached byte blob,
// an override path, or the ModDiskFileDevice that actually serves it.
type ModDiskFileDeviceCaching struct {
	Vftable remote.Vftable
	Entries remote.OrderedMap[remote.SsoString, modFileEntry]
}

// Pod marks ModDiskFileDeviceCaching as fixed-layout.
func (ModDiskFileDeviceCaching) Pod() {}

// wizardPakSlice is an offset/length run into a WizardPak's blob.
type wizardPakSlice struct {
	Offset, Len uint32
}

// Pod marks wizardPakSlice as fixed-layout.
func (wizardPakSlice) Pod() {}

// WizardPak is a single packed archive's backing blob and path index.
type WizardPak struct {
	Data      remote.SafeArray[remote.Byte]
	Files     remote.OrderedMap[remote.SsoString, wizardPakSlice]
	FileNames remote.Vector[remote.SsoString]
}

// Pod marks WizardPak as fixed-layout.
func (WizardPak) Pod() {}

// WizardPakFileDevice serves files out of one packed archive.
type WizardPakFileDevice struct {
	Vftable remote.Vftable
	_       uint32
	Pak     WizardPak
}

// Pod marks WizardPakFileDevice as fixed-layout.
func (WizardPakFileDevice) Pod() {}

// getFile is implemented by every concrete device kind resolved via
// RTTI in resolveDevice; it returns nil, nil on a clean miss so the
// caller falls through to the next device.
type getFile interface {
	getFile(ref *process.Ref, fs FileSystem, path string) ([]byte, error)
}
