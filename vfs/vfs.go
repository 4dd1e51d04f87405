package vfs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

// deviceRtti maps a device's RTTI mangled name to the type it should
// be decoded as, mirroring the engine's subclasses of its abstract
// file device interface.
var deviceRtti = map[string]func(ref *process.Ref, addr remote.RawPtr) (getFile, error){
	".?AVModDiskFileDeviceCaching@@": func(ref *process.Ref, addr remote.RawPtr) (getFile, error) {
		return remote.ReadAt[ModDiskFileDeviceCaching](ref, addr)
	},
	".?AVModDiskFileDevice@@": func(ref *process.Ref, addr remote.RawPtr) (getFile, error) {
		return remote.ReadAt[ModDiskFileDevice](ref, addr)
	},
	".?AVWizardPakFileDevice@@": func(ref *process.Ref, addr remote.RawPtr) (getFile, error) {
		return remote.ReadAt[WizardPakFileDevice](ref, addr)
	},
	".?AVDiskFileDevice@poro@@": func(ref *process.Ref, addr remote.RawPtr) (getFile, error) {
		return remote.ReadAt[DiskFileDevice](ref, addr)
	},
}

// resolveDevice chases a device's vtable to its RTTI name and decodes
// it as the matching concrete type. An unrecognized RTTI name is not
// an error — it's skipped, same as the device not existing.
func resolveDevice(ref *process.Ref, addr remote.RawPtr) (getFile, error) {
	vft, err := remote.ReadAt[remote.Vftable](ref, addr)
	if err != nil {
		return nil, err
	}
	name, err := vft.RttiName(ref)
	if err != nil {
		return nil, err
	}
	ctor, ok := deviceRtti[name]
	if !ok {
		return nil, nil
	}
	return ctor(ref, addr)
}

// GetFile walks every device in fs, in order, returning the first
// that successfully resolves path.
func GetFile(ref *process.Ref, fs FileSystem, path string) ([]byte, error) {
	devices, err := fs.Devices.Read(ref)
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		device, err := resolveDevice(ref, d)
		if err != nil {
			return nil, err
		}
		if device == nil {
			continue
		}
		data, err := device.getFile(ref, fs, path)
		if err != nil {
			return nil, err
		}
		if data != nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("vfs: file not found: %s", path)
}

func (d DiskFileDevice) getFile(ref *process.Ref, fs FileSystem, path string) ([]byte, error) {
	devicePath, err := d.Path.Decode(ref)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(devicePath, `\\:`) {
		cwdDevice, err := fs.DefaultDevice.Read(ref)
		if err != nil {
			return nil, err
		}
		cwd, err := cwdDevice.Path.Decode(ref)
		if err != nil {
			return nil, err
		}
		devicePath = cwd + `\` + devicePath
	}

	var fullPath string
	if runtime.GOOS == "windows" {
		fullPath = devicePath + `\` + strings.ReplaceAll(path, "/", `\`)
	} else {
		steamPath := ref.SteamCompatDataPath()
		unixDevicePath := strings.ReplaceAll(devicePath, `\`, "/")
		if unixDevicePath == "" {
			return nil, fmt.Errorf("vfs: empty wine device path")
		}
		// Proton/wine drive letters are lowercase in dosdevices.
		unixDevicePath = strings.ToLower(unixDevicePath[:1]) + unixDevicePath[1:]
		fullPath = filepath.Join(steamPath, "pfx", "dosdevices", unixDevicePath, path)
	}

	return readFileMapped(fullPath)
}

// readFileMapped reads a data file the way the engine's own disk
// device does: memory-mapped rather than buffered, since these files
// can run to hundreds of megabytes (world saves, big sprite atlases).
func readFileMapped(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	out := make([]byte, len(m))
	copy(out, m)
	return out, nil
}

func (d ModDiskFileDevice) getFile(ref *process.Ref, fs FileSystem, path string) ([]byte, error) {
	prefix, err := d.ModPathPrefixLowercase.Decode(ref)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(path)
	rest, ok := strings.CutPrefix(lower, prefix)
	if !ok {
		return nil, nil
	}
	return d.DiskDevice.getFile(ref, fs, rest)
}

func (d ModDiskFileDeviceCaching) getFile(ref *process.Ref, fs FileSystem, path string) ([]byte, error) {
	entry, ok, err := remote.GetByStringKey[modFileEntry](d.Entries, ref, strings.ToLower(path))
	if err != nil || !ok {
		return nil, err
	}

	if !entry.Cache.IsEmpty() {
		return readBytes(ref, entry.Cache)
	}

	if override, err := entry.OverrideWith.Decode(ref); err != nil {
		return nil, err
	} else if override != "" {
		return d.getFile(ref, fs, override)
	}

	if entry.ModDevice.IsNull() {
		return nil, nil
	}
	modDevice, err := entry.ModDevice.Read(ref)
	if err != nil {
		return nil, err
	}

	filename, err := entry.Filename.Decode(ref)
	if err != nil {
		return nil, err
	}

	// Flag nonzero means fall through straight to the disk device,
	// bypassing the mod path prefix stripping.
	if entry.Flag != 0 {
		return modDevice.DiskDevice.getFile(ref, fs, filename)
	}
	return modDevice.getFile(ref, fs, filename)
}

func (d WizardPakFileDevice) getFile(ref *process.Ref, _ FileSystem, path string) ([]byte, error) {
	slice, ok, err := remote.GetByStringKey[wizardPakSlice](d.Pak.Files, ref, path)
	if err != nil || !ok {
		return nil, err
	}
	return readBytes(ref, d.Pak.Data.Slice(slice.Offset, slice.Len))
}

// readBytes decodes a SafeArray[Byte] straight into a []byte, since
// the remote.Byte element type exists only to satisfy the Pod
// constraint and callers always want plain bytes back.
func readBytes(ref *process.Ref, arr remote.SafeArray[remote.Byte]) ([]byte, error) {
	elems, err := arr.Read(ref)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(elems))
	for i, b := range elems {
		out[i] = byte(b)
	}
	return out, nil
}
