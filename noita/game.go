package noita

import (
	"github.com/necauqua/noita-memreader/noita/cellfactory"
	"github.com/necauqua/noita-memreader/remote"
)

// CameraBounds is the world-space rectangle the camera is currently
// clamped to; the engine stores it at the end of a very large,
// otherwise-uninterpreted struct.
type CameraBounds struct {
	_    [294 * 4]byte
	X, Y int32
	W, H int32
}

// Pod marks CameraBounds as fixed-layout.
func (CameraBounds) Pod() {}

// GameCamera is the active camera's viewport rectangle plus a pointer
// to its current bounds.
type GameCamera struct {
	X1, Y1, X2, Y2 float32
	_              [13 * 4]byte
	Bounds         remote.Ptr[CameraBounds]
}

// Pod marks GameCamera as fixed-layout.
func (GameCamera) Pod() {}

// Pos returns the camera's center, mirroring the engine's own
// GameGetCameraPos computation.
func (c GameCamera) Pos() Vec2 {
	return Vec2{X: c.X2*0.5 + c.X1, Y: c.Y2*0.5 + c.Y1}
}

// GameGlobal is the engine's root per-run singleton: frame counter,
// camera, cell factory and a handful of other pointers the domain
// model cares about, with the large uninterpreted gaps between them
// declared as explicit padding.
type GameGlobal struct {
	FrameCounter uint32
	_            [2 * 4]byte
	Camera       remote.Ptr[GameCamera]
	_            [2 * 4]byte
	CellFactory  remote.Ptr[cellfactory.CellFactory]
	_            [11 * 4]byte
	PauseFlags   remote.Ptr[remote.U32]
	_            [5 * 4]byte
	InventoryOpen uint32
	_            [79 * 4]byte
}

// Pod marks GameGlobal as fixed-layout.
func (GameGlobal) Pod() {}
