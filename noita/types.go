// Package noita is the domain-model layer: entities, component
// stores, tag/translation/mod managers, and the cell factory,
// reconstructed from a connected process through the typed-memory
// descriptors in package remote.
package noita

// Vec2 is a 2D single-precision point, the engine's common position
// and size type.
type Vec2 struct {
	X, Y float32
}

// Pod marks Vec2 as fixed-layout.
func (Vec2) Pod() {}

// Vec2i is the integer counterpart of Vec2, used for grid coordinates.
type Vec2i struct {
	X, Y int32
}

// Pod marks Vec2i as fixed-layout.
func (Vec2i) Pod() {}

// EntityTransform is an entity's spatial state: position plus three
// derived rotation/scale vectors the engine caches alongside it.
type EntityTransform struct {
	Pos, Rot, Rot90, Scale Vec2
}

// Pod marks EntityTransform as fixed-layout.
func (EntityTransform) Pod() {}
