package components

// Vec2 mirrors noita.Vec2; kept local to avoid components importing
// noita while noita imports components for the component catalog.
type Vec2 struct{ X, Y float32 }

// Pod marks Vec2 as fixed-layout.
func (Vec2) Pod() {}

// Vec2i mirrors noita.Vec2i.
type Vec2i struct{ X, Y int32 }

// Pod marks Vec2i as fixed-layout.
func (Vec2i) Pod() {}
