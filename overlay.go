package easel

// Guide is a straight alignment cue in world coordinates, emitted while a
// dragged node's center lines up with its parent's center.
type Guide struct {
	From Vec2
	To   Vec2
}

// Overlay is renderer-independent overlay geometry a tool wants drawn on
// top of the scene this frame: a marquee rectangle, an in-progress shape
// outline, or a dimension label. Hosts translate these into whatever their
// renderer draws with.
type Overlay struct {
	Rects  []OverlayRect
	Labels []OverlayLabel
}

// OverlayRect is a rectangle outline in world coordinates.
type OverlayRect struct {
	Bounds Rect
	// Dashed marks marquee-style rectangles.
	Dashed bool
}

// OverlayLabel is a text label anchored at a world point, such as the live
// "W × H" readout under a shape being drawn.
type OverlayLabel struct {
	At   Vec2
	Text string
}

// Empty reports whether the overlay has nothing to draw.
func (o Overlay) Empty() bool {
	return len(o.Rects) == 0 && len(o.Labels) == 0
}
