package easel

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle in a node's parent-local coordinate
// space. The origin is at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
// Edge contact still counts as inside.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// RectFromPoints returns the normalized rectangle spanned by two corner
// points, in any relative order.
func RectFromPoints(a, b Vec2) Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyModifiers is a bitmask of held modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether all bits in mod are set.
func (m KeyModifiers) Has(mod KeyModifiers) bool { return m&mod == mod }

// Key identifies the non-modifier keys the core reacts to. Hosts translate
// their platform key codes into these; anything else maps to KeyOther and is
// ignored.
type Key uint8

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
	KeyDelete
	KeyBackspace
	KeySpace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
)

// Cursor is the pointer cursor the host should display.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorCrosshair
	CursorText
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
)

// NodeKind is the kind of scene node a creation gesture produces.
type NodeKind uint8

const (
	NodeRectangle NodeKind = iota
	NodeEllipse
	NodeText
	NodeFrame
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeRectangle:
		return "rectangle"
	case NodeEllipse:
		return "ellipse"
	case NodeText:
		return "text"
	case NodeFrame:
		return "frame"
	}
	return "unknown"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
