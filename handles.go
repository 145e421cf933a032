package easel

import "math"

// Handle identifies one of the eight resize grips on a selected node's
// bounding box.
type Handle uint8

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

// String returns the compass name of the handle.
func (h Handle) String() string {
	switch h {
	case HandleN:
		return "n"
	case HandleS:
		return "s"
	case HandleE:
		return "e"
	case HandleW:
		return "w"
	case HandleNE:
		return "ne"
	case HandleNW:
		return "nw"
	case HandleSE:
		return "se"
	case HandleSW:
		return "sw"
	}
	return "none"
}

// movesLeft reports whether dragging the handle moves the left edge.
func (h Handle) movesLeft() bool {
	return h == HandleW || h == HandleNW || h == HandleSW
}

// movesRight reports whether dragging the handle moves the right edge.
func (h Handle) movesRight() bool {
	return h == HandleE || h == HandleNE || h == HandleSE
}

// movesTop reports whether dragging the handle moves the top edge.
func (h Handle) movesTop() bool {
	return h == HandleN || h == HandleNE || h == HandleNW
}

// movesBottom reports whether dragging the handle moves the bottom edge.
func (h Handle) movesBottom() bool {
	return h == HandleS || h == HandleSE || h == HandleSW
}

// corner reports whether the handle moves two edges at once.
func (h Handle) corner() bool {
	switch h {
	case HandleNE, HandleNW, HandleSE, HandleSW:
		return true
	}
	return false
}

// HandleCursor returns the resize cursor for a handle.
func HandleCursor(h Handle) Cursor {
	switch h {
	case HandleN, HandleS:
		return CursorResizeNS
	case HandleE, HandleW:
		return CursorResizeEW
	case HandleNE, HandleSW:
		return CursorResizeNESW
	case HandleNW, HandleSE:
		return CursorResizeNWSE
	}
	return CursorDefault
}

// handleOrder is the hit-test priority: corners win over edges so a press
// near a corner always grabs both axes.
var handleOrder = [8]Handle{
	HandleNW, HandleNE, HandleSW, HandleSE,
	HandleN, HandleS, HandleW, HandleE,
}

// HandlePosition returns the center of a handle on the given bounds.
func HandlePosition(bounds Rect, h Handle) Vec2 {
	cx := bounds.X + bounds.Width/2
	cy := bounds.Y + bounds.Height/2
	switch h {
	case HandleN:
		return Vec2{cx, bounds.Y}
	case HandleS:
		return Vec2{cx, bounds.Y + bounds.Height}
	case HandleW:
		return Vec2{bounds.X, cy}
	case HandleE:
		return Vec2{bounds.X + bounds.Width, cy}
	case HandleNW:
		return Vec2{bounds.X, bounds.Y}
	case HandleNE:
		return Vec2{bounds.X + bounds.Width, bounds.Y}
	case HandleSW:
		return Vec2{bounds.X, bounds.Y + bounds.Height}
	case HandleSE:
		return Vec2{bounds.X + bounds.Width, bounds.Y + bounds.Height}
	}
	return bounds.Center()
}

// HandleAt returns the handle whose grip square (hitSize pixels on a side,
// in the same space as bounds) contains p. Hosts typically call this with
// screen-space bounds to implement [Accessor.HandleAt].
func HandleAt(bounds Rect, p Vec2, hitSize float64) (Handle, bool) {
	half := hitSize / 2
	for _, h := range handleOrder {
		c := HandlePosition(bounds, h)
		if math.Abs(p.X-c.X) <= half && math.Abs(p.Y-c.Y) <= half {
			return h, true
		}
	}
	return HandleNone, false
}

// resizeRect recomputes candidate bounds from the original bounds, the
// active handle, and the pointer delta in world units. Edges touched by the
// handle move independently; corner handles move two edges. aspect keeps
// the original aspect ratio; fromCenter resizes about the fixed center
// instead of the fixed opposite edge. Width and height are floored at
// minSize and never go negative.
func resizeRect(orig Rect, h Handle, delta Vec2, minSize float64, aspect, fromCenter bool) Rect {
	left := orig.X
	top := orig.Y
	right := orig.X + orig.Width
	bottom := orig.Y + orig.Height

	if h.movesLeft() {
		left += delta.X
	}
	if h.movesRight() {
		right += delta.X
	}
	if h.movesTop() {
		top += delta.Y
	}
	if h.movesBottom() {
		bottom += delta.Y
	}

	if fromCenter {
		// Mirror the moved edges about the original center.
		cx := orig.X + orig.Width/2
		cy := orig.Y + orig.Height/2
		if h.movesLeft() {
			right = 2*cx - left
		} else if h.movesRight() {
			left = 2*cx - right
		}
		if h.movesTop() {
			bottom = 2*cy - top
		} else if h.movesBottom() {
			top = 2*cy - bottom
		}
	}

	w := right - left
	hgt := bottom - top

	if aspect && orig.Width > 0 && orig.Height > 0 && h.corner() {
		ratio := orig.Width / orig.Height
		// Follow the dominant axis of the gesture.
		if math.Abs(w)/orig.Width >= math.Abs(hgt)/orig.Height {
			hgt = math.Copysign(math.Abs(w)/ratio, hgt)
		} else {
			w = math.Copysign(math.Abs(hgt)*ratio, w)
		}
		if h.movesLeft() {
			left = right - w
		} else {
			right = left + w
		}
		if h.movesTop() {
			top = bottom - hgt
		} else {
			bottom = top + hgt
		}
	}

	// Normalize a crossed-over rectangle, then enforce the size floor by
	// growing away from the anchored side.
	x := math.Min(left, right)
	y := math.Min(top, bottom)
	w = math.Abs(right - left)
	hgt = math.Abs(bottom - top)

	if w < minSize {
		if h.movesLeft() && !fromCenter {
			x = orig.X + orig.Width - minSize
		}
		w = minSize
	}
	if hgt < minSize {
		if h.movesTop() && !fromCenter {
			y = orig.Y + orig.Height - minSize
		}
		hgt = minSize
	}
	return Rect{X: x, Y: y, Width: w, Height: hgt}
}
