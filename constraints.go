package easel

import (
	"math"
	"strings"
)

// ConstraintAxis is a per-axis rule governing how a child's position and
// size respond when its container is resized.
type ConstraintAxis uint8

const (
	// ConstraintMin pins the child to the start edge (left/top).
	ConstraintMin ConstraintAxis = iota
	// ConstraintMax pins the child to the end edge (right/bottom).
	ConstraintMax
	// ConstraintCenter keeps the child center at the same fractional
	// position of the parent dimension.
	ConstraintCenter
	// ConstraintStretch pins both edges, stretching the child.
	ConstraintStretch
	// ConstraintScale scales both offset and size with the parent.
	ConstraintScale
)

// String returns the canonical constraint name.
func (c ConstraintAxis) String() string {
	switch c {
	case ConstraintMax:
		return "max"
	case ConstraintCenter:
		return "center"
	case ConstraintStretch:
		return "stretch"
	case ConstraintScale:
		return "scale"
	}
	return "min"
}

// ParseConstraint maps a host constraint value to a ConstraintAxis. The
// match is case-insensitive and accepts the per-edge aliases LEFT/TOP,
// RIGHT/BOTTOM, and LEFT_RIGHT/TOP_BOTTOM. Anything unrecognized defaults
// to ConstraintMin.
func ParseConstraint(s string) ConstraintAxis {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RIGHT", "BOTTOM", "MAX":
		return ConstraintMax
	case "CENTER":
		return ConstraintCenter
	case "LEFT_RIGHT", "TOP_BOTTOM", "STRETCH":
		return ConstraintStretch
	case "SCALE":
		return ConstraintScale
	}
	return ConstraintMin
}

// Constraints is a node's resize behavior on each axis.
type Constraints struct {
	Horizontal ConstraintAxis
	Vertical   ConstraintAxis
}

// ConstraintReference is the captured geometry a child's constraints replay
// against: edge distances to each parent edge plus the child's and parent's
// bounds at capture time. A reference is immutable once captured and is
// replayed against any later parent bounds, so repeated resizes resolve
// from the same snapshot instead of accumulating floating-point drift.
// Recapture (a new value) is the only way to refresh one.
type ConstraintReference struct {
	Left, Right float64
	Top, Bottom float64
	Node        Rect
	Parent      Rect
	Constraints Constraints
}

// CaptureReference snapshots a child/parent bounds pair.
func CaptureReference(node, parent Rect, c Constraints) ConstraintReference {
	return ConstraintReference{
		Left:        node.X,
		Right:       parent.Width - (node.X + node.Width),
		Top:         node.Y,
		Bottom:      parent.Height - (node.Y + node.Height),
		Node:        node,
		Parent:      parent,
		Constraints: c,
	}
}

// resolveAxis computes the new offset and size on one axis.
func resolveAxis(c ConstraintAxis, start, end, offset, size, oldDim, newDim, minSize float64) (float64, float64) {
	switch c {
	case ConstraintMax:
		return newDim - end - size, size
	case ConstraintCenter:
		if oldDim == 0 {
			return offset, size
		}
		ratio := (offset + size/2) / oldDim
		return ratio*newDim - size/2, size
	case ConstraintStretch:
		return start, math.Max(minSize, newDim-start-end)
	case ConstraintScale:
		if oldDim == 0 {
			return offset, size
		}
		f := newDim / oldDim
		return offset * f, math.Max(minSize, size*f)
	}
	// ConstraintMin
	return start, size
}

// Resolve replays the reference against new parent bounds, returning the
// child's new parent-local bounds.
func (r ConstraintReference) Resolve(parent Rect) Rect {
	x, w := resolveAxis(r.Constraints.Horizontal,
		r.Left, r.Right, r.Node.X, r.Node.Width,
		r.Parent.Width, parent.Width, 1)
	y, h := resolveAxis(r.Constraints.Vertical,
		r.Top, r.Bottom, r.Node.Y, r.Node.Height,
		r.Parent.Height, parent.Height, 1)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Engine propagates a container resize through its children according to
// each child's per-axis constraints, recursing into nested containers so a
// deeply nested grandchild is still resolved relative to its own immediate
// parent. Construct one per editing session; references captured for one
// document must not leak into another.
type Engine struct {
	acc  Accessor
	refs map[NodeID]ConstraintReference
}

// NewEngine creates a constraints engine reading through acc.
func NewEngine(acc Accessor) *Engine {
	return &Engine{acc: acc, refs: make(map[NodeID]ConstraintReference)}
}

// Invalidate drops the captured reference for a node so the next resize
// recaptures it from current geometry. Call after committing a move or
// resize of the node itself.
func (e *Engine) Invalidate(id NodeID) {
	delete(e.refs, id)
}

// Reset drops every captured reference.
func (e *Engine) Reset() {
	e.refs = make(map[NodeID]ConstraintReference)
}

// reference returns the captured reference for child, capturing one against
// parentOld on first sight.
func (e *Engine) reference(child NodeID, childBounds, parentOld Rect) ConstraintReference {
	if ref, ok := e.refs[child]; ok {
		return ref
	}
	ref := CaptureReference(childBounds, parentOld, e.acc.NodeConstraints(child))
	e.refs[child] = ref
	return ref
}

// ResizeChildren computes the child updates caused by a parent's bounds
// changing from one bounds to another, recursively. The returned actions carry each
// affected descendant's new parent-local bounds; a missing child degrades
// to a no-op for that child only. Children owned by an active auto-layout
// parent (and not absolutely positioned) are skipped: they belong to the
// layout engine.
func (e *Engine) ResizeChildren(parent NodeID, from, to Rect) []Action {
	var out []Action
	return e.resize(parent, from, to, out)
}

func (e *Engine) resize(parent NodeID, from, to Rect, out []Action) []Action {
	if from.Width == to.Width && from.Height == to.Height {
		return out
	}
	parentAuto := e.acc.NodeLayout(parent).AutoLayout
	for _, child := range e.acc.NodeChildren(parent) {
		if parentAuto && !e.acc.NodeLayout(child).Absolute {
			continue
		}
		bounds, ok := e.acc.NodeBounds(child)
		if !ok {
			continue
		}
		ref := e.reference(child, bounds, from)
		next := ref.Resolve(to)
		out = append(out, SetNodeBounds{ID: child, Bounds: next})
		if len(e.acc.NodeChildren(child)) > 0 {
			out = e.resize(child, bounds, next, out)
		}
	}
	return out
}
