package easel

// NodeID identifies a scene node in the host's scene graph. The zero value
// means "no node".
type NodeID string

// Layout describes how a node participates in the host's auto-layout
// (flex-like) computation. The constraints engine skips children that are
// owned by an active auto-layout parent unless they opt out with absolute
// positioning.
type Layout struct {
	// AutoLayout is true when this node lays out its own children
	// automatically.
	AutoLayout bool
	// Absolute is true when this node ignores its parent's auto-layout and
	// positions itself absolutely.
	Absolute bool
}

// Accessor is the read-only window through which the core observes the
// host's scene graph and view state. It is the only input channel besides
// raw events; all effects flow back out as [Action] values.
//
// Implementations are queried synchronously during event processing and
// must be cheap. A missing node is reported with ok == false and degrades
// the affected operation to a no-op; it never aborts a gesture.
type Accessor interface {
	// WorldPoint converts client (window pixel) coordinates to world
	// coordinates.
	WorldPoint(client Vec2) Vec2
	// ScreenPoint converts client coordinates to screen (canvas pixel)
	// coordinates.
	ScreenPoint(client Vec2) Vec2
	// ViewScale returns the current zoom scale.
	ViewScale() float64
	// ViewOffset returns the current pan offset in screen pixels.
	ViewOffset() Vec2

	// Selection returns the currently selected node ids in selection order.
	Selection() []NodeID

	// NodeAt returns the topmost node at a world point.
	NodeAt(world Vec2) (NodeID, bool)
	// RootFrameAt returns the root frame containing a world point, used as
	// the parenting fallback for shape creation.
	RootFrameAt(world Vec2) (NodeID, bool)
	// HandleAt returns the resize handle of the given selected node at a
	// screen point, if any. hitSize is the machine's configured grip side in
	// screen pixels ([Options.HandleHitSize]). Hosts can build this from
	// [HandleAt].
	HandleAt(screen Vec2, id NodeID, hitSize float64) (Handle, bool)
	// AffordanceAt returns the host-defined interaction affordance (a
	// comment pin, a prototype arrow, ...) at a screen point. Hosts without
	// affordances return ok == false.
	AffordanceAt(screen Vec2) (string, bool)

	// NodeBounds returns a node's bounds in its parent's local space.
	NodeBounds(id NodeID) (Rect, bool)
	// NodeWorldBounds returns a node's bounds in world space.
	NodeWorldBounds(id NodeID) (Rect, bool)
	// NodeParent returns a node's parent id, or ok == false for roots and
	// unknown nodes.
	NodeParent(id NodeID) (NodeID, bool)
	// NodeChildren returns a node's direct children in paint order.
	NodeChildren(id NodeID) []NodeID
	// NodeConstraints returns a node's per-axis resize constraints.
	NodeConstraints(id NodeID) Constraints
	// NodeLayout returns a node's auto-layout participation.
	NodeLayout(id NodeID) Layout
	// NodeText returns a text node's content, used to snapshot the pre-edit
	// text when entering text editing.
	NodeText(id NodeID) string
	// VisibleNodes returns every node eligible for marquee selection.
	VisibleNodes() []NodeID

	// SnapDelta adjusts a candidate drag delta for the given node with any
	// alignment snapping the host performs, returning the adjusted delta and
	// the guides to display. threshold is the machine's configured snap
	// range in screen pixels ([Options.SnapThreshold]); hosts divide by the
	// view scale for world-unit checks. [SnapToParentCenter] is the stock
	// implementation.
	SnapDelta(id NodeID, delta Vec2, threshold float64) (Vec2, []Guide)
}
