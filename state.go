package easel

// interactionState is the closed set of gesture states. Exactly one variant
// is active at a time; each carries only the context its gesture needs, so
// stale fields from a previous gesture cannot leak into the next one.
type interactionState interface {
	stateName() string
}

// idleState: no gesture in progress.
type idleState struct{}

// selectingState: pointer is down on a node (or empty canvas for the
// marquee variant) but has not yet crossed the drag threshold.
type selectingState struct {
	startClient Vec2
	startWorld  Vec2
	target      NodeID // zero for the marquee variant
	marquee     bool
	additive    bool     // multi-select modifier held at press
	prev        []NodeID // pre-gesture selection snapshot
	rect        Rect     // current marquee rectangle (world)
}

// draggingState: the selection is being moved. origins holds each node's
// pre-gesture parent-local bounds; delta is the live shared offset after
// snapping.
type draggingState struct {
	startWorld Vec2
	ids        []NodeID
	origins    map[NodeID]Rect
	delta      Vec2
	guides     bool // guides currently shown
}

// resizingState: a single selected node is being resized by one handle.
type resizingState struct {
	id         NodeID
	handle     Handle
	orig       Rect
	startWorld Vec2
	current    Rect
}

// panningState: the view offset follows the pointer.
type panningState struct {
	startClient Vec2
	startOffset Vec2
	viaKey      bool // started while the pan key was held (ends on its release)
}

// creatingState: a shape or text node is being drawn in.
type creatingState struct {
	kind        NodeKind
	id          NodeID
	parent      NodeID
	parentWorld Vec2 // world origin of the parent, for world→local conversion
	startWorld  Vec2
	curWorld    Vec2
	local       Rect // live bounds in the parent's local space
	world       Rect // same bounds in world space, for overlays
}

// textEditingState: inline text editing is open on a node.
type textEditingState struct {
	id       NodeID
	original string // pre-edit content, restored on Escape
}

func (idleState) stateName() string        { return "idle" }
func (selectingState) stateName() string   { return "selecting" }
func (draggingState) stateName() string    { return "dragging" }
func (resizingState) stateName() string    { return "resizing" }
func (panningState) stateName() string     { return "panning" }
func (creatingState) stateName() string    { return "creating" }
func (textEditingState) stateName() string { return "textEditing" }
