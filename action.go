package easel

// Action is one typed scene-edit intent in the ordered list the core emits
// for an input event. Actions are the only channel of effect: the core never
// mutates the scene graph or view state itself. Hosts apply each action in
// order to their own state.
//
// Preview actions (MovePreview, ResizePreview) describe transient geometry
// for drawing only; a gesture that previews always ends with exactly one
// finalize action on success, or a revert on cancellation.
type Action interface {
	isAction()
}

// SetSelection replaces the selection with IDs (empty clears it).
type SetSelection struct {
	IDs []NodeID
}

// SelectAffordance reports a click on a host-defined interaction
// affordance. The pointer stays idle; the host decides what selecting the
// affordance means.
type SelectAffordance struct {
	ID string
}

// SetHover updates the hovered node id. A zero ID clears the hover.
type SetHover struct {
	ID NodeID
}

// SetCursor updates the pointer cursor.
type SetCursor struct {
	Cursor Cursor
}

// MovePreview offsets every node in IDs by the same Delta (world units) for
// drawing. It does not commit geometry.
type MovePreview struct {
	IDs   []NodeID
	Delta Vec2
}

// Placement pairs a node with its final parent-local bounds.
type Placement struct {
	ID     NodeID
	Bounds Rect
}

// FinalizeMove commits a completed drag: every moved node with its final
// bounds, plus the shared delta that produced them. Emitted exactly once
// per successful drag.
type FinalizeMove struct {
	Delta Vec2
	Nodes []Placement
}

// ResizePreview shows candidate bounds for the node being resized.
type ResizePreview struct {
	ID     NodeID
	Bounds Rect
}

// FinalizeResize commits a completed resize with the node's final bounds.
type FinalizeResize struct {
	ID     NodeID
	Bounds Rect
}

// SetNodeBounds updates one node's parent-local bounds directly. Used by
// gesture reverts and by the constraints engine's child updates.
type SetNodeBounds struct {
	ID     NodeID
	Bounds Rect
}

// SetView updates the pan offset (screen pixels) and zoom scale together.
type SetView struct {
	Offset Vec2
	Scale  float64
}

// CreateNode asks the host to create a node. The core allocates ID so it
// can reference the node for the rest of the gesture; hosts must register
// the node under that id.
type CreateNode struct {
	ID     NodeID
	Kind   NodeKind
	Parent NodeID
	Bounds Rect
	Text   string
}

// FinalizeCreate commits a previously created node at its final bounds and
// ends the creation gesture.
type FinalizeCreate struct {
	ID     NodeID
	Bounds Rect
}

// DeleteNodes removes the given nodes from the scene.
type DeleteNodes struct {
	IDs []NodeID
}

// BeginTextEdit asks the host to open inline text editing on a node.
type BeginTextEdit struct {
	ID NodeID
}

// EndTextEdit closes inline text editing.
type EndTextEdit struct {
	ID NodeID
}

// SetNodeText replaces a text node's content. Emitted on Escape to restore
// the pre-edit snapshot.
type SetNodeText struct {
	ID   NodeID
	Text string
}

// SetGuides replaces the displayed alignment guides.
type SetGuides struct {
	Guides []Guide
}

// ClearGuides removes all alignment guides.
type ClearGuides struct{}

// Redraw requests a repaint. Emitted whenever an event changed anything
// visible.
type Redraw struct{}

func (SetSelection) isAction()     {}
func (SelectAffordance) isAction() {}
func (SetHover) isAction()         {}
func (SetCursor) isAction()        {}
func (MovePreview) isAction()      {}
func (FinalizeMove) isAction()     {}
func (ResizePreview) isAction()    {}
func (FinalizeResize) isAction()   {}
func (SetNodeBounds) isAction()    {}
func (SetView) isAction()          {}
func (CreateNode) isAction()       {}
func (FinalizeCreate) isAction()   {}
func (DeleteNodes) isAction()      {}
func (BeginTextEdit) isAction()    {}
func (EndTextEdit) isAction()      {}
func (SetNodeText) isAction()      {}
func (SetGuides) isAction()        {}
func (ClearGuides) isAction()      {}
func (Redraw) isAction()           {}
