package easel

import (
	"fmt"
	"math"
)

// Defaults for Options fields left at their zero value.
const (
	defaultDragThreshold   = 3.0    // screen px before a press becomes a drag
	defaultSnapThreshold   = 8.0    // screen px within which centers snap
	defaultHandleHitSize   = 8.0    // screen px side of a resize grip
	defaultMinNodeSize     = 1.0    // world units, resize floor
	defaultMinCreateSize   = 10.0   // world units, draw-in floor
	defaultNudgeStep       = 1.0    // world units per arrow key
	defaultNudgeStepLarge  = 10.0   // world units per shift+arrow
	defaultZoomMin         = 0.05
	defaultZoomMax         = 20.0
	defaultZoomSensitivity = 0.0012 // k in scale' = scale·e^(−Δy·k)
)

// Options configures a Machine. The zero value of every field selects the
// documented default.
type Options struct {
	DragThreshold   float64
	SnapThreshold   float64
	HandleHitSize   float64
	MinNodeSize     float64
	MinCreateSize   float64
	NudgeStep       float64
	NudgeStepLarge  float64
	ZoomMin         float64
	ZoomMax         float64
	ZoomSensitivity float64
}

func (o Options) withDefaults() Options {
	if o.DragThreshold <= 0 {
		o.DragThreshold = defaultDragThreshold
	}
	if o.SnapThreshold <= 0 {
		o.SnapThreshold = defaultSnapThreshold
	}
	if o.HandleHitSize <= 0 {
		o.HandleHitSize = defaultHandleHitSize
	}
	if o.MinNodeSize <= 0 {
		o.MinNodeSize = defaultMinNodeSize
	}
	if o.MinCreateSize <= 0 {
		o.MinCreateSize = defaultMinCreateSize
	}
	if o.NudgeStep <= 0 {
		o.NudgeStep = defaultNudgeStep
	}
	if o.NudgeStepLarge <= 0 {
		o.NudgeStepLarge = defaultNudgeStepLarge
	}
	if o.ZoomMin <= 0 {
		o.ZoomMin = defaultZoomMin
	}
	if o.ZoomMax <= 0 {
		o.ZoomMax = defaultZoomMax
	}
	if o.ZoomSensitivity <= 0 {
		o.ZoomSensitivity = defaultZoomSensitivity
	}
	return o
}

// Machine is the authoritative interaction state machine. Feed it raw
// pointer, key, and wheel events; it returns the ordered action list the
// host applies. Every (state, event) pair has a defined transition,
// including "ignore and stay": no event leaves the machine in an undefined
// state, and no error value ever crosses back to the host.
//
// A Machine is owned by a single editing session and is not safe for
// concurrent use; the host's event loop drives it one event at a time.
type Machine struct {
	acc   Accessor
	opts  Options
	tools *Manager
	state interactionState

	panKeyHeld bool
	hover      NodeID
	cursor     Cursor
	nextID     int
}

// NewMachine creates a machine reading the host scene through acc, with the
// five standard tools registered and Select active.
func NewMachine(acc Accessor, opts Options) *Machine {
	if acc == nil {
		panic("easel: NewMachine requires a non-nil Accessor")
	}
	m := &Machine{
		acc:   acc,
		opts:  opts.withDefaults(),
		state: idleState{},
	}
	m.tools = newManager(m)
	return m
}

// Tools returns the machine's tool manager.
func (m *Machine) Tools() *Manager { return m.tools }

// StateName returns the active state's name: idle, selecting, dragging,
// resizing, panning, creating, or textEditing. Intended for hosts and tests.
func (m *Machine) StateName() string { return m.state.stateName() }

// Idle reports whether no gesture is in progress.
func (m *Machine) Idle() bool {
	_, ok := m.state.(idleState)
	return ok
}

// Overlay returns the overlay geometry to draw this frame: the live marquee
// plus whatever the active tool renders.
func (m *Machine) Overlay() Overlay {
	var o Overlay
	if st, ok := m.state.(selectingState); ok && st.marquee {
		o.Rects = append(o.Rects, OverlayRect{Bounds: st.rect, Dashed: true})
	}
	if ot, ok := m.tools.Active().(OverlayTool); ok {
		to := ot.RenderOverlay()
		o.Rects = append(o.Rects, to.Rects...)
		o.Labels = append(o.Labels, to.Labels...)
	}
	return o
}

// newNodeID allocates an id for a node the core asks the host to create.
func (m *Machine) newNodeID() NodeID {
	m.nextID++
	return NodeID(fmt.Sprintf("easel-%d", m.nextID))
}

// --- Event entry points ---

// PointerDown processes a pointer press.
func (m *Machine) PointerDown(ev PointerEvent) []Action {
	switch st := m.state.(type) {
	case idleState:
		// Pan trigger wins over every tool: pan button or pan key held.
		if ev.Button == MouseButtonMiddle || m.panKeyHeld {
			return m.beginPan(ev, m.panKeyHeld && ev.Button != MouseButtonMiddle)
		}
		return m.tools.pointerDown(ev)
	case textEditingState:
		if b, ok := m.acc.NodeWorldBounds(st.id); ok {
			w := m.acc.WorldPoint(ev.Client)
			if b.Contains(w.X, w.Y) {
				// Press inside the edited node: the host's editor owns it.
				return nil
			}
		}
		// Press outside exits editing; the event is then re-dispatched as
		// if it had arrived in idle.
		out := []Action{EndTextEdit{ID: st.id}}
		m.state = idleState{}
		return append(out, m.PointerDown(ev)...)
	}
	// A second press mid-gesture: ignore and stay.
	return nil
}

// PointerMove processes a pointer move.
func (m *Machine) PointerMove(ev PointerEvent) []Action {
	switch st := m.state.(type) {
	case idleState, textEditingState:
		return m.tools.pointerMove(ev)
	case selectingState:
		return m.selectingMove(st, ev)
	case draggingState:
		return m.draggingMove(st, ev)
	case resizingState:
		return m.resizingMove(st, ev)
	case panningState:
		return m.panningMove(st, ev)
	case creatingState:
		return m.creatingMove(st, ev)
	}
	return nil
}

// PointerUp processes a pointer release.
func (m *Machine) PointerUp(ev PointerEvent) []Action {
	switch st := m.state.(type) {
	case idleState, textEditingState:
		return m.tools.pointerUp(ev)
	case selectingState:
		m.state = idleState{}
		return m.selectingUp(st, ev)
	case draggingState:
		m.state = idleState{}
		return m.finishDrag(st)
	case resizingState:
		m.state = idleState{}
		return []Action{FinalizeResize{ID: st.id, Bounds: st.current}, Redraw{}}
	case panningState:
		m.state = idleState{}
		return m.setCursor(m.tools.idleCursor())
	case creatingState:
		m.state = idleState{}
		return []Action{
			FinalizeCreate{ID: st.id, Bounds: st.local},
			SetSelection{IDs: []NodeID{st.id}},
			Redraw{},
		}
	}
	return nil
}

// KeyDown processes a key press. Escape cancels the active gesture
// synchronously and totally; the pan key arms click-drag panning. Tool key
// bindings fire only from idle: mid-gesture keys are swallowed, and in
// textEditing every non-Escape key belongs to the host's inline editor.
func (m *Machine) KeyDown(ev KeyEvent) []Action {
	if ev.Key == KeySpace {
		m.panKeyHeld = true
	}
	if ev.Key == KeyEscape {
		if out, handled := m.cancelGesture(); handled {
			return out
		}
	}
	if !m.Idle() {
		return nil
	}
	return m.tools.keyDown(ev)
}

// KeyUp processes a key release. Releasing the pan key ends a pan that was
// started with it; otherwise the release reaches the tool only from idle.
func (m *Machine) KeyUp(ev KeyEvent) []Action {
	if ev.Key == KeySpace {
		m.panKeyHeld = false
		if st, ok := m.state.(panningState); ok && st.viaKey {
			m.state = idleState{}
			return m.setCursor(m.tools.idleCursor())
		}
	}
	if !m.Idle() {
		return nil
	}
	return m.tools.keyUp(ev)
}

// Wheel processes a scroll event. It works in every state: with the zoom
// modifier held the scale changes exponentially with the vertical delta
// while the world point under the cursor stays fixed; otherwise the deltas
// pan the offset directly. The active tool may claim the event first (the
// hand tool repurposes wheel for panning).
func (m *Machine) Wheel(ev WheelEvent) []Action {
	if wt, ok := m.tools.Active().(WheelTool); ok {
		if out, handled := wt.Wheel(ev); handled {
			return out
		}
	}
	scale := m.acc.ViewScale()
	offset := m.acc.ViewOffset()
	if ev.Modifiers.Has(ModCtrl) || ev.Modifiers.Has(ModMeta) {
		next := clamp(scale*math.Exp(-ev.DeltaY*m.opts.ZoomSensitivity),
			m.opts.ZoomMin, m.opts.ZoomMax)
		if next == scale {
			return nil
		}
		// Keep the world point under the cursor visually fixed.
		screen := m.acc.ScreenPoint(ev.Client)
		world := screen.Sub(offset).Scale(1 / scale)
		return []Action{
			SetView{Offset: screen.Sub(world.Scale(next)), Scale: next},
			Redraw{},
		}
	}
	return []Action{
		SetView{Offset: offset.Sub(Vec2{ev.DeltaX, ev.DeltaY}), Scale: scale},
		Redraw{},
	}
}

// --- Gesture starts (called by tools) ---

// beginPan enters the panning state.
func (m *Machine) beginPan(ev PointerEvent, viaKey bool) []Action {
	m.state = panningState{
		startClient: ev.Client,
		startOffset: m.acc.ViewOffset(),
		viaKey:      viaKey,
	}
	return m.setCursor(CursorGrabbing)
}

// beginCreate enters the creating state and immediately asks the host to
// create a node with default geometry (or content) at the click point.
func (m *Machine) beginCreate(kind NodeKind, ev PointerEvent) []Action {
	world := m.acc.WorldPoint(ev.Client)

	parent, ok := m.acc.NodeAt(world)
	if !ok {
		parent, ok = m.acc.RootFrameAt(world)
	}
	var parentWorld Vec2
	if ok {
		if pb, has := m.acc.NodeWorldBounds(parent); has {
			parentWorld = Vec2{pb.X, pb.Y}
		} else {
			parent = ""
		}
	} else {
		parent = ""
	}

	st := creatingState{
		kind:        kind,
		id:          m.newNodeID(),
		parent:      parent,
		parentWorld: parentWorld,
		startWorld:  world,
		curWorld:    world,
	}
	var text string
	if kind == NodeText {
		st.world = Rect{X: world.X, Y: world.Y, Width: defaultTextWidth, Height: defaultTextHeight}
		text = defaultTextContent
	} else {
		st.world = m.createBounds(st, ev.Modifiers.Has(ModShift))
	}
	st.local = st.world.Translate(Vec2{}.Sub(st.parentWorld))
	m.state = st
	return []Action{
		CreateNode{ID: st.id, Kind: kind, Parent: parent, Bounds: st.local, Text: text},
		Redraw{},
	}
}

// createBounds computes the in-progress bounds (world space) from the
// gesture's start and current points, flooring both dimensions and
// optionally constraining to a square under shift.
func (m *Machine) createBounds(st creatingState, square bool) Rect {
	r := RectFromPoints(st.startWorld, st.curWorld)
	if square {
		side := math.Max(r.Width, r.Height)
		// Grow toward the current pointer quadrant.
		if st.curWorld.X < st.startWorld.X {
			r.X = st.startWorld.X - side
		} else {
			r.X = st.startWorld.X
		}
		if st.curWorld.Y < st.startWorld.Y {
			r.Y = st.startWorld.Y - side
		} else {
			r.Y = st.startWorld.Y
		}
		r.Width = side
		r.Height = side
	}
	if r.Width < m.opts.MinCreateSize {
		r.Width = m.opts.MinCreateSize
	}
	if r.Height < m.opts.MinCreateSize {
		r.Height = m.opts.MinCreateSize
	}
	return r
}

// selectPointerDown runs the idle dispatch for the select tool, in priority
// order: affordance hit, resize handle (single selection), double-click
// text editing, node hit, then marquee.
func (m *Machine) selectPointerDown(ev PointerEvent) []Action {
	screen := m.acc.ScreenPoint(ev.Client)
	world := m.acc.WorldPoint(ev.Client)
	additive := ev.Modifiers.Has(ModShift)

	if id, ok := m.acc.AffordanceAt(screen); ok {
		return []Action{SelectAffordance{ID: id}, Redraw{}}
	}

	sel := m.acc.Selection()
	if len(sel) == 1 {
		if h, ok := m.acc.HandleAt(screen, sel[0], m.opts.HandleHitSize); ok {
			if orig, has := m.acc.NodeBounds(sel[0]); has {
				m.state = resizingState{
					id:         sel[0],
					handle:     h,
					orig:       orig,
					startWorld: world,
					current:    orig,
				}
				return m.setCursor(HandleCursor(h))
			}
		}
	}

	if id, ok := m.acc.NodeAt(world); ok {
		if ev.clicks() >= 2 {
			m.state = textEditingState{id: id, original: m.acc.NodeText(id)}
			return []Action{BeginTextEdit{ID: id}, Redraw{}}
		}
		st := selectingState{
			startClient: ev.Client,
			startWorld:  world,
			target:      id,
			additive:    additive,
			prev:        sel,
		}
		m.state = st
		if !additive && !containsID(sel, id) {
			// Select on press so a drag moves the node just hit.
			return []Action{SetSelection{IDs: []NodeID{id}}, Redraw{}}
		}
		return nil
	}

	m.state = selectingState{
		startClient: ev.Client,
		startWorld:  world,
		marquee:     true,
		additive:    additive,
		prev:        sel,
		rect:        Rect{X: world.X, Y: world.Y},
	}
	if !additive && len(sel) > 0 {
		return []Action{SetSelection{}, Redraw{}}
	}
	return nil
}

// --- Per-state move/up handlers ---

func (m *Machine) selectingMove(st selectingState, ev PointerEvent) []Action {
	world := m.acc.WorldPoint(ev.Client)

	if st.marquee {
		st.rect = RectFromPoints(st.startWorld, world)
		m.state = st
		ids := m.marqueeSelection(st)
		return []Action{SetSelection{IDs: ids}, Redraw{}}
	}

	if ev.Client.Sub(st.startClient).Length() <= m.opts.DragThreshold {
		// Below the drag threshold: still a candidate click.
		return nil
	}

	// Promote to dragging the current selection. A modifier press on an
	// unselected node joins it to the selection so it moves and stays
	// selected after the finalize.
	ids := m.acc.Selection()
	var out []Action
	if !containsID(ids, st.target) {
		ids = append(append([]NodeID{}, ids...), st.target)
		out = append(out, SetSelection{IDs: ids})
	}
	origins := make(map[NodeID]Rect, len(ids))
	for _, id := range ids {
		if b, ok := m.acc.NodeBounds(id); ok {
			origins[id] = b
		}
	}
	drag := draggingState{startWorld: st.startWorld, ids: ids, origins: origins}
	m.state = drag
	out = append(out, m.setCursor(CursorMove)...)
	return append(out, m.draggingMove(drag, ev)...)
}

// marqueeSelection returns the nodes whose full world bounds lie inside the
// marquee, merged with the pre-gesture selection when additive.
func (m *Machine) marqueeSelection(st selectingState) []NodeID {
	var ids []NodeID
	if st.additive {
		ids = append(ids, st.prev...)
	}
	for _, id := range m.acc.VisibleNodes() {
		b, ok := m.acc.NodeWorldBounds(id)
		if !ok || !st.rect.ContainsRect(b) {
			continue
		}
		if !containsID(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Machine) selectingUp(st selectingState, ev PointerEvent) []Action {
	if st.marquee {
		// Selection was updated live on each move; nothing left to commit.
		return []Action{Redraw{}}
	}
	// Below-threshold release: a plain or modifier-toggled click. The
	// candidate drag session is discarded without any move action.
	if st.additive {
		return []Action{SetSelection{IDs: toggleID(st.prev, st.target)}, Redraw{}}
	}
	return []Action{SetSelection{IDs: []NodeID{st.target}}, Redraw{}}
}

func (m *Machine) draggingMove(st draggingState, ev PointerEvent) []Action {
	world := m.acc.WorldPoint(ev.Client)
	raw := world.Sub(st.startWorld)

	// Alignment snapping keys off the first dragged node; the snapped delta
	// then applies to every node so the selection moves as one.
	delta, guides := raw, []Guide(nil)
	if len(st.ids) > 0 {
		delta, guides = m.acc.SnapDelta(st.ids[0], raw, m.opts.SnapThreshold)
	}

	if delta == st.delta && (len(guides) > 0) == st.guides {
		// Zero-delta move: nothing changed, nothing to emit.
		return nil
	}
	st.delta = delta
	st.guides = len(guides) > 0
	m.state = st

	out := []Action{MovePreview{IDs: st.ids, Delta: delta}}
	if len(guides) > 0 {
		out = append(out, SetGuides{Guides: guides})
	} else {
		out = append(out, ClearGuides{})
	}
	return append(out, Redraw{})
}

// finishDrag emits the single finalize action carrying each node's final
// bounds.
func (m *Machine) finishDrag(st draggingState) []Action {
	nodes := make([]Placement, 0, len(st.ids))
	for _, id := range st.ids {
		orig, ok := st.origins[id]
		if !ok {
			continue
		}
		nodes = append(nodes, Placement{ID: id, Bounds: orig.Translate(st.delta)})
	}
	out := []Action{FinalizeMove{Delta: st.delta, Nodes: nodes}}
	if st.guides {
		out = append(out, ClearGuides{})
	}
	return append(out, Redraw{})
}

func (m *Machine) resizingMove(st resizingState, ev PointerEvent) []Action {
	world := m.acc.WorldPoint(ev.Client)
	delta := world.Sub(st.startWorld)
	fromCenter := ev.Modifiers.Has(ModAlt) || ev.Modifiers.Has(ModCtrl)
	r := resizeRect(st.orig, st.handle, delta, m.opts.MinNodeSize,
		ev.Modifiers.Has(ModShift), fromCenter)
	if r == st.current {
		return nil
	}
	st.current = r
	m.state = st
	return []Action{ResizePreview{ID: st.id, Bounds: r}, Redraw{}}
}

func (m *Machine) panningMove(st panningState, ev PointerEvent) []Action {
	offset := st.startOffset.Add(ev.Client.Sub(st.startClient))
	return []Action{
		SetView{Offset: offset, Scale: m.acc.ViewScale()},
		Redraw{},
	}
}

func (m *Machine) creatingMove(st creatingState, ev PointerEvent) []Action {
	st.curWorld = m.acc.WorldPoint(ev.Client)
	if st.kind == NodeText {
		// Text nodes are placed, not drawn in.
		return nil
	}
	st.world = m.createBounds(st, ev.Modifiers.Has(ModShift))
	st.local = st.world.Translate(Vec2{}.Sub(st.parentWorld))
	m.state = st
	return []Action{SetNodeBounds{ID: st.id, Bounds: st.local}, Redraw{}}
}

// --- Cancellation ---

// cancelGesture reverts the active gesture to its pre-gesture snapshot and
// returns to idle within the same call. The second return value is false
// when the machine was already idle (no gesture to cancel).
func (m *Machine) cancelGesture() ([]Action, bool) {
	switch st := m.state.(type) {
	case idleState:
		return nil, false
	case selectingState:
		m.state = idleState{}
		return []Action{SetSelection{IDs: st.prev}, Redraw{}}, true
	case draggingState:
		m.state = idleState{}
		out := []Action{MovePreview{IDs: st.ids, Delta: Vec2{}}}
		if st.guides {
			out = append(out, ClearGuides{})
		}
		return append(out, Redraw{}), true
	case resizingState:
		m.state = idleState{}
		return []Action{SetNodeBounds{ID: st.id, Bounds: st.orig}, Redraw{}}, true
	case panningState:
		m.state = idleState{}
		return []Action{
			SetView{Offset: st.startOffset, Scale: m.acc.ViewScale()},
			Redraw{},
		}, true
	case creatingState:
		m.state = idleState{}
		return []Action{DeleteNodes{IDs: []NodeID{st.id}}, Redraw{}}, true
	case textEditingState:
		m.state = idleState{}
		return []Action{
			SetNodeText{ID: st.id, Text: st.original},
			EndTextEdit{ID: st.id},
			Redraw{},
		}, true
	}
	return nil, false
}

// --- Hover / cursor bookkeeping ---

// hoverMove updates the hovered node and cursor during an idle move.
// Called by the select tool.
func (m *Machine) hoverMove(ev PointerEvent) []Action {
	screen := m.acc.ScreenPoint(ev.Client)
	world := m.acc.WorldPoint(ev.Client)

	cursor := CursorDefault
	if sel := m.acc.Selection(); len(sel) == 1 {
		if h, ok := m.acc.HandleAt(screen, sel[0], m.opts.HandleHitSize); ok {
			cursor = HandleCursor(h)
		}
	}

	var hover NodeID
	if id, ok := m.acc.NodeAt(world); ok {
		hover = id
	}

	var out []Action
	if hover != m.hover {
		m.hover = hover
		out = append(out, SetHover{ID: hover})
	}
	out = append(out, m.setCursor(cursor)...)
	if len(out) > 0 {
		out = append(out, Redraw{})
	}
	return out
}

// setCursor emits a cursor update only when the cursor actually changes.
func (m *Machine) setCursor(c Cursor) []Action {
	if c == m.cursor {
		return nil
	}
	m.cursor = c
	return []Action{SetCursor{Cursor: c}}
}

// --- Small helpers ---

func containsID(ids []NodeID, id NodeID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// toggleID returns ids with id removed if present, appended otherwise.
func toggleID(ids []NodeID, id NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Default text node geometry and content.
const (
	defaultTextWidth   = 144.0
	defaultTextHeight  = 24.0
	defaultTextContent = "Text"
)
