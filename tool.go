package easel

import "log"

// ToolID identifies an editing mode.
type ToolID string

const (
	ToolSelect    ToolID = "select"
	ToolHand      ToolID = "hand"
	ToolRectangle ToolID = "rectangle"
	ToolEllipse   ToolID = "ellipse"
	ToolText      ToolID = "text"
)

// Tool is one editing-mode strategy. The manager routes every raw event to
// exactly the active tool; a tool converts those events into geometry and
// machine transitions for its mode only.
//
// Activate and Deactivate bracket the tool's lifetime as the active tool.
// Deactivate must discard all of the tool's scratch state: nothing carries
// over to the next activation.
type Tool interface {
	ID() ToolID
	Activate() []Action
	Deactivate() []Action
	PointerDown(PointerEvent) []Action
	PointerMove(PointerEvent) []Action
	PointerUp(PointerEvent) []Action
}

// KeyTool is implemented by tools that consume key events.
type KeyTool interface {
	KeyDown(KeyEvent) []Action
	KeyUp(KeyEvent) []Action
}

// WheelTool is implemented by tools that claim wheel events. A false second
// return value passes the event back to the machine's default wheel
// handling.
type WheelTool interface {
	Wheel(WheelEvent) ([]Action, bool)
}

// OverlayTool is implemented by tools that draw overlay geometry, such as
// the shape tools' live dimension label.
type OverlayTool interface {
	RenderOverlay() Overlay
}

// Manager owns the registered tools and the identity of the active one.
// Switching tools deactivates the outgoing tool (discarding its scratch
// state), cancels any gesture in flight, then activates the incoming tool.
type Manager struct {
	m      *Machine
	tools  map[ToolID]Tool
	active ToolID
}

// newManager registers the five standard tools and activates Select.
func newManager(m *Machine) *Manager {
	mgr := &Manager{m: m, tools: make(map[ToolID]Tool)}
	mgr.Register(&selectTool{m: m})
	mgr.Register(&handTool{m: m})
	mgr.Register(&shapeTool{m: m, id: ToolRectangle, kind: NodeRectangle})
	mgr.Register(&shapeTool{m: m, id: ToolEllipse, kind: NodeEllipse})
	mgr.Register(&textTool{m: m})
	mgr.active = ToolSelect
	return mgr
}

// Register adds a tool. Registering a nil tool or a duplicate id panics:
// both are programmer errors, not runtime conditions.
func (mgr *Manager) Register(t Tool) {
	if t == nil {
		panic("easel: cannot register a nil tool")
	}
	if _, dup := mgr.tools[t.ID()]; dup {
		panic("easel: duplicate tool id " + string(t.ID()))
	}
	mgr.tools[t.ID()] = t
}

// Active returns the active tool.
func (mgr *Manager) Active() Tool { return mgr.tools[mgr.active] }

// ActiveID returns the active tool's id.
func (mgr *Manager) ActiveID() ToolID { return mgr.active }

// Activate switches the active tool. An unrecognized id logs a warning and
// leaves the current tool active. Switching away mid-gesture cancels the
// gesture with a full revert first.
func (mgr *Manager) Activate(id ToolID) []Action {
	next, ok := mgr.tools[id]
	if !ok {
		log.Printf("easel: unknown tool %q, keeping %q active", id, mgr.active)
		return nil
	}
	if id == mgr.active {
		return nil
	}
	var out []Action
	if revert, canceled := mgr.m.cancelGesture(); canceled {
		out = append(out, revert...)
	}
	out = append(out, mgr.Active().Deactivate()...)
	mgr.active = id
	return append(out, next.Activate()...)
}

// idleCursor returns the cursor the active tool shows when no gesture is in
// progress.
func (mgr *Manager) idleCursor() Cursor {
	switch mgr.active {
	case ToolHand:
		return CursorGrab
	case ToolRectangle, ToolEllipse:
		return CursorCrosshair
	case ToolText:
		return CursorText
	}
	return CursorDefault
}

// Event routing: exactly one tool sees each raw event.

func (mgr *Manager) pointerDown(ev PointerEvent) []Action {
	return mgr.Active().PointerDown(ev)
}

func (mgr *Manager) pointerMove(ev PointerEvent) []Action {
	return mgr.Active().PointerMove(ev)
}

func (mgr *Manager) pointerUp(ev PointerEvent) []Action {
	return mgr.Active().PointerUp(ev)
}

func (mgr *Manager) keyDown(ev KeyEvent) []Action {
	if kt, ok := mgr.Active().(KeyTool); ok {
		return kt.KeyDown(ev)
	}
	return nil
}

func (mgr *Manager) keyUp(ev KeyEvent) []Action {
	if kt, ok := mgr.Active().(KeyTool); ok {
		return kt.KeyUp(ev)
	}
	return nil
}
