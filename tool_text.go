package easel

// textTool places text nodes: a single click creates a text node with the
// default size and content, parented by hit test at the click point.
// Releasing the pointer finalizes and selects it; Escape before release
// cancels the pending creation (the machine's creating-state cancel deletes
// the node).
type textTool struct {
	m *Machine
}

func (t *textTool) ID() ToolID { return ToolText }

func (t *textTool) Activate() []Action {
	return t.m.setCursor(CursorText)
}

func (t *textTool) Deactivate() []Action {
	return nil
}

func (t *textTool) PointerDown(ev PointerEvent) []Action {
	return t.m.beginCreate(NodeText, ev)
}

func (t *textTool) PointerMove(ev PointerEvent) []Action {
	return nil
}

func (t *textTool) PointerUp(ev PointerEvent) []Action {
	return nil
}
