package easel

// handTool pans the view: drag to pan, and while active the wheel pans too
// instead of scrolling through the machine's default zoom/pan split.
type handTool struct {
	m *Machine
}

func (t *handTool) ID() ToolID { return ToolHand }

func (t *handTool) Activate() []Action {
	return t.m.setCursor(CursorGrab)
}

func (t *handTool) Deactivate() []Action {
	return nil
}

func (t *handTool) PointerDown(ev PointerEvent) []Action {
	return t.m.beginPan(ev, false)
}

func (t *handTool) PointerMove(ev PointerEvent) []Action {
	return nil
}

func (t *handTool) PointerUp(ev PointerEvent) []Action {
	return nil
}

// Wheel pans the offset by the raw deltas. The zoom modifier still zooms:
// the event is passed back so the machine's exponential zoom applies.
func (t *handTool) Wheel(ev WheelEvent) ([]Action, bool) {
	if ev.Modifiers.Has(ModCtrl) || ev.Modifiers.Has(ModMeta) {
		return nil, false
	}
	offset := t.m.acc.ViewOffset().Sub(Vec2{ev.DeltaX, ev.DeltaY})
	return []Action{
		SetView{Offset: offset, Scale: t.m.acc.ViewScale()},
		Redraw{},
	}, true
}
