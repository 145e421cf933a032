package easel

// selectTool is the default editing mode: click, marquee, drag, and resize
// gestures run through the machine's idle dispatch; arrow keys nudge the
// selection, delete removes it, and ctrl/cmd-A selects everything visible.
type selectTool struct {
	m *Machine
}

func (t *selectTool) ID() ToolID { return ToolSelect }

func (t *selectTool) Activate() []Action {
	return t.m.setCursor(CursorDefault)
}

func (t *selectTool) Deactivate() []Action {
	return nil
}

func (t *selectTool) PointerDown(ev PointerEvent) []Action {
	return t.m.selectPointerDown(ev)
}

func (t *selectTool) PointerMove(ev PointerEvent) []Action {
	return t.m.hoverMove(ev)
}

func (t *selectTool) PointerUp(ev PointerEvent) []Action {
	return nil
}

func (t *selectTool) KeyDown(ev KeyEvent) []Action {
	switch ev.Key {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		return t.nudge(ev)
	case KeyDelete, KeyBackspace:
		sel := t.m.acc.Selection()
		if len(sel) == 0 {
			return nil
		}
		return []Action{DeleteNodes{IDs: sel}, SetSelection{}, Redraw{}}
	case KeyA:
		if ev.Modifiers.Has(ModCtrl) || ev.Modifiers.Has(ModMeta) {
			return []Action{SetSelection{IDs: t.m.acc.VisibleNodes()}, Redraw{}}
		}
	case KeyEscape:
		// Gesture cancellation already ran in the machine; an idle Escape
		// clears the selection.
		if len(t.m.acc.Selection()) > 0 {
			return []Action{SetSelection{}, Redraw{}}
		}
	}
	return nil
}

func (t *selectTool) KeyUp(ev KeyEvent) []Action {
	return nil
}

// nudge moves every selected node by one step (a larger step with shift)
// and commits immediately: no preview, no finalize pair.
func (t *selectTool) nudge(ev KeyEvent) []Action {
	sel := t.m.acc.Selection()
	if len(sel) == 0 {
		return nil
	}
	step := t.m.opts.NudgeStep
	if ev.Modifiers.Has(ModShift) {
		step = t.m.opts.NudgeStepLarge
	}
	var d Vec2
	switch ev.Key {
	case KeyArrowLeft:
		d.X = -step
	case KeyArrowRight:
		d.X = step
	case KeyArrowUp:
		d.Y = -step
	case KeyArrowDown:
		d.Y = step
	}
	var out []Action
	for _, id := range sel {
		b, ok := t.m.acc.NodeBounds(id)
		if !ok {
			continue
		}
		out = append(out, SetNodeBounds{ID: id, Bounds: b.Translate(d)})
	}
	if len(out) == 0 {
		return nil
	}
	return append(out, Redraw{})
}
