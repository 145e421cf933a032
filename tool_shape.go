package easel

import "fmt"

// shapeTool draws rectangles and ellipses: press creates the node (parented
// by hit test at the press point, falling back to a root frame), dragging
// sizes it, shift constrains to a square/circle. While a draw is in
// progress the tool renders the live dimension label.
type shapeTool struct {
	m    *Machine
	id   ToolID
	kind NodeKind
}

func (t *shapeTool) ID() ToolID { return t.id }

func (t *shapeTool) Activate() []Action {
	return t.m.setCursor(CursorCrosshair)
}

func (t *shapeTool) Deactivate() []Action {
	return nil
}

func (t *shapeTool) PointerDown(ev PointerEvent) []Action {
	return t.m.beginCreate(t.kind, ev)
}

func (t *shapeTool) PointerMove(ev PointerEvent) []Action {
	return nil
}

func (t *shapeTool) PointerUp(ev PointerEvent) []Action {
	return nil
}

// RenderOverlay shows the in-progress shape's outline and a "W × H" readout
// anchored under its bottom-right corner.
func (t *shapeTool) RenderOverlay() Overlay {
	st, ok := t.m.state.(creatingState)
	if !ok || st.kind != t.kind {
		return Overlay{}
	}
	return Overlay{
		Rects: []OverlayRect{{Bounds: st.world}},
		Labels: []OverlayLabel{{
			At:   Vec2{st.world.X + st.world.Width, st.world.Y + st.world.Height},
			Text: dimensionLabel(st.world),
		}},
	}
}

// dimensionLabel formats a live size readout, trimming trailing zeros so
// whole sizes read "120 × 80" rather than "120.0 × 80.0".
func dimensionLabel(r Rect) string {
	return fmt.Sprintf("%s × %s", trimFloat(r.Width), trimFloat(r.Height))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
