package easel

// PointerEvent describes a pointer press, move, or release in client
// (window pixel) coordinates. ClickCount is the press's position in a
// multi-click sequence (1 for a single click, 2 for a double click); hosts
// that do not track it may leave it zero, which the machine treats as 1.
type PointerEvent struct {
	Client     Vec2
	Button     MouseButton
	Modifiers  KeyModifiers
	ClickCount int
}

// WheelEvent describes a scroll wheel or trackpad scroll gesture in client
// coordinates. Deltas follow the platform convention: positive DeltaY
// scrolls down.
type WheelEvent struct {
	Client    Vec2
	DeltaX    float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// KeyEvent describes a key press or release.
type KeyEvent struct {
	Key       Key
	Modifiers KeyModifiers
}

// clicks normalizes ClickCount so a host that never sets it still gets
// single-click behavior.
func (e PointerEvent) clicks() int {
	if e.ClickCount < 1 {
		return 1
	}
	return e.ClickCount
}
