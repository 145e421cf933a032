// Package easel is the direct-manipulation core of a 2D scene editor.
//
// Easel turns raw pointer and keyboard events into an ordered list of typed
// scene-edit intents ([Action]). It never touches the scene graph directly:
// the host application implements the read-only [Accessor] contract, feeds
// events into a [Machine], and applies the actions the machine returns to its
// own state. That split keeps the whole gesture surface (click vs. drag vs.
// resize vs. pan vs. marquee vs. shape creation) deterministic and testable
// without a renderer.
//
// # Quick start
//
//	m := easel.NewMachine(accessor, easel.Options{})
//	m.Tools().Activate(easel.ToolSelect)
//
//	// In the host event loop:
//	for _, act := range m.PointerDown(ev) {
//		apply(act) // host mutates its scene graph / view state
//	}
//
// # Components
//
// [Machine] is the single authoritative interaction state machine (idle,
// selecting, dragging, resizing, panning, textEditing, creating). [Manager]
// owns one [Tool] per editing mode and routes every event to exactly the
// active tool. [Engine] is the constraint-propagation engine that repositions
// and resizes children when their container is resized, replaying immutable
// captured [ConstraintReference] values so repeated resizes do not
// accumulate drift.
//
// [Viewport] is an optional host-side view state (pan offset + zoom scale)
// with animated scroll and zoom via [gween].
//
// An interactive host built on [Ebitengine] lives in examples/editor.
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
package easel
