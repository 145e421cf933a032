package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewAnim holds active tweens for the viewport's offset and scale.
type viewAnim struct {
	offsetX *gween.Tween
	offsetY *gween.Tween
	scale   *gween.Tween
}

// Viewport is a host-side realization of the view state the accessor
// reports: a pan offset in screen pixels and a zoom scale, with
// screen = world·Scale + Offset. Hosts that use it apply SetView actions to
// it directly and back their accessor's ViewOffset/ViewScale with it.
//
// ScrollTo and ZoomTo animate the view; call Update each frame while an
// animation runs.
type Viewport struct {
	Offset Vec2
	Scale  float64

	anim *viewAnim
}

// NewViewport creates a viewport at the origin with scale 1.
func NewViewport() *Viewport {
	return &Viewport{Scale: 1}
}

// WorldToScreen converts a world point to screen pixels.
func (v *Viewport) WorldToScreen(w Vec2) Vec2 {
	return w.Scale(v.Scale).Add(v.Offset)
}

// ScreenToWorld converts a screen point to world coordinates.
func (v *Viewport) ScreenToWorld(s Vec2) Vec2 {
	if v.Scale == 0 {
		return s
	}
	return s.Sub(v.Offset).Scale(1 / v.Scale)
}

// Apply consumes a SetView action.
func (v *Viewport) Apply(a SetView) {
	v.anim = nil
	v.Offset = a.Offset
	v.Scale = a.Scale
}

// ZoomAt multiplies the scale by factor, clamped to [min, max], keeping the
// world point under the given screen point visually fixed.
func (v *Viewport) ZoomAt(screen Vec2, factor, min, max float64) {
	next := clamp(v.Scale*factor, min, max)
	if next == v.Scale {
		return
	}
	world := v.ScreenToWorld(screen)
	v.Scale = next
	v.Offset = screen.Sub(world.Scale(next))
}

// ScrollTo animates the offset to the given value over duration seconds.
func (v *Viewport) ScrollTo(offset Vec2, duration float32, fn ease.TweenFunc) {
	v.anim = &viewAnim{
		offsetX: gween.New(float32(v.Offset.X), float32(offset.X), duration, fn),
		offsetY: gween.New(float32(v.Offset.Y), float32(offset.Y), duration, fn),
	}
}

// ZoomTo animates both offset and scale so the view ends centered the same
// way a SetView to those values would, over duration seconds.
func (v *Viewport) ZoomTo(offset Vec2, scale float64, duration float32, fn ease.TweenFunc) {
	v.anim = &viewAnim{
		offsetX: gween.New(float32(v.Offset.X), float32(offset.X), duration, fn),
		offsetY: gween.New(float32(v.Offset.Y), float32(offset.Y), duration, fn),
		scale:   gween.New(float32(v.Scale), float32(scale), duration, fn),
	}
}

// Animating reports whether a scroll or zoom animation is running.
func (v *Viewport) Animating() bool { return v.anim != nil }

// Update advances any running animation by dt seconds and reports whether
// the view changed.
func (v *Viewport) Update(dt float32) bool {
	a := v.anim
	if a == nil {
		return false
	}
	x, doneX := a.offsetX.Update(dt)
	y, doneY := a.offsetY.Update(dt)
	v.Offset = Vec2{float64(x), float64(y)}
	done := doneX && doneY
	if a.scale != nil {
		s, doneS := a.scale.Update(dt)
		v.Scale = float64(s)
		done = done && doneS
	}
	if done {
		v.anim = nil
	}
	return true
}
