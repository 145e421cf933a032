package easel

import "math"

// SnapToParentCenter is the stock alignment-snap implementation hosts can
// back [Accessor.SnapDelta] with. It checks the dragged node's center
// against its immediate parent's center on each axis independently: when a
// center lands within threshold world units, the returned delta is replaced
// on that axis so the centers align exactly, and a guide line through the
// parent center is emitted for that axis. Sibling-to-sibling snapping is
// deliberately not performed.
//
// Guides are returned in the parent's local coordinate space.
func SnapToParentCenter(acc Accessor, id NodeID, delta Vec2, threshold float64) (Vec2, []Guide) {
	bounds, ok := acc.NodeBounds(id)
	if !ok {
		return delta, nil
	}
	parent, ok := acc.NodeParent(id)
	if !ok {
		return delta, nil
	}
	pb, ok := acc.NodeBounds(parent)
	if !ok {
		return delta, nil
	}

	// Parent center in the parent's own local space.
	pcx := pb.Width / 2
	pcy := pb.Height / 2
	moved := bounds.Translate(delta)
	center := moved.Center()

	var guides []Guide
	if math.Abs(center.X-pcx) <= threshold {
		delta.X += pcx - center.X
		guides = append(guides, Guide{From: Vec2{pcx, 0}, To: Vec2{pcx, pb.Height}})
	}
	if math.Abs(center.Y-pcy) <= threshold {
		delta.Y += pcy - center.Y
		guides = append(guides, Guide{From: Vec2{0, pcy}, To: Vec2{pb.Width, pcy}})
	}
	return delta, guides
}
