// Package mass integrates discrete point-mass segments into a center of
// gravity and a full symmetric inertia tensor. Segment positions are
// normalized by a reference length and segment masses are fractions of a
// total mass, so one authored table serves any physical scale.
package mass

import "github.com/hartmandrector/polarsim/pkg/types"

// CenterOfMass returns the mass-weighted average position of the segments in
// meters. Each segment's physical position is its normalized position times
// referenceLength, and its physical mass is its mass ratio times totalMass.
// An empty or zero-mass segment set yields the zero vector.
func CenterOfMass(segments []types.MassSegment, referenceLength, totalMass float64) types.Vec3 {
	var sum types.Vec3
	var m float64
	for _, seg := range segments {
		w := seg.MassRatio * totalMass
		sum = sum.Add(seg.Position.Scale(referenceLength * w))
		m += w
	}
	if m == 0 {
		return types.Vec3{}
	}
	return sum.Scale(1 / m)
}

// Inertia returns the inertia tensor of the segments treated as point
// masses, about the coordinate origin of the segment positions. The caller
// chooses that origin: the body datum for full-vehicle inertia, or a riser
// pivot for pendulum inertia. Products of inertia use the tensor sign
// convention (Ixy = −Σ m·x·y), so no segment carries self-inertia.
func Inertia(segments []types.MassSegment, referenceLength, totalMass float64) types.InertiaComponents {
	var out types.InertiaComponents
	for _, seg := range segments {
		m := seg.MassRatio * totalMass
		x := seg.Position.X * referenceLength
		y := seg.Position.Y * referenceLength
		z := seg.Position.Z * referenceLength

		out.Ixx += m * (y*y + z*z)
		out.Iyy += m * (x*x + z*z)
		out.Izz += m * (x*x + y*y)
		out.Ixy -= m * x * y
		out.Ixz -= m * x * z
		out.Iyz -= m * y * z
	}
	return out
}
