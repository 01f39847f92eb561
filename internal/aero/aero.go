// Package aero aggregates per-segment aerodynamic forces into a single
// system resultant force and moment about the center of gravity. The
// per-segment coefficients themselves come from collaborator-owned lookup
// tables; this package only composes and sums the results.
package aero

import "github.com/hartmandrector/polarsim/pkg/types"

// ComposeForce builds one segment's force vector from its lift/drag/side
// magnitudes and the shared unit directions.
func ComposeForce(f types.SegmentForceResult, dragDir, liftDir, sideDir types.Vec3) types.Vec3 {
	return liftDir.Scale(f.Lift).
		Add(dragDir.Scale(f.Drag)).
		Add(sideDir.Scale(f.Side))
}

// SumAllSegments accumulates every segment's force and its moment about the
// center of gravity. Segment positions are normalized and scaled to meters
// by referenceHeight; cg is already in meters. The unit directions and cg
// must share one frame, and the result is expressed in that frame. The
// accumulation is a plain vector sum, so segment order does not affect the
// result beyond floating-point rounding. Segments beyond len(forces)
// contribute nothing.
func SumAllSegments(
	segments []types.AeroSegment,
	forces []types.SegmentForceResult,
	cg types.Vec3,
	referenceHeight float64,
	dragDir, liftDir, sideDir types.Vec3,
) types.SystemForceMoment {
	var out types.SystemForceMoment
	for i, seg := range segments {
		if i >= len(forces) {
			break
		}
		f := ComposeForce(forces[i], dragDir, liftDir, sideDir)
		arm := seg.Position.Scale(referenceHeight).Sub(cg)
		out.Force = out.Force.Add(f)
		out.Moment = out.Moment.Add(arm.Cross(f))
	}
	return out
}
