package vehicle

import (
	"math"

	"github.com/hartmandrector/polarsim/pkg/types"
)

// Default per-segment coefficient model. This sits on the collaborator side
// of the dynamics boundary: the core consumes its SegmentForceResult output
// as opaque numbers and never sees the coefficients.
const (
	liftSlope     = 5.5  // per rad
	clMax         = 1.3  // stall clamp
	cd0           = 0.05 // parasitic drag
	inducedFactor = 0.07 // CD = cd0 + k·CL²
	sideSlope     = 0.8  // per rad of sideslip
)

// SegmentModel produces per-segment aerodynamic forces from angle of attack,
// sideslip, airspeed, and air density using a linear lift slope with a stall
// clamp and a quadratic drag polar.
type SegmentModel struct{}

// SegmentForces returns one force result per aero segment, in segment order.
func (SegmentModel) SegmentForces(segments []types.AeroSegment, st types.FlightState) []types.SegmentForceResult {
	q := 0.5 * st.AirDensity * st.Airspeed * st.Airspeed
	out := make([]types.SegmentForceResult, len(segments))
	for i, seg := range segments {
		cl := liftSlope * (st.Alpha + seg.Incidence)
		cl = math.Max(-clMax, math.Min(clMax, cl))
		cd := cd0 + inducedFactor*cl*cl
		cy := -sideSlope * st.Beta

		out[i] = types.SegmentForceResult{
			Lift: q * seg.Area * cl,
			Drag: q * seg.Area * cd,
			Side: q * seg.Area * cy,
		}
	}
	return out
}
