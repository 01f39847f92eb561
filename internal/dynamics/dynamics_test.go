package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartmandrector/polarsim/internal/vehicle"
	"github.com/hartmandrector/polarsim/pkg/types"
)

const g = 9.81

func newEvaluator(t *testing.T, name string) *Evaluator {
	t.Helper()
	v, ok := vehicle.NewRegistry().Get(name)
	require.True(t, ok)
	return NewEvaluator(v, vehicle.SegmentModel{}, g)
}

func glideState() types.FlightState {
	return types.FlightState{
		Roll:       0.05,
		Pitch:      -0.15,
		Yaw:        1.2,
		P:          0.01,
		Q:          -0.02,
		R:          0.005,
		U:          12,
		V:          0.3,
		W:          3,
		Alpha:      0.12,
		Beta:       0.02,
		Airspeed:   12.5,
		AirDensity: 1.225,
	}
}

func assertFinite(t *testing.T, v float64, name string) {
	t.Helper()
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite: %v", name, v)
}

func TestEvaluateProducesFiniteSnapshot(t *testing.T) {
	for _, name := range []string{"wingsuit", "canopy", "skydiver", "aircraft"} {
		e := newEvaluator(t, name)
		snap := e.Evaluate(glideState(), PendulumState{Angle: 0.05, Rate: -0.1})

		for label, v := range map[string]float64{
			"force.x": snap.Force.X, "force.y": snap.Force.Y, "force.z": snap.Force.Z,
			"moment.x": snap.Moment.X, "moment.y": snap.Moment.Y, "moment.z": snap.Moment.Z,
			"lin.x": snap.LinearAccel.X, "lin.y": snap.LinearAccel.Y, "lin.z": snap.LinearAccel.Z,
			"ang.p": snap.AngularAccel.P, "ang.q": snap.AngularAccel.Q, "ang.r": snap.AngularAccel.R,
			"pend": snap.PendulumAccel,
		} {
			assertFinite(t, v, name+" "+label)
		}
		assert.Equal(t, name, snap.Vehicle)
	}
}

func TestEvaluateAtRestLeavesOnlyGravity(t *testing.T) {
	e := newEvaluator(t, "skydiver")
	snap := e.Evaluate(types.FlightState{AirDensity: 1.225}, PendulumState{})

	// Zero airspeed: no aero force, and a level body accelerates straight
	// down at g.
	assert.Equal(t, types.Vec3{}, snap.Force)
	assert.InDelta(t, 0, snap.LinearAccel.X, 1e-12)
	assert.InDelta(t, 0, snap.LinearAccel.Y, 1e-12)
	assert.InDelta(t, g, snap.LinearAccel.Z, 1e-12)
}

func TestEvaluateLiftOpposesGravityInGlide(t *testing.T) {
	e := newEvaluator(t, "canopy")
	st := types.FlightState{U: 10, W: 3, Alpha: 0.1, Airspeed: 10.4, AirDensity: 1.225}
	snap := e.Evaluate(st, PendulumState{})

	// Positive alpha at forward speed: aero force has an upward (−z)
	// component that cancels part of the weight.
	assert.Less(t, snap.Force.Z, 0.0)
	assert.Less(t, snap.LinearAccel.Z, g)
}

func TestEvaluatePendulumOnlyForCanopy(t *testing.T) {
	canopy := newEvaluator(t, "canopy")
	snap := canopy.Evaluate(glideState(), PendulumState{Angle: 0.2})
	assert.NotZero(t, snap.PendulumAccel)

	wingsuit := newEvaluator(t, "wingsuit")
	snap = wingsuit.Evaluate(glideState(), PendulumState{Angle: 0.2})
	assert.Zero(t, snap.PendulumAccel)
}

func TestEvaluatePendulumSwingRestores(t *testing.T) {
	e := newEvaluator(t, "canopy")
	st := glideState()
	st.Q = 0 // keep the parent pitch acceleration small

	fwd := e.Evaluate(st, PendulumState{Angle: 0.3})
	back := e.Evaluate(st, PendulumState{Angle: -0.3})
	// The gravity term dominates at this swing amplitude: the difference
	// between the two accelerations must be restoring.
	assert.Less(t, fwd.PendulumAccel, back.PendulumAccel)
}

func TestEvaluateOrientationMatchesAttitude(t *testing.T) {
	e := newEvaluator(t, "aircraft")
	st := glideState()
	snap := e.Evaluate(st, PendulumState{})

	// The quaternion must rotate body-forward into the same inertial
	// direction the attitude's DCM does: yaw 1.2, pitch −0.15.
	fwd := snap.Orientation.Rotate(types.Vec3{X: 1})
	assert.InDelta(t, math.Cos(st.Pitch)*math.Cos(st.Yaw), fwd.X, 1e-12)
	assert.InDelta(t, math.Cos(st.Pitch)*math.Sin(st.Yaw), fwd.Y, 1e-12)
	assert.InDelta(t, -math.Sin(st.Pitch), fwd.Z, 1e-12)
}

func TestPilotOrientationReducesToParentAtZeroSwing(t *testing.T) {
	e := newEvaluator(t, "canopy")
	snap := e.Evaluate(glideState(), PendulumState{})
	pilot := snap.PilotOrientation()
	assert.InDelta(t, snap.Orientation.W, pilot.W, 1e-12)
	assert.InDelta(t, snap.Orientation.X, pilot.X, 1e-12)
	assert.InDelta(t, snap.Orientation.Y, pilot.Y, 1e-12)
	assert.InDelta(t, snap.Orientation.Z, pilot.Z, 1e-12)
}

func TestPilotOrientationPitchesWithSwing(t *testing.T) {
	e := newEvaluator(t, "canopy")
	st := types.FlightState{Airspeed: 10, AirDensity: 1.225}
	snap := e.Evaluate(st, PendulumState{Angle: 0.4})

	// With an identity parent orientation, the pilot quaternion is a pure
	// pitch rotation by the swing angle.
	fwd := snap.PilotOrientation().Rotate(types.Vec3{X: 1})
	assert.InDelta(t, math.Cos(0.4), fwd.X, 1e-12)
	assert.InDelta(t, 0, fwd.Y, 1e-12)
	assert.InDelta(t, -math.Sin(0.4), fwd.Z, 1e-12)
}
