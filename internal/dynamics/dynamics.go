// Package dynamics composes the core evaluators into a single per-tick
// pipeline: per-segment aerodynamic forces are aggregated about the system
// CG, gravity is added, the rigid-body equations of motion produce linear
// and angular accelerations, and for suspended-pilot configurations the
// pendulum sub-model produces the pilot swing acceleration. Evaluate is a
// pure function of its arguments; the host owns all time integration.
package dynamics

import (
	"github.com/hartmandrector/polarsim/internal/aero"
	"github.com/hartmandrector/polarsim/internal/eom"
	"github.com/hartmandrector/polarsim/internal/frame"
	"github.com/hartmandrector/polarsim/internal/pendulum"
	"github.com/hartmandrector/polarsim/internal/vehicle"
	"github.com/hartmandrector/polarsim/pkg/types"
)

// SegmentForcer supplies per-segment aerodynamic forces. The production
// implementation is the vehicle package's coefficient model; the core only
// sees the resulting numbers.
type SegmentForcer interface {
	SegmentForces(segments []types.AeroSegment, st types.FlightState) []types.SegmentForceResult
}

// PendulumState is the host-integrated swing state of the suspended pilot.
type PendulumState struct {
	Angle float64 `json:"angle"` // rad, pilot pitch minus parent pitch
	Rate  float64 `json:"rate"`  // rad/s
}

// Snapshot is one evaluated dynamics frame, the full output consumed by the
// rendering and overlay layer.
type Snapshot struct {
	Vehicle       string           `json:"vehicle"`
	Attitude      types.Attitude   `json:"attitude"`
	Orientation   types.Quat       `json:"orientation"`
	EulerRates    types.EulerRates `json:"euler_rates"`
	Force         types.Vec3       `json:"force"`          // N, body axes
	Moment        types.Vec3       `json:"moment"`         // N·m about the CG
	LinearAccel   types.Vec3       `json:"linear_accel"`   // m/s², body axes
	AngularAccel  types.BodyRates  `json:"angular_accel"`  // rad/s²
	Pendulum      PendulumState    `json:"pendulum"`
	PendulumAccel float64          `json:"pendulum_accel"` // rad/s²
	GravityBody   types.Vec3       `json:"gravity_body"`
}

// Evaluator runs the dynamics pipeline for one vehicle configuration.
type Evaluator struct {
	vehicle *vehicle.Vehicle
	forcer  SegmentForcer
	gravity float64
	params  pendulum.Params
}

// NewEvaluator creates an Evaluator for the given vehicle. The pendulum
// parameters are derived once here and reused every tick.
func NewEvaluator(v *vehicle.Vehicle, forcer SegmentForcer, gravity float64) *Evaluator {
	return &Evaluator{
		vehicle: v,
		forcer:  forcer,
		gravity: gravity,
		params:  v.PendulumParams(),
	}
}

// PendulumParams returns the derived pendulum parameters of the evaluator's
// vehicle.
func (e *Evaluator) PendulumParams() pendulum.Params {
	return e.params
}

// Evaluate runs one tick of the pipeline for the given flight state and the
// host-integrated pendulum swing state.
func (e *Evaluator) Evaluate(st types.FlightState, pend PendulumState) Snapshot {
	v := e.vehicle

	// Wind axes expressed in body axes: column 0 points into the oncoming
	// flow, column 2 down through it. Drag acts downstream, lift up.
	windToBody := frame.DCMWindToBody(st.Alpha, st.Beta)
	dragDir := windToBody.Column(0).Scale(-1)
	liftDir := windToBody.Column(2).Scale(-1)
	sideDir := windToBody.Column(1)

	forces := e.forcer.SegmentForces(v.AeroSegments, st)
	sum := aero.SumAllSegments(v.AeroSegments, forces, v.CG, v.ReferenceLength, dragDir, liftDir, sideDir)

	gravityBody := frame.GravityBody(st.Roll, st.Pitch, e.gravity)
	totalForce := sum.Force.Add(gravityBody.Scale(v.TotalMass))

	linAccel := eom.Translational(totalForce, v.TotalMass, st.Velocity(), st.Rates())
	angAccel := eom.Rotational(sum.Moment, v.Inertia, st.Rates())

	snap := Snapshot{
		Vehicle:      v.Name,
		Attitude:     st.Attitude(),
		Orientation:  frame.BodyToInertialQuat(st.Attitude()),
		EulerRates:   frame.EulerRatesFromBodyRates(st.Rates(), st.Roll, st.Pitch),
		Force:        sum.Force,
		Moment:       sum.Moment,
		LinearAccel:  linAccel,
		AngularAccel: angAccel,
		Pendulum:     pend,
		GravityBody:  gravityBody,
	}

	if v.HasPendulum() {
		damping := pendulum.SwingDampingTorque(
			v.PilotSegments, v.Pivot.X, v.Pivot.Z, pend.Rate,
			st.AirDensity, v.ReferenceLength, v.TotalMass)
		snap.PendulumAccel = pendulum.EOM(e.params, pend.Angle, pend.Rate, damping, angAccel.Q)
	}
	return snap
}

// PilotOrientation returns the rendered orientation of the pilot sub-model:
// the parent body's orientation perturbed in pitch by the pendulum swing
// angle.
func (s Snapshot) PilotOrientation() types.Quat {
	swing := types.AxisAngleQuat(types.Vec3{Y: 1}, s.Pendulum.Angle)
	return s.Orientation.Mul(swing).Normalize()
}
