package types

// Attitude is a 3-2-1 (yaw → pitch → roll) Euler-angle orientation in
// radians. θ = ±π/2 is a gimbal singularity for Euler-rate conversion;
// callers are expected to keep angles in a sane range.
type Attitude struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// BodyRates is the angular velocity about the body x/y/z axes in rad/s.
type BodyRates struct {
	P float64 `json:"p"`
	Q float64 `json:"q"`
	R float64 `json:"r"`
}

// EulerRates is the time derivative of an Attitude.
type EulerRates struct {
	RollDot  float64 `json:"roll_dot"`
	PitchDot float64 `json:"pitch_dot"`
	YawDot   float64 `json:"yaw_dot"`
}

// MassSegment is one point mass of a body's mass distribution. Position is
// normalized by a reference length and MassRatio is a fraction of a total
// mass; the segments of one body need not sum to 1.
type MassSegment struct {
	Name      string
	MassRatio float64
	Position  Vec3
}

// InertiaComponents holds the six independent entries of a symmetric inertia
// tensor in kg·m². The products of inertia carry the tensor sign convention
// (Ixy = −Σ m·x·y), so they can be placed directly into the 3×3 matrix.
type InertiaComponents struct {
	Ixx float64 `json:"ixx"`
	Iyy float64 `json:"iyy"`
	Izz float64 `json:"izz"`
	Ixy float64 `json:"ixy"`
	Ixz float64 `json:"ixz"`
	Iyz float64 `json:"iyz"`
}

// AeroSegment is a spatial subdivision of a vehicle (a canopy cell, a wing
// panel) contributing its own local aerodynamic force. Position is
// normalized by the reference length. Area and Incidence feed the
// collaborator-owned coefficient lookup; the dynamics core consumes only
// Position and the resulting force.
type AeroSegment struct {
	Name      string
	Position  Vec3
	Area      float64 // m²
	Incidence float64 // rad, local twist relative to the body datum
}

// SegmentForceResult holds one segment's force magnitudes in newtons along
// the wind-derived lift/drag/side unit directions.
type SegmentForceResult struct {
	Lift float64 `json:"lift"`
	Drag float64 `json:"drag"`
	Side float64 `json:"side"`
}

// SystemForceMoment is the aggregated resultant over all aero segments:
// force in N and moment in N·m about the system center of gravity, both in
// body axes.
type SystemForceMoment struct {
	Force  Vec3 `json:"force"`
	Moment Vec3 `json:"moment"`
}

// FlightState is one instantaneous state sample of the flying body, as
// delivered by the telemetry feed. Velocity components are body-frame u/v/w
// in m/s; Alpha and Beta are angle of attack and sideslip in radians.
type FlightState struct {
	Roll       float64
	Pitch      float64
	Yaw        float64
	P          float64
	Q          float64
	R          float64
	U          float64
	V          float64
	W          float64
	Alpha      float64
	Beta       float64
	Airspeed   float64 // m/s true airspeed
	AirDensity float64 // kg/m³
}

// Attitude returns the Euler angles of the state.
func (s FlightState) Attitude() Attitude {
	return Attitude{Roll: s.Roll, Pitch: s.Pitch, Yaw: s.Yaw}
}

// Rates returns the body angular rates of the state.
func (s FlightState) Rates() BodyRates {
	return BodyRates{P: s.P, Q: s.Q, R: s.R}
}

// Velocity returns the body-frame velocity vector of the state.
func (s FlightState) Velocity() Vec3 {
	return Vec3{X: s.U, Y: s.V, Z: s.W}
}
