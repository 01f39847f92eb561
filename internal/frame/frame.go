// Package frame implements the reference-frame algebra of the dynamics core:
// 3-2-1 Euler direction-cosine matrices, Euler-rate and body-rate
// conversion, wind-axis composition, and attitude-to-quaternion derivation.
//
// Frames follow the North-East-Down convention: inertial x=north, y=east,
// z=down; body x forward, y right, z down. All angles are radians. Every
// function in this package is total; no angle wrapping or normalization is
// performed, and the θ=±π/2 gimbal singularity of Euler-rate conversion is a
// documented limitation, not a special case.
package frame

import (
	"math"

	"github.com/hartmandrector/polarsim/pkg/types"
)

// DCMInertialToBody returns the rotation taking inertial-frame coordinates
// to body-frame coordinates for a 3-2-1 (yaw → pitch → roll) attitude:
// Rx(φ)·Ry(θ)·Rz(ψ).
func DCMInertialToBody(att types.Attitude) Mat3 {
	return rotX(att.Roll).Mul(rotY(att.Pitch)).Mul(rotZ(att.Yaw))
}

// DCMBodyToInertial returns the rotation taking body-frame coordinates to
// inertial-frame coordinates, the transpose of DCMInertialToBody. At
// all-zero angles it is the identity.
func DCMBodyToInertial(att types.Attitude) Mat3 {
	return DCMInertialToBody(att).Transpose()
}

// DCMWindToBody returns the rotation taking wind-axis coordinates to
// body-axis coordinates for angle of attack alpha and sideslip beta:
// Ry(−β)·Rz(α). At α=β=0 it is the identity.
func DCMWindToBody(alpha, beta float64) Mat3 {
	return rotY(-beta).Mul(rotZ(alpha))
}

// BodyToInertialQuat returns the body→inertial orientation quaternion for a
// 3-2-1 attitude. It is derived from the DCM rather than composed from the
// individual Euler angles, so equivalent attitudes always produce an
// equivalent quaternion (up to sign) even near gimbal lock.
func BodyToInertialQuat(att types.Attitude) types.Quat {
	return DCMBodyToInertial(att).Quat()
}

// WindDirectionBody returns the unit direction the relative wind comes from,
// expressed in body axes. At α=β=0 the wind arrives from directly ahead.
func WindDirectionBody(alpha, beta float64) types.Vec3 {
	sa, ca := math.Sincos(alpha)
	sb, cb := math.Sincos(beta)
	return types.Vec3{
		X: sb * ca,
		Y: -sa,
		Z: cb * ca,
	}
}

// GravityBody resolves the NED gravity vector (0,0,g) into body axes for
// the given roll and pitch. Yaw has no effect on gravity.
func GravityBody(roll, pitch float64, g float64) types.Vec3 {
	sp, cp := math.Sincos(pitch)
	sr, cr := math.Sincos(roll)
	return types.Vec3{
		X: -g * sp,
		Y: g * sr * cp,
		Z: g * cr * cp,
	}
}

// EulerRatesFromBodyRates converts body angular rates to Euler-angle rates
// for the current roll and pitch. Conditioning degrades as pitch approaches
// ±π/2 (1/cosθ terms); the caller must avoid operating continuously through
// that attitude.
func EulerRatesFromBodyRates(rates types.BodyRates, roll, pitch float64) types.EulerRates {
	sr, cr := math.Sincos(roll)
	tp := math.Tan(pitch)
	cp := math.Cos(pitch)
	return types.EulerRates{
		RollDot:  rates.P + (rates.Q*sr+rates.R*cr)*tp,
		PitchDot: rates.Q*cr - rates.R*sr,
		YawDot:   (rates.Q*sr + rates.R*cr) / cp,
	}
}

// BodyRatesFromEulerRates is the exact inverse of EulerRatesFromBodyRates
// away from pitch = ±π/2. At θ=0 the yaw rate couples purely into r;
// nonzero pitch couples it into p as −ψ̇·sinθ.
func BodyRatesFromEulerRates(rates types.EulerRates, roll, pitch float64) types.BodyRates {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	return types.BodyRates{
		P: rates.RollDot - rates.YawDot*sp,
		Q: rates.PitchDot*cr + rates.YawDot*cp*sr,
		R: -rates.PitchDot*sr + rates.YawDot*cp*cr,
	}
}

// BodyQuatFromWindAttitude composes a body orientation from a wind-frame
/// attitude plus angle of attack and sideslip:
// q_wind · R(−α about body x) · R(β about body y).
// It reduces to the wind attitude's quaternion when α=β=0.
func BodyQuatFromWindAttitude(windAtt types.Attitude, alpha, beta float64) types.Quat {
	qw := BodyToInertialQuat(windAtt)
	qa := types.AxisAngleQuat(types.Vec3{X: 1}, -alpha)
	qb := types.AxisAngleQuat(types.Vec3{Y: 1}, beta)
	return qw.Mul(qa).Mul(qb).Normalize()
}
