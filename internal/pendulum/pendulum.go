// Package pendulum models a pilot suspended below a riser attachment as a
// single-degree-of-freedom pendulum in the pitch plane. The swing angle is
// pilot pitch minus parent-body pitch, so a pilot hanging straight below the
// pivot sits at zero swing. The parent body's own pitch acceleration couples
// into the swing as an inertial reaction torque.
package pendulum

import (
	"math"

	"github.com/hartmandrector/polarsim/pkg/types"
)

const (
	gravity = 9.81 // m/s²

	// DefaultReferenceHeight and DefaultTotalWeight scale pilot mass
	// tables authored in normalized coordinates.
	DefaultReferenceHeight = 1.875 // m
	DefaultTotalWeight     = 77.5  // kg

	// Flat-plate drag model for swing damping.
	dragCoefficient = 1.0
	frontalArea     = 0.5 // m², whole-pilot reference area
)

// Params holds the derived pendulum parameters of a pilot swinging about a
// riser pivot. Derivation is cheap; callers recompute on configuration
// change rather than caching.
type Params struct {
	PilotMass float64 // kg
	IyRiser   float64 // kg·m², pitch-axis inertia about the pivot
	RiserToCG float64 // m, pivot-to-CG distance
	CGOffsetX float64 // m, CG offset from pivot along body x
	CGOffsetZ float64 // m, CG offset from pivot along body z
}

// ComputeParams derives pendulum parameters from the pilot's mass segments
// and the riser pivot location. Segment positions and the pivot are
// normalized by referenceHeight; mass ratios scale totalWeight. An empty or
// zero-mass segment set yields zero parameters.
func ComputeParams(segments []types.MassSegment, pivotX, pivotZ, referenceHeight, totalWeight float64) Params {
	var p Params
	var sx, sz float64
	for _, seg := range segments {
		m := seg.MassRatio * totalWeight
		dx := (seg.Position.X - pivotX) * referenceHeight
		dz := (seg.Position.Z - pivotZ) * referenceHeight

		p.PilotMass += m
		p.IyRiser += m * (dx*dx + dz*dz)
		sx += m * dx
		sz += m * dz
	}
	if p.PilotMass == 0 {
		return Params{}
	}
	p.CGOffsetX = sx / p.PilotMass
	p.CGOffsetZ = sz / p.PilotMass
	p.RiserToCG = math.Hypot(p.CGOffsetX, p.CGOffsetZ)
	return p
}

// EOM returns the pendulum angular acceleration in rad/s² for the current
// swing state. Three torques act about the pivot: the gravity restoring
// torque −m·g·L·sin(θ), the reaction to the parent body's pitch
// acceleration −Iy·q̇_parent, and the externally supplied aerodynamic
// torque. Degenerate parameters (zero inertia or mass) return exactly 0.
func EOM(p Params, swingAngle, swingRate, aeroTorque, parentPitchAccel float64) float64 {
	if p.IyRiser == 0 || p.PilotMass == 0 {
		return 0
	}
	gravityTorque := -p.PilotMass * gravity * p.RiserToCG * math.Sin(swingAngle)
	couplingTorque := -p.IyRiser * parentPitchAccel
	return (gravityTorque + couplingTorque + aeroTorque) / p.IyRiser
}

// SwingDampingTorque returns the quadratic aerodynamic torque opposing the
// swing in N·m. Each segment sweeps through air at swingRate times its
// pivot distance; the resulting flat-plate drag integrates to a torque
// proportional to ρ·ω·|ω| that always opposes the swing and vanishes
// exactly at zero rate. Segment drag area is apportioned by mass ratio.
func SwingDampingTorque(segments []types.MassSegment, pivotX, pivotZ, swingRate, rho, referenceHeight, totalWeight float64) float64 {
	if swingRate == 0 {
		return 0
	}
	var armCubedArea float64 // Σ A_i·r_i³
	for _, seg := range segments {
		dx := (seg.Position.X - pivotX) * referenceHeight
		dz := (seg.Position.Z - pivotZ) * referenceHeight
		r := math.Hypot(dx, dz)
		armCubedArea += seg.MassRatio * frontalArea * r * r * r
	}
	magnitude := 0.5 * rho * dragCoefficient * armCubedArea * swingRate * swingRate
	return -math.Copysign(magnitude, swingRate)
}
