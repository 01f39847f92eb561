// Package eom evaluates the rigid-body equations of motion in body axes.
// Both evaluators are stateless: they return instantaneous derivatives for a
// state snapshot and leave time integration entirely to the caller.
package eom

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hartmandrector/polarsim/pkg/types"
)

// Translational returns the body-frame linear accelerations (u̇, v̇, ẇ) for
// the given applied force, mass, body velocity, and body rates, including
// the rotational (Coriolis) coupling terms of the body-frame formulation.
// Zero or negative mass yields zero acceleration rather than a division by
// zero.
func Translational(force types.Vec3, mass float64, velocity types.Vec3, rates types.BodyRates) types.Vec3 {
	if mass <= 0 {
		return types.Vec3{}
	}
	u, v, w := velocity.X, velocity.Y, velocity.Z
	p, q, r := rates.P, rates.Q, rates.R
	return types.Vec3{
		X: force.X/mass - (q*w - r*v),
		Y: force.Y/mass - (r*u - p*w),
		Z: force.Z/mass - (p*v - q*u),
	}
}

// Rotational returns the body angular accelerations (ṗ, q̇, ṙ) by solving
// Euler's equations I·ω̇ = M − ω×(I·ω) with the full (possibly
// non-diagonal) inertia tensor, so product-of-inertia coupling routes a
// moment about one axis into acceleration about the others. A singular
// inertia tensor yields zero acceleration.
func Rotational(moment types.Vec3, inertia types.InertiaComponents, rates types.BodyRates) types.BodyRates {
	im := mat.NewSymDense(3, []float64{
		inertia.Ixx, inertia.Ixy, inertia.Ixz,
		inertia.Ixy, inertia.Iyy, inertia.Iyz,
		inertia.Ixz, inertia.Iyz, inertia.Izz,
	})

	omega := types.Vec3{X: rates.P, Y: rates.Q, Z: rates.R}
	h := types.Vec3{ // angular momentum I·ω
		X: inertia.Ixx*rates.P + inertia.Ixy*rates.Q + inertia.Ixz*rates.R,
		Y: inertia.Ixy*rates.P + inertia.Iyy*rates.Q + inertia.Iyz*rates.R,
		Z: inertia.Ixz*rates.P + inertia.Iyz*rates.Q + inertia.Izz*rates.R,
	}
	rhs := moment.Sub(omega.Cross(h))

	var accel mat.VecDense
	if err := accel.SolveVec(im, mat.NewVecDense(3, []float64{rhs.X, rhs.Y, rhs.Z})); err != nil {
		return types.BodyRates{}
	}
	return types.BodyRates{
		P: accel.AtVec(0),
		Q: accel.AtVec(1),
		R: accel.AtVec(2),
	}
}
