package mass

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hartmandrector/polarsim/pkg/types"
)

func TestCenterOfMassEmptySegments(t *testing.T) {
	cg := CenterOfMass(nil, 2.5, 80)
	assert.Equal(t, types.Vec3{}, cg)
}

func TestCenterOfMassSinglePointMass(t *testing.T) {
	segs := []types.MassSegment{
		{Name: "torso", MassRatio: 0.5, Position: types.Vec3{X: 0.4, Y: -0.2, Z: 0.1}},
	}
	cg := CenterOfMass(segs, 2.0, 100)
	assert.InDelta(t, 0.8, cg.X, 1e-12)
	assert.InDelta(t, -0.4, cg.Y, 1e-12)
	assert.InDelta(t, 0.2, cg.Z, 1e-12)
}

func TestCenterOfMassWeightedAverage(t *testing.T) {
	// Two equal masses symmetric about the origin cancel; a third mass
	// pulls the CG toward itself by its mass share.
	segs := []types.MassSegment{
		{Name: "a", MassRatio: 0.25, Position: types.Vec3{X: 1}},
		{Name: "b", MassRatio: 0.25, Position: types.Vec3{X: -1}},
		{Name: "c", MassRatio: 0.5, Position: types.Vec3{Z: 0.5}},
	}
	cg := CenterOfMass(segs, 1.0, 10)
	assert.InDelta(t, 0, cg.X, 1e-12)
	assert.InDelta(t, 0, cg.Y, 1e-12)
	assert.InDelta(t, 0.25, cg.Z, 1e-12)
}

func TestCenterOfMassRatiosNeedNotSumToOne(t *testing.T) {
	// A partial-body table (ratios summing to 0.5) still averages correctly.
	segs := []types.MassSegment{
		{Name: "legs", MassRatio: 0.3, Position: types.Vec3{X: 1}},
		{Name: "feet", MassRatio: 0.2, Position: types.Vec3{X: 2}},
	}
	cg := CenterOfMass(segs, 1.0, 100)
	assert.InDelta(t, 1.4, cg.X, 1e-12)
}

func TestInertiaEmptySegments(t *testing.T) {
	inr := Inertia(nil, 2.5, 80)
	assert.Equal(t, types.InertiaComponents{}, inr)
}

func TestInertiaSinglePointMass(t *testing.T) {
	segs := []types.MassSegment{
		{Name: "p", MassRatio: 1.0, Position: types.Vec3{X: 1, Y: 2, Z: 3}},
	}
	inr := Inertia(segs, 1.0, 2.0)
	assert.InDelta(t, 2*(4+9), inr.Ixx, 1e-12)
	assert.InDelta(t, 2*(1+9), inr.Iyy, 1e-12)
	assert.InDelta(t, 2*(1+4), inr.Izz, 1e-12)
	assert.InDelta(t, -2*1*2, inr.Ixy, 1e-12)
	assert.InDelta(t, -2*1*3, inr.Ixz, 1e-12)
	assert.InDelta(t, -2*2*3, inr.Iyz, 1e-12)
}

func TestInertiaScalesWithReferenceLengthSquared(t *testing.T) {
	segs := []types.MassSegment{
		{Name: "p", MassRatio: 0.5, Position: types.Vec3{X: 0.3, Z: 0.4}},
	}
	one := Inertia(segs, 1.0, 10)
	two := Inertia(segs, 2.0, 10)
	assert.InDelta(t, 4*one.Iyy, two.Iyy, 1e-12)
	assert.InDelta(t, 4*one.Ixz, two.Ixz, 1e-12)
}

func TestInertiaSymmetricDistributionHasZeroProducts(t *testing.T) {
	// Mirror-symmetric masses about the x-z plane: Ixy and Iyz vanish.
	segs := []types.MassSegment{
		{Name: "left", MassRatio: 0.5, Position: types.Vec3{X: 0.2, Y: -0.6, Z: 0.1}},
		{Name: "right", MassRatio: 0.5, Position: types.Vec3{X: 0.2, Y: 0.6, Z: 0.1}},
	}
	inr := Inertia(segs, 1.875, 77.5)
	assert.InDelta(t, 0, inr.Ixy, 1e-12)
	assert.InDelta(t, 0, inr.Iyz, 1e-12)
	assert.NotZero(t, inr.Ixz)
	assert.Greater(t, inr.Ixx, 0.0)
}
