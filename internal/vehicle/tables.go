package vehicle

import "github.com/hartmandrector/polarsim/pkg/types"

// Built-in configurations. Positions are normalized by ReferenceLength in
// NED body axes (x forward, y right, z down); mass ratios are fractions of
// TotalMass. The datum of each table is the configuration's own origin, not
// its CG.

var wingsuit = Vehicle{
	Name:            "wingsuit",
	Description:     "Prone wingsuit pilot, head forward",
	ReferenceLength: 1.875,
	TotalMass:       85,
	MassSegments: []types.MassSegment{
		{Name: "head", MassRatio: 0.08, Position: types.Vec3{X: 0.44}},
		{Name: "torso", MassRatio: 0.46, Position: types.Vec3{X: 0.10, Z: 0.02}},
		{Name: "arm-left", MassRatio: 0.05, Position: types.Vec3{X: 0.12, Y: -0.22}},
		{Name: "arm-right", MassRatio: 0.05, Position: types.Vec3{X: 0.12, Y: 0.22}},
		{Name: "legs", MassRatio: 0.32, Position: types.Vec3{X: -0.30}},
		{Name: "rig", MassRatio: 0.04, Position: types.Vec3{X: 0.05, Z: -0.06}},
	},
	AeroSegments: []types.AeroSegment{
		{Name: "center-body", Position: types.Vec3{X: 0.05}, Area: 0.55, Incidence: 0},
		{Name: "arm-wing-left", Position: types.Vec3{X: 0.10, Y: -0.25}, Area: 0.35, Incidence: 0.02},
		{Name: "arm-wing-right", Position: types.Vec3{X: 0.10, Y: 0.25}, Area: 0.35, Incidence: 0.02},
		{Name: "leg-wing", Position: types.Vec3{X: -0.32}, Area: 0.45, Incidence: -0.03},
	},
}

var canopyPilot = Vehicle{
	Name:            "canopy",
	Description:     "Ram-air canopy with suspended pilot",
	ReferenceLength: 3.0,
	TotalMass:       95,
	MassSegments: []types.MassSegment{
		{Name: "canopy", MassRatio: 0.035, Position: types.Vec3{X: 0.10, Z: -2.35}},
		{Name: "lines", MassRatio: 0.012, Position: types.Vec3{X: 0.02, Z: -1.20}},
		{Name: "risers", MassRatio: 0.008, Position: types.Vec3{Z: -0.18}},
		{Name: "pilot-head", MassRatio: 0.075, Position: types.Vec3{Z: -0.16}},
		{Name: "pilot-torso", MassRatio: 0.48, Position: types.Vec3{Z: 0.04}},
		{Name: "pilot-legs", MassRatio: 0.39, Position: types.Vec3{X: 0.04, Z: 0.26}},
	},
	AeroSegments: []types.AeroSegment{
		{Name: "cell-1", Position: types.Vec3{X: 0.08, Y: -0.95, Z: -2.20}, Area: 2.6, Incidence: -0.10},
		{Name: "cell-2", Position: types.Vec3{X: 0.09, Y: -0.63, Z: -2.30}, Area: 3.1, Incidence: -0.08},
		{Name: "cell-3", Position: types.Vec3{X: 0.10, Y: -0.32, Z: -2.36}, Area: 3.4, Incidence: -0.07},
		{Name: "cell-4", Position: types.Vec3{X: 0.10, Y: 0, Z: -2.38}, Area: 3.5, Incidence: -0.07},
		{Name: "cell-5", Position: types.Vec3{X: 0.10, Y: 0.32, Z: -2.36}, Area: 3.4, Incidence: -0.07},
		{Name: "cell-6", Position: types.Vec3{X: 0.09, Y: 0.63, Z: -2.30}, Area: 3.1, Incidence: -0.08},
		{Name: "cell-7", Position: types.Vec3{X: 0.08, Y: 0.95, Z: -2.20}, Area: 2.6, Incidence: -0.10},
		{Name: "pilot-drag", Position: types.Vec3{Z: 0.05}, Area: 0.5, Incidence: 0},
	},
	PilotSegments: []types.MassSegment{
		{Name: "pilot-head", MassRatio: 0.075, Position: types.Vec3{Z: -0.16}},
		{Name: "pilot-torso", MassRatio: 0.48, Position: types.Vec3{Z: 0.04}},
		{Name: "pilot-legs", MassRatio: 0.39, Position: types.Vec3{X: 0.04, Z: 0.26}},
	},
	Pivot: &RiserPivot{X: 0, Z: -0.18},
}

var skydiver = Vehicle{
	Name:            "skydiver",
	Description:     "Belly-to-earth skydiver",
	ReferenceLength: 1.875,
	TotalMass:       77.5,
	MassSegments: []types.MassSegment{
		{Name: "head", MassRatio: 0.08, Position: types.Vec3{X: 0.42}},
		{Name: "torso", MassRatio: 0.50, Position: types.Vec3{X: 0.08}},
		{Name: "arms", MassRatio: 0.10, Position: types.Vec3{X: 0.18}},
		{Name: "legs", MassRatio: 0.32, Position: types.Vec3{X: -0.28, Z: -0.04}},
	},
	AeroSegments: []types.AeroSegment{
		{Name: "upper-body", Position: types.Vec3{X: 0.15}, Area: 0.35, Incidence: 0},
		{Name: "lower-body", Position: types.Vec3{X: -0.20}, Area: 0.35, Incidence: 0},
	},
}

var aircraft = Vehicle{
	Name:            "aircraft",
	Description:     "Light single-engine aircraft",
	ReferenceLength: 7.5,
	TotalMass:       757,
	MassSegments: []types.MassSegment{
		{Name: "engine", MassRatio: 0.17, Position: types.Vec3{X: 0.20}},
		{Name: "cabin", MassRatio: 0.48, Position: types.Vec3{X: 0.02, Z: 0.01}},
		{Name: "wing", MassRatio: 0.16, Position: types.Vec3{X: 0.01, Z: -0.05}},
		{Name: "fuel-left", MassRatio: 0.06, Position: types.Vec3{Y: -0.18, Z: -0.05}},
		{Name: "fuel-right", MassRatio: 0.06, Position: types.Vec3{Y: 0.18, Z: -0.05}},
		{Name: "tail", MassRatio: 0.07, Position: types.Vec3{X: -0.55, Z: -0.02}},
	},
	AeroSegments: []types.AeroSegment{
		{Name: "wing-left", Position: types.Vec3{X: 0.01, Y: -0.30, Z: -0.05}, Area: 7.4, Incidence: 0.026},
		{Name: "wing-right", Position: types.Vec3{X: 0.01, Y: 0.30, Z: -0.05}, Area: 7.4, Incidence: 0.026},
		{Name: "stabilizer", Position: types.Vec3{X: -0.55}, Area: 2.0, Incidence: -0.05},
		{Name: "fin", Position: types.Vec3{X: -0.56, Z: -0.08}, Area: 1.1, Incidence: 0},
	},
}
