// Package vehicle holds the authored configuration data of the flying
// bodies the visualizer can display: mass-segment tables, aero-segment
// tables, reference dimensions, and the riser pivot for suspended-pilot
// configurations. Derived mass properties are recomputed from the tables on
// construction rather than memoized in module-level state.
package vehicle

import (
	"fmt"

	"github.com/hartmandrector/polarsim/internal/mass"
	"github.com/hartmandrector/polarsim/internal/pendulum"
	"github.com/hartmandrector/polarsim/pkg/types"
)

// RiserPivot is the normalized pivot location of a suspended pilot, in the
// x-z pitch plane of the parent body.
type RiserPivot struct {
	X float64
	Z float64
}

// Vehicle is one displayable flying-body configuration.
type Vehicle struct {
	Name            string
	Description     string
	ReferenceLength float64 // m, normalizes segment positions
	TotalMass       float64 // kg, scales mass ratios
	MassSegments    []types.MassSegment
	AeroSegments    []types.AeroSegment

	// PilotSegments and Pivot are set only for configurations with a
	// pilot suspended below a riser attachment.
	PilotSegments []types.MassSegment
	Pivot         *RiserPivot

	// Derived on construction.
	CG      types.Vec3 // m, from the body datum
	Inertia types.InertiaComponents
}

// newVehicle computes the derived mass properties of a configuration.
func newVehicle(v Vehicle) Vehicle {
	v.CG = mass.CenterOfMass(v.MassSegments, v.ReferenceLength, v.TotalMass)
	v.Inertia = mass.Inertia(v.MassSegments, v.ReferenceLength, v.TotalMass)
	return v
}

// HasPendulum reports whether the configuration carries a suspended-pilot
// pendulum degree of freedom.
func (v *Vehicle) HasPendulum() bool {
	return v.Pivot != nil && len(v.PilotSegments) > 0
}

// PendulumParams derives the pilot pendulum parameters from the pilot mass
// table and riser pivot. Configurations without a pendulum yield zero
// parameters.
func (v *Vehicle) PendulumParams() pendulum.Params {
	if !v.HasPendulum() {
		return pendulum.Params{}
	}
	return pendulum.ComputeParams(v.PilotSegments, v.Pivot.X, v.Pivot.Z, v.ReferenceLength, v.TotalMass)
}

// Registry holds the allowlist of known vehicle configurations.
type Registry struct {
	vehicles map[string]*Vehicle
	names    []string
}

// NewRegistry creates a registry with all built-in vehicles.
func NewRegistry() *Registry {
	r := &Registry{vehicles: make(map[string]*Vehicle)}
	for _, v := range []Vehicle{wingsuit, canopyPilot, skydiver, aircraft} {
		built := newVehicle(v)
		r.vehicles[built.Name] = &built
		r.names = append(r.names, built.Name)
	}
	return r
}

// Get returns the vehicle with the given name, if it exists.
func (r *Registry) Get(name string) (*Vehicle, bool) {
	v, ok := r.vehicles[name]
	return v, ok
}

// Validate checks that a vehicle name is in the allowlist.
func (r *Registry) Validate(name string) error {
	if _, ok := r.vehicles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, name)
	}
	return nil
}

// Names returns the registered vehicle names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
