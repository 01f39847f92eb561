package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hartmandrector/polarsim/internal/dynamics"
	"github.com/hartmandrector/polarsim/internal/frame"
	"github.com/hartmandrector/polarsim/internal/state"
	"github.com/hartmandrector/polarsim/internal/telemetry"
	"github.com/hartmandrector/polarsim/internal/vehicle"
	"github.com/hartmandrector/polarsim/pkg/types"
)

// SnapshotGetter is the subset of state.Manager used by the MCP server.
type SnapshotGetter interface {
	GetSnapshot() (dynamics.Snapshot, error)
}

// Server wraps the MCP SDK server and exposes the flight-dynamics core as tools.
type Server struct {
	sdk      *mcpsdk.Server
	state    SnapshotGetter
	registry *vehicle.Registry
	gravity  float64
}

// NewServer creates a Server and registers the dynamics tools.
func NewServer(sg SnapshotGetter, registry *vehicle.Registry, gravity float64) *Server {
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    "polarsim",
			Version: "1.0.0",
		}, nil),
		state:    sg,
		registry: registry,
		gravity:  gravity,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_flight_dynamics",
		Description: "Returns the latest evaluated flight dynamics: aerodynamic force and moment about the CG, linear and angular accelerations, and the body orientation quaternion.",
	}, s.handleGetFlightDynamics)

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_orientation",
		Description: "Computes the body-to-inertial orientation quaternion and the gravity vector in body axes for a 3-2-1 Euler attitude, optionally composed with angle of attack and sideslip as a wind-frame attitude.",
	}, s.handleGetOrientation)

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "list_vehicles",
		Description: "Lists the available vehicle configurations with their reference dimensions and derived mass properties.",
	}, s.handleListVehicles)

	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// getDynamicsInput holds arguments for the get_flight_dynamics tool.
type getDynamicsInput struct {
	IncludePendulum bool `json:"include_pendulum,omitempty"`
}

// pendulumPayload is the optional pendulum block of a dynamics response.
type pendulumPayload struct {
	SwingAngle  float64    `json:"swing_angle_rad"`
	SwingRate   float64    `json:"swing_rate_rad_s"`
	SwingAccel  float64    `json:"swing_accel_rad_s2"`
	Orientation types.Quat `json:"pilot_orientation"`
}

// FlightDynamicsResponse is the JSON payload returned on success.
type FlightDynamicsResponse struct {
	Vehicle      string           `json:"vehicle"`
	Attitude     types.Attitude   `json:"attitude_rad"`
	Orientation  types.Quat       `json:"orientation"`
	EulerRates   types.EulerRates `json:"euler_rates_rad_s"`
	Force        types.Vec3       `json:"force_n"`
	Moment       types.Vec3       `json:"moment_nm"`
	LinearAccel  types.Vec3       `json:"linear_accel_m_s2"`
	AngularAccel types.BodyRates  `json:"angular_accel_rad_s2"`
	Pendulum     *pendulumPayload `json:"pendulum,omitempty"`
	Timestamp    string           `json:"timestamp"`
}

// FeedUnavailableResponse is returned when no fresh dynamics data exists.
type FeedUnavailableResponse struct {
	Available   bool   `json:"available"`
	Error       string `json:"error"`
	Code        string `json:"code"`
	Recoverable bool   `json:"recoverable"`
	Suggestion  string `json:"suggestion"`
	Timestamp   string `json:"timestamp"`
}

func (s *Server) handleGetFlightDynamics(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input getDynamicsInput,
) (*mcpsdk.CallToolResult, any, error) {
	snap, err := s.state.GetSnapshot()
	if err != nil {
		return s.errorResult(err), nil, nil
	}

	resp := FlightDynamicsResponse{
		Vehicle:      snap.Vehicle,
		Attitude:     snap.Attitude,
		Orientation:  snap.Orientation,
		EulerRates:   snap.EulerRates,
		Force:        snap.Force,
		Moment:       snap.Moment,
		LinearAccel:  snap.LinearAccel,
		AngularAccel: snap.AngularAccel,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if input.IncludePendulum {
		resp.Pendulum = &pendulumPayload{
			SwingAngle:  snap.Pendulum.Angle,
			SwingRate:   snap.Pendulum.Rate,
			SwingAccel:  snap.PendulumAccel,
			Orientation: snap.PilotOrientation(),
		}
	}

	return textResult(resp, false)
}

// getOrientationInput holds arguments for the get_orientation tool. Angles
// are radians. When alpha or beta is set, the attitude is treated as a
// wind-frame attitude and composed with the wind angles.
type getOrientationInput struct {
	Roll  float64  `json:"roll_rad,omitempty"`
	Pitch float64  `json:"pitch_rad,omitempty"`
	Yaw   float64  `json:"yaw_rad,omitempty"`
	Alpha *float64 `json:"alpha_rad,omitempty"`
	Beta  *float64 `json:"beta_rad,omitempty"`
}

// OrientationResponse is the JSON payload of the get_orientation tool.
type OrientationResponse struct {
	Orientation types.Quat `json:"orientation"`
	GravityBody types.Vec3 `json:"gravity_body_m_s2"`
	WindBody    types.Vec3 `json:"wind_dir_body"`
}

func (s *Server) handleGetOrientation(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input getOrientationInput,
) (*mcpsdk.CallToolResult, any, error) {
	att := types.Attitude{Roll: input.Roll, Pitch: input.Pitch, Yaw: input.Yaw}

	var alpha, beta float64
	if input.Alpha != nil {
		alpha = *input.Alpha
	}
	if input.Beta != nil {
		beta = *input.Beta
	}

	resp := OrientationResponse{
		Orientation: frame.BodyToInertialQuat(att),
		GravityBody: frame.GravityBody(att.Roll, att.Pitch, s.gravity),
		WindBody:    frame.WindDirectionBody(alpha, beta),
	}
	if input.Alpha != nil || input.Beta != nil {
		resp.Orientation = frame.BodyQuatFromWindAttitude(att, alpha, beta)
	}

	return textResult(resp, false)
}

// listVehiclesInput holds arguments for the list_vehicles tool.
type listVehiclesInput struct{}

// VehicleSummary describes one registry entry.
type VehicleSummary struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	ReferenceLength float64                 `json:"reference_length_m"`
	TotalMass       float64                 `json:"total_mass_kg"`
	CG              types.Vec3              `json:"cg_m"`
	Inertia         types.InertiaComponents `json:"inertia_kg_m2"`
	MassSegments    int                     `json:"mass_segments"`
	AeroSegments    int                     `json:"aero_segments"`
	HasPendulum     bool                    `json:"has_pendulum"`
}

// VehicleListResponse is the JSON payload of the list_vehicles tool.
type VehicleListResponse struct {
	Vehicles []VehicleSummary `json:"vehicles"`
}

func (s *Server) handleListVehicles(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input listVehiclesInput,
) (*mcpsdk.CallToolResult, any, error) {
	var resp VehicleListResponse
	for _, name := range s.registry.Names() {
		v, ok := s.registry.Get(name)
		if !ok {
			continue
		}
		resp.Vehicles = append(resp.Vehicles, VehicleSummary{
			Name:            v.Name,
			Description:     v.Description,
			ReferenceLength: v.ReferenceLength,
			TotalMass:       v.TotalMass,
			CG:              v.CG,
			Inertia:         v.Inertia,
			MassSegments:    len(v.MassSegments),
			AeroSegments:    len(v.AeroSegments),
			HasPendulum:     v.HasPendulum(),
		})
	}
	return textResult(resp, false)
}

func (s *Server) errorResult(err error) *mcpsdk.CallToolResult {
	resp := FeedUnavailableResponse{
		Available: false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch {
	case errors.Is(err, state.ErrStale):
		resp.Code = "DATA_STALE"
		resp.Recoverable = true
		resp.Suggestion = "Wait for the telemetry feed to send fresh samples."
	case errors.Is(err, telemetry.ErrNotConnected):
		resp.Code = "FEED_NOT_CONNECTED"
		resp.Recoverable = true
		resp.Suggestion = "Ensure the telemetry feed is running and reachable."
	default:
		resp.Code = "UNKNOWN_ERROR"
		resp.Recoverable = false
		resp.Suggestion = "Check application logs for details."
	}

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}

// textResult marshals v into a single text content result.
func textResult(v any, isError bool) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: isError,
	}, nil, nil
}
