package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartmandrector/polarsim/internal/dynamics"
	internalmcp "github.com/hartmandrector/polarsim/internal/mcp"
	"github.com/hartmandrector/polarsim/internal/state"
	"github.com/hartmandrector/polarsim/internal/telemetry"
	"github.com/hartmandrector/polarsim/internal/vehicle"
	"github.com/hartmandrector/polarsim/pkg/types"
)

// mockSnapshotGetter controls what GetSnapshot returns in tests.
type mockSnapshotGetter struct {
	snap dynamics.Snapshot
	err  error
}

func (m *mockSnapshotGetter) GetSnapshot() (dynamics.Snapshot, error) {
	return m.snap, m.err
}

var sampleSnap = dynamics.Snapshot{
	Vehicle:       "canopy",
	Attitude:      types.Attitude{Roll: 0.05, Pitch: -0.12, Yaw: 1.57},
	Orientation:   types.Quat{W: 1},
	EulerRates:    types.EulerRates{RollDot: 0.01, PitchDot: -0.02, YawDot: 0.03},
	Force:         types.Vec3{X: 12.0, Y: -3.0, Z: -880.0},
	Moment:        types.Vec3{X: 1.5, Y: -4.0, Z: 0.25},
	LinearAccel:   types.Vec3{X: 0.13, Y: -0.03, Z: 0.55},
	AngularAccel:  types.BodyRates{P: 0.1, Q: -0.4, R: 0.02},
	Pendulum:      dynamics.PendulumState{Angle: 0.08, Rate: -0.02},
	PendulumAccel: -0.35,
}

// callTool connects the MCP server via in-memory transports and calls a tool.
func callTool(t *testing.T, sg internalmcp.SnapshotGetter, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	ctx := context.Background()

	srv := internalmcp.NewServer(sg, vehicle.NewRegistry(), 9.81)
	st, ct := mcpsdk.NewInMemoryTransports()

	_, err := srv.Connect(ctx, st)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "1.0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	res, err := cs.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func decodeText(t *testing.T, res *mcpsdk.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	text := res.Content[0].(*mcpsdk.TextContent).Text
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	return m
}

func TestGetFlightDynamicsSuccess(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	res := callTool(t, sg, "get_flight_dynamics", nil)

	require.False(t, res.IsError)
	m := decodeText(t, res)

	assert.Equal(t, "canopy", m["vehicle"])

	force := m["force_n"].(map[string]any)
	assert.InDelta(t, 12.0, force["x"].(float64), 1e-9)
	assert.InDelta(t, -880.0, force["z"].(float64), 1e-9)

	accel := m["linear_accel_m_s2"].(map[string]any)
	assert.InDelta(t, 0.13, accel["x"].(float64), 1e-9)

	ts, ok := m["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestGetFlightDynamicsWithPendulum(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	res := callTool(t, sg, "get_flight_dynamics", map[string]any{"include_pendulum": true})

	require.False(t, res.IsError)
	m := decodeText(t, res)

	pend, ok := m["pendulum"].(map[string]any)
	require.True(t, ok, "pendulum block should be present when include_pendulum=true")
	assert.InDelta(t, 0.08, pend["swing_angle_rad"].(float64), 1e-9)
	assert.InDelta(t, -0.02, pend["swing_rate_rad_s"].(float64), 1e-9)
	assert.InDelta(t, -0.35, pend["swing_accel_rad_s2"].(float64), 1e-9)
}

func TestGetFlightDynamicsWithoutPendulum(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	res := callTool(t, sg, "get_flight_dynamics", map[string]any{"include_pendulum": false})

	require.False(t, res.IsError)
	m := decodeText(t, res)

	_, hasPendulum := m["pendulum"]
	assert.False(t, hasPendulum, "pendulum block should be omitted when include_pendulum=false")
}

func TestGetFlightDynamicsErrStale(t *testing.T) {
	sg := &mockSnapshotGetter{err: state.ErrStale}
	res := callTool(t, sg, "get_flight_dynamics", nil)

	require.True(t, res.IsError)
	m := decodeText(t, res)

	assert.Equal(t, "DATA_STALE", m["code"])
	assert.Equal(t, true, m["recoverable"])
	assert.Equal(t, false, m["available"])
}

func TestGetFlightDynamicsErrNotConnected(t *testing.T) {
	sg := &mockSnapshotGetter{err: telemetry.ErrNotConnected}
	res := callTool(t, sg, "get_flight_dynamics", nil)

	require.True(t, res.IsError)
	m := decodeText(t, res)

	assert.Equal(t, "FEED_NOT_CONNECTED", m["code"])
	assert.Equal(t, true, m["recoverable"])
	assert.Equal(t, false, m["available"])
}

func TestGetFlightDynamicsUnknownError(t *testing.T) {
	sg := &mockSnapshotGetter{err: errors.New("some unexpected error")}
	res := callTool(t, sg, "get_flight_dynamics", nil)

	require.True(t, res.IsError)
	m := decodeText(t, res)

	assert.Equal(t, "UNKNOWN_ERROR", m["code"])
	assert.Equal(t, false, m["recoverable"])
	assert.Equal(t, false, m["available"])
}

func TestGetOrientationLevel(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	res := callTool(t, sg, "get_orientation", map[string]any{
		"roll_rad": 0.0, "pitch_rad": 0.0, "yaw_rad": 0.0,
	})

	require.False(t, res.IsError)
	m := decodeText(t, res)

	q := m["orientation"].(map[string]any)
	assert.InDelta(t, 1.0, q["w"].(float64), 1e-12)
	assert.InDelta(t, 0.0, q["x"].(float64), 1e-12)

	g := m["gravity_body_m_s2"].(map[string]any)
	assert.InDelta(t, 0.0, g["x"].(float64), 1e-12)
	assert.InDelta(t, 9.81, g["z"].(float64), 1e-12)

	wind := m["wind_dir_body"].(map[string]any)
	assert.InDelta(t, 1.0, wind["z"].(float64), 1e-12)
}

func TestGetOrientationPitched(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	pitch := 0.3
	res := callTool(t, sg, "get_orientation", map[string]any{"pitch_rad": pitch})

	require.False(t, res.IsError)
	m := decodeText(t, res)

	g := m["gravity_body_m_s2"].(map[string]any)
	assert.InDelta(t, -9.81*math.Sin(pitch), g["x"].(float64), 1e-12)
	assert.InDelta(t, 9.81*math.Cos(pitch), g["z"].(float64), 1e-12)
}

func TestGetOrientationWithWindAngles(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	alpha := 0.1
	res := callTool(t, sg, "get_orientation", map[string]any{"alpha_rad": alpha})

	require.False(t, res.IsError)
	m := decodeText(t, res)

	// Composing a level wind attitude with alpha rotates the body by -alpha
	// about its x axis, so the quaternion picks up a nonzero x term.
	q := m["orientation"].(map[string]any)
	assert.InDelta(t, math.Cos(alpha/2), q["w"].(float64), 1e-12)
	assert.InDelta(t, -math.Sin(alpha/2), q["x"].(float64), 1e-12)

	wind := m["wind_dir_body"].(map[string]any)
	assert.InDelta(t, -math.Sin(alpha), wind["y"].(float64), 1e-12)
	assert.InDelta(t, math.Cos(alpha), wind["z"].(float64), 1e-12)
}

func TestListVehicles(t *testing.T) {
	sg := &mockSnapshotGetter{snap: sampleSnap}
	res := callTool(t, sg, "list_vehicles", nil)

	require.False(t, res.IsError)
	m := decodeText(t, res)

	list, ok := m["vehicles"].([]any)
	require.True(t, ok)
	require.Len(t, list, 4)

	byName := make(map[string]map[string]any)
	for _, entry := range list {
		v := entry.(map[string]any)
		byName[v["name"].(string)] = v
	}

	require.Contains(t, byName, "canopy")
	canopy := byName["canopy"]
	assert.Equal(t, true, canopy["has_pendulum"])
	assert.InDelta(t, 95.0, canopy["total_mass_kg"].(float64), 1e-9)

	require.Contains(t, byName, "wingsuit")
	assert.Equal(t, false, byName["wingsuit"]["has_pendulum"])
}
