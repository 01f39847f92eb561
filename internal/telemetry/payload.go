package telemetry

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hartmandrector/polarsim/pkg/types"
)

// flightStateFields is the number of packed float64 fields in a
// MsgFlightState payload. The order is fixed: roll, pitch, yaw, p, q, r,
// u, v, w, alpha, beta, airspeed, air density.
const flightStateFields = 13

// FlightStatePayloadSize is the byte length of a MsgFlightState payload.
const FlightStatePayloadSize = flightStateFields * 8

// ParseFlightStatePayload decodes a packed little-endian float64 payload
// into a FlightState. Expects exactly FlightStatePayloadSize bytes.
func ParseFlightStatePayload(data []byte) (types.FlightState, error) {
	if len(data) < FlightStatePayloadSize {
		return types.FlightState{}, fmt.Errorf("payload too short: got %d bytes, need %d", len(data), FlightStatePayloadSize)
	}

	var vals [flightStateFields]float64
	for i := range vals {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		vals[i] = math.Float64frombits(bits)
	}

	return types.FlightState{
		Roll:       vals[0],
		Pitch:      vals[1],
		Yaw:        vals[2],
		P:          vals[3],
		Q:          vals[4],
		R:          vals[5],
		U:          vals[6],
		V:          vals[7],
		W:          vals[8],
		Alpha:      vals[9],
		Beta:       vals[10],
		Airspeed:   vals[11],
		AirDensity: vals[12],
	}, nil
}

// AppendFlightStatePayload appends the packed payload encoding of a
// FlightState, the inverse of ParseFlightStatePayload. Used by feed
// implementations and tests.
func AppendFlightStatePayload(buf []byte, st types.FlightState) []byte {
	for _, v := range [flightStateFields]float64{
		st.Roll, st.Pitch, st.Yaw,
		st.P, st.Q, st.R,
		st.U, st.V, st.W,
		st.Alpha, st.Beta, st.Airspeed, st.AirDensity,
	} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}
