package telemetry

import "errors"

var (
	ErrNotConnected = errors.New("telemetry: not connected")
	ErrTimeout      = errors.New("telemetry: connection timeout")
)
