package telemetry

import (
	"context"
	"log"
	"time"

	"github.com/hartmandrector/polarsim/internal/dynamics"
	"github.com/hartmandrector/polarsim/pkg/types"
)

// SnapshotUpdater is implemented by state.Manager. Defined here (consuming
// side) to avoid import cycles.
type SnapshotUpdater interface {
	Update(snap dynamics.Snapshot)
}

// PollerConfig holds configuration for the Poller. DefaultAirDensity is
// substituted when a sample carries no air density of its own.
type PollerConfig struct {
	PollInterval      time.Duration
	DefaultAirDensity float64
}

// DefaultPollerConfig returns a PollerConfig with sensible defaults.
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{PollInterval: 50 * time.Millisecond, DefaultAirDensity: 1.225}
}

// Poller periodically requests flight-state samples, runs the dynamics
// pipeline on each one, and feeds the resulting snapshots to a
// SnapshotUpdater. It also owns the time integration of the pendulum swing
// state, advanced by explicit Euler with the measured inter-sample dt — the
// dynamics core itself evaluates only instantaneous derivatives.
type Poller struct {
	client    *Client
	evaluator *dynamics.Evaluator
	updater   SnapshotUpdater
	cfg       PollerConfig

	pend       dynamics.PendulumState
	lastSample time.Time
}

// NewPoller creates a Poller backed by the given client, evaluator, and updater.
func NewPoller(client *Client, evaluator *dynamics.Evaluator, updater SnapshotUpdater, cfg PollerConfig) *Poller {
	return &Poller{client: client, evaluator: evaluator, updater: updater, cfg: cfg}
}

// Start blocks, sending periodic state requests and processing responses.
// It exits when ctx is cancelled or the connection is closed.
func (p *Poller) Start(ctx context.Context) error {
	interval := p.cfg.PollInterval
	if interval == 0 {
		interval = 50 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan error, 1)
	go p.readLoop(done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			return err
		case <-ticker.C:
			if err := p.client.RequestState(); err != nil {
				return err
			}
		}
	}
}

// readLoop reads feed messages and dispatches flight-state samples.
func (p *Poller) readLoop(done chan<- error) {
	for {
		h, data, err := p.client.ReadNext()
		if err != nil {
			done <- err
			return
		}
		switch h.Type {
		case MsgFlightState:
			st, err := ParseFlightStatePayload(data)
			if err != nil {
				log.Printf("telemetry: parse flight state payload: %v", err)
				continue
			}
			p.handleSample(time.Now(), st)
		case MsgError:
			log.Printf("telemetry: received error message (id=%d)", h.ID)
		}
	}
}

// handleSample evaluates one sample, advances the pendulum swing state by
// the elapsed wall time, and publishes the snapshot.
func (p *Poller) handleSample(now time.Time, st types.FlightState) {
	if st.AirDensity == 0 {
		st.AirDensity = p.cfg.DefaultAirDensity
	}
	snap := p.evaluator.Evaluate(st, p.pend)
	p.updater.Update(snap)

	if !p.lastSample.IsZero() {
		dt := now.Sub(p.lastSample).Seconds()
		p.pend.Rate += snap.PendulumAccel * dt
		p.pend.Angle += p.pend.Rate * dt
	}
	p.lastSample = now
}
