package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hartmandrector/polarsim/internal/config"
	"github.com/hartmandrector/polarsim/internal/dynamics"
	internalmcp "github.com/hartmandrector/polarsim/internal/mcp"
	"github.com/hartmandrector/polarsim/internal/state"
	"github.com/hartmandrector/polarsim/internal/telemetry"
	"github.com/hartmandrector/polarsim/internal/vehicle"
)

func main() {
	if err := run(); err != nil {
		log.Printf("MCP server exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	registry := vehicle.NewRegistry()
	if err := registry.Validate(cfg.Flight.Vehicle); err != nil {
		return err
	}
	veh, _ := registry.Get(cfg.Flight.Vehicle)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	mgr := state.NewManager(cfg.Polling.StaleThreshold)
	evaluator := dynamics.NewEvaluator(veh, vehicle.SegmentModel{}, cfg.Flight.Gravity)
	mcpServer := internalmcp.NewServer(mgr, registry, cfg.Flight.Gravity)

	go runPollerLoop(ctx, cfg, evaluator, mgr)

	if err := mcpServer.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runPollerLoop connects to the telemetry feed and polls for flight state,
// retrying with exponential backoff (1s → 30s cap) on failure.
func runPollerLoop(ctx context.Context, cfg config.Config, ev *dynamics.Evaluator, mgr *state.Manager) {
	backoff := time.Second
	const maxBackoff = 30 * time.Second

	for {
		if err := ctx.Err(); err != nil {
			return
		}

		if err := runPoller(ctx, cfg, ev, mgr); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("telemetry: disconnected: %v (retrying in %s)", err, backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// runPoller creates a feed client and runs the polling loop. Returns when
// the connection is lost or ctx is done.
func runPoller(ctx context.Context, cfg config.Config, ev *dynamics.Evaluator, mgr *state.Manager) error {
	client := telemetry.NewClient(telemetry.Config{
		Host:    cfg.Telemetry.Host,
		Port:    cfg.Telemetry.Port,
		Timeout: cfg.Telemetry.Timeout,
		AppName: cfg.Telemetry.AppName,
	})

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	pollerCfg := telemetry.PollerConfig{
		PollInterval:      cfg.Polling.Interval,
		DefaultAirDensity: cfg.Flight.AirDensity,
	}
	poller := telemetry.NewPoller(client, ev, mgr, pollerCfg)

	return poller.Start(ctx)
}
