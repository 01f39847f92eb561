package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Telemetry TelemetryConfig
	Polling   PollingConfig
	Flight    FlightConfig
}

// TelemetryConfig holds telemetry feed TCP connection settings.
type TelemetryConfig struct {
	Host    string
	Port    int
	Timeout time.Duration
	AppName string
}

// PollingConfig holds state polling settings.
type PollingConfig struct {
	Interval       time.Duration
	StaleThreshold time.Duration
}

// FlightConfig selects the vehicle and the atmosphere constants used when a
// telemetry sample does not carry its own air density.
type FlightConfig struct {
	Vehicle    string
	AirDensity float64
	Gravity    float64
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		Telemetry: TelemetryConfig{
			Host:    getEnvString("TELEMETRY_HOST", "127.0.0.1"),
			Port:    getEnvInt("TELEMETRY_PORT", 4560),
			Timeout: getEnvDuration("TELEMETRY_TIMEOUT", 10*time.Second),
			AppName: getEnvString("TELEMETRY_APP_NAME", "polarsim"),
		},
		Polling: PollingConfig{
			Interval:       getEnvDuration("POLL_INTERVAL", 50*time.Millisecond),
			StaleThreshold: getEnvDuration("STALE_THRESHOLD", 2*time.Second),
		},
		Flight: FlightConfig{
			Vehicle:    getEnvString("VEHICLE", "wingsuit"),
			AirDensity: getEnvFloat("AIR_DENSITY", 1.225),
			Gravity:    getEnvFloat("GRAVITY", 9.81),
		},
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
