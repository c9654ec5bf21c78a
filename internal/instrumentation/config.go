package instrumentation

import (
	"os"
	"strconv"
)

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name of the service (default: zoomsize)
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Enabled determines if instrumentation is active (default: true)
	// Set to false via INSTRUMENTATION_ENABLED=false to disable metrics.
	Enabled bool
}

// NewConfig returns the instrumentation configuration with environment
// overrides applied.
func NewConfig(version string) Config {
	cfg := Config{
		ServiceName:    "zoomsize",
		ServiceVersion: version,
		Enabled:        true,
	}

	if v := os.Getenv("INSTRUMENTATION_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}

	return cfg
}
