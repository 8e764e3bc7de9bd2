// Package cliboot wires the two cross-cutting, environment-opt-in concerns
// every cmd/* entry point that touches a dataset or an engine shares:
// Prometheus telemetry and a Redis-backed dscache tier. Centralizing them
// here means each command's main only calls two functions instead of
// duplicating env-var parsing per binary.
package cliboot

import (
	"os"
	"strings"
	"time"

	"github.com/riondato/truefreq/dscache"
	"github.com/riondato/truefreq/telemetry"
)

// EnableTelemetry turns on the package-level Prometheus counters/histograms
// (telemetry.ObservePValue and friends are no-ops otherwise) when
// TFI_METRICS_ENABLED or TFI_METRICS_ADDR is set to a non-empty value. If
// TFI_METRICS_ADDR is set, a dedicated /metrics HTTP server is started at
// that address (e.g. ":9090"); otherwise metrics are only collected
// in-process.
func EnableTelemetry() {
	addr := os.Getenv("TFI_METRICS_ADDR")
	if addr == "" && os.Getenv("TFI_METRICS_ENABLED") == "" {
		return
	}
	telemetry.Enable(telemetry.Config{Enabled: true, MetricsAddr: addr})
}

// NewCache returns a Redis-backed dscache.Cache when TFI_REDIS_ADDRS names
// one or more space-separated Redis addresses, falling back to an
// in-process-only Cache otherwise. TFI_REDIS_TTL, if set, overrides the
// default 24h entry lifetime (parsed as a Go duration, e.g. "1h30m").
func NewCache() *dscache.Cache {
	raw := os.Getenv("TFI_REDIS_ADDRS")
	if raw == "" {
		return dscache.New()
	}
	addrs := strings.Fields(raw)
	ttl := 24 * time.Hour
	if rawTTL := os.Getenv("TFI_REDIS_TTL"); rawTTL != "" {
		if parsed, err := time.ParseDuration(rawTTL); err == nil {
			ttl = parsed
		}
	}
	return dscache.NewWithRemote(dscache.NewGoRedisRemote(addrs), ttl)
}
