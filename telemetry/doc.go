// Package telemetry provides opt-in Prometheus instrumentation for the TFI
// engines and the MILP solver: counters for p-values computed, itemsets
// certified, and solver invocations; histograms for solver wall-clock time
// and negative-border size. All public functions are no-ops until Enable
// is called, so they are safe to sprinkle through engine hot paths.
//
// Modeled on etalazz-vsa's churn package
// (internal/ratelimiter/telemetry/churn/prom_counters.go): metrics are
// registered eagerly in init() so a /metrics endpoint is correct even if
// Enable is never called, and a single atomic.Bool gates every call site.
package telemetry
