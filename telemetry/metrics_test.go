package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/telemetry"
)

func TestObserve_NoopUntilEnabled(t *testing.T) {
	require.False(t, telemetry.Enabled())
	// Must not panic, and must not register any observation while disabled.
	telemetry.ObservePValue("exact")
	telemetry.ObserveCertified("binomial", 3)
	telemetry.ObserveSolverInvocation("optimal", time.Millisecond)
	telemetry.ObserveNegativeBorderSize(5)
}

func TestObserve_RecordsAfterEnable(t *testing.T) {
	telemetry.Enable(telemetry.Config{Enabled: true})
	require.True(t, telemetry.Enabled())

	// The metric vectors are package-private; this exercises every call site
	// for panics (label cardinality, nil maps) without reaching into
	// Prometheus internals from outside the package.
	telemetry.ObservePValue("chernoff")
	telemetry.ObserveCertified("vc", 2)
	telemetry.ObserveSolverInvocation("time-limit-feasible", 250*time.Millisecond)
	telemetry.ObserveNegativeBorderSize(12)
}
