package telemetry

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config controls whether telemetry is active and, optionally, whether a
// dedicated /metrics HTTP endpoint should be started.
type Config struct {
	Enabled bool
	// MetricsAddr, when non-empty, starts a dedicated HTTP server serving
	// /metrics (e.g. ":9090"). Leave empty to register promhttp yourself.
	MetricsAddr string
}

var enabled atomic.Bool

var (
	pvaluesComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tfi_pvalues_computed_total",
		Help: "Total p-value evaluations, labeled by mode (exact/chernoff/weak-chernoff)",
	}, []string{"mode"})

	itemsetsCertifiedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tfi_itemsets_certified_total",
		Help: "Total itemsets certified as true frequent, labeled by engine (binomial/holdout/vc)",
	}, []string{"engine"})

	solverInvocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tfi_solver_invocations_total",
		Help: "Total MILP solver invocations, labeled by terminal status",
	}, []string{"status"})

	solverDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tfi_solver_duration_seconds",
		Help:    "Wall-clock time of MILP solver invocations",
		Buckets: prometheus.DefBuckets,
	})

	negativeBorderSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tfi_negative_border_size",
		Help:    "Size of the computed negative border (plus base set) fed into the MILP",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 4096},
	})
)

func init() {
	prometheus.MustRegister(pvaluesComputedTotal, itemsetsCertifiedTotal, solverInvocationsTotal, solverDurationSeconds, negativeBorderSize)
}

// Enable activates telemetry collection and, if cfg.MetricsAddr is set,
// starts a background HTTP server exposing /metrics. Safe to call more than
// once.
func Enable(cfg Config) {
	enabled.Store(cfg.Enabled)
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			_ = server.ListenAndServe()
		}()
	}
}

// Enabled reports whether telemetry is currently active.
func Enabled() bool { return enabled.Load() }

// ObservePValue records one p-value evaluation under mode (e.g. "exact",
// "chernoff", "weak-chernoff").
func ObservePValue(mode string) {
	if !enabled.Load() {
		return
	}
	pvaluesComputedTotal.WithLabelValues(mode).Inc()
}

// ObserveCertified records n itemsets certified by engine (e.g. "binomial",
// "holdout", "vc").
func ObserveCertified(engine string, n int) {
	if !enabled.Load() || n <= 0 {
		return
	}
	itemsetsCertifiedTotal.WithLabelValues(engine).Add(float64(n))
}

// ObserveSolverInvocation records one MILP solve's wall-clock duration and
// terminal status string.
func ObserveSolverInvocation(status string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	solverInvocationsTotal.WithLabelValues(status).Inc()
	solverDurationSeconds.Observe(d.Seconds())
}

// ObserveNegativeBorderSize records the size of a computed negative-border
// (plus base-set) family before it is handed to the MILP.
func ObserveNegativeBorderSize(n int) {
	if !enabled.Load() {
		return
	}
	negativeBorderSize.Observe(float64(n))
}
