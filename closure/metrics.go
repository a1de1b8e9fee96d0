package closure

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BuildMetrics tracks closure-axiom construction, mirroring the
// teacher's metrics package shape (a struct of prometheus instruments
// plus a constructor that registers them against a caller-supplied
// registry).
type BuildMetrics struct {
	conjunctCount prometheus.Gauge
	buildSeconds  prometheus.Histogram

	lastConjuncts int
	lastSeconds   float64
}

// NewBuildMetrics registers ClosedAx build instrumentation against reg.
func NewBuildMetrics(reg prometheus.Registerer) (*BuildMetrics, error) {
	conjunctCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tvl_closure_axiom_conjuncts",
		Help: "Number of top-level conjuncts in the most recently built closure axiom.",
	})
	buildSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tvl_closure_axiom_build_seconds",
		Help:    "Time to build the closure axiom for a network.",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(conjunctCount); err != nil {
		return nil, err
	}
	if err := reg.Register(buildSeconds); err != nil {
		return nil, err
	}
	return &BuildMetrics{conjunctCount: conjunctCount, buildSeconds: buildSeconds}, nil
}

// Observe records one ClosedAx build's wall-clock duration and
// resulting conjunct count.
func (m *BuildMetrics) Observe(seconds float64, conjuncts int) {
	if m == nil {
		return
	}
	m.buildSeconds.Observe(seconds)
	m.conjunctCount.Set(float64(conjuncts))
	m.lastSeconds = seconds
	m.lastConjuncts = conjuncts
}

// Snapshot returns the most recently observed build duration and
// conjunct count, for callers that want to report them without
// scraping the Prometheus registry (the CLI's one-shot invocations).
func (m *BuildMetrics) Snapshot() (seconds float64, conjuncts int) {
	if m == nil {
		return 0, 0
	}
	return m.lastSeconds, m.lastConjuncts
}
