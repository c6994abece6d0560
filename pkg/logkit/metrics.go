package logkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure kinds reported by the emission counters.
const (
	failureContract = "contract"
	failureFormat   = "format"
	failureWrite    = "write"
)

// emissionMetrics counts what happens to log calls. All methods tolerate a
// nil receiver so the counters stay strictly opt-in.
type emissionMetrics struct {
	emitted  *prometheus.CounterVec
	dropped  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newEmissionMetrics(reg prometheus.Registerer) *emissionMetrics {
	factory := promauto.With(reg)

	return &emissionMetrics{
		emitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "logkit_records_emitted_total",
			Help: "The total number of records written to the sink",
		}, []string{"level"}),
		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "logkit_records_dropped_total",
			Help: "The total number of calls dropped by the level threshold",
		}, []string{"level"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "logkit_failures_total",
			Help: "The total number of failed log calls by failure kind",
		}, []string{"kind"}),
	}
}

func (m *emissionMetrics) recordEmitted(level Level) {
	if m == nil {
		return
	}
	m.emitted.WithLabelValues(level.String()).Inc()
}

func (m *emissionMetrics) recordDropped(level Level) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(level.String()).Inc()
}

func (m *emissionMetrics) recordFailure(kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}
