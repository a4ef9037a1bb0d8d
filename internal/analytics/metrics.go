package analytics

import "github.com/prometheus/client_golang/prometheus"

var (
	eventsTotal   *prometheus.CounterVec
	droppedTotal  prometheus.Counter
	storeFailures prometheus.Counter
)

// InitPrometheusMetrics registers the aggregator's counters with the
// default registry. Call once from main; tests that skip it run with
// metrics disabled.
func InitPrometheusMetrics() {
	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamedex",
			Name:      "events_total",
			Help:      "Total number of accepted analytics events.",
		},
		[]string{"type"},
	)
	droppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gamedex",
			Name:      "events_dropped_total",
			Help:      "Events rejected for having an unknown type.",
		},
	)
	storeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gamedex",
			Name:      "state_store_failures_total",
			Help:      "Analytics state persistence failures (swallowed).",
		},
	)
	prometheus.MustRegister(eventsTotal, droppedTotal, storeFailures)
}

func incEvent(t EventType) {
	if eventsTotal != nil {
		eventsTotal.WithLabelValues(string(t)).Inc()
	}
}

func incDropped() {
	if droppedTotal != nil {
		droppedTotal.Inc()
	}
}

func incStoreFailure() {
	if storeFailures != nil {
		storeFailures.Inc()
	}
}
