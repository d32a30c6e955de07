// Package metrics exposes the engine's navigation counters/histograms as
// prometheus collectors, registered against a caller-supplied registry so
// tests can use a private one instead of the global default.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Navigation bundles every metric the engine orchestrator updates around a
// single navigate() call.
type Navigation struct {
	Total             *prometheus.CounterVec
	Duration          prometheus.Histogram
	StylesheetFetches *prometheus.CounterVec
	InFlightFetches   prometheus.Gauge
}

// NewNavigation registers the navigation metric family against reg.
func NewNavigation(reg prometheus.Registerer) *Navigation {
	n := &Navigation{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gocko",
			Subsystem: "engine",
			Name:      "navigations_total",
			Help:      "Navigations attempted, partitioned by outcome.",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gocko",
			Subsystem: "engine",
			Name:      "navigate_duration_seconds",
			Help:      "Wall-clock time spent in navigate(), from load through layout.",
			Buckets:   prometheus.DefBuckets,
		}),
		StylesheetFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gocko",
			Subsystem: "engine",
			Name:      "stylesheet_fetches_total",
			Help:      "Linked stylesheet fetches, partitioned by outcome.",
		}, []string{"outcome"}),
		InFlightFetches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gocko",
			Subsystem: "engine",
			Name:      "stylesheet_fetches_in_flight",
			Help:      "Linked stylesheet fetches currently outstanding.",
		}),
	}
	reg.MustRegister(n.Total, n.Duration, n.StylesheetFetches, n.InFlightFetches)
	return n
}

// NewUnregisteredNavigation builds a Navigation against its own private
// registry, for callers (tests, short-lived CLI runs) that don't want to
// touch prometheus's global default registry.
func NewUnregisteredNavigation() *Navigation {
	return NewNavigation(prometheus.NewRegistry())
}
