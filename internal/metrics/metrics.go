// Package metrics registers the Prometheus instrumentation for the event
// catalog: load outcomes, cache effectiveness, fetch retries, and filter
// evaluations. The collectors are exposed via promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoadsTotal counts load operations by outcome: "hit" (served from
	// cache), "fetched" (live fetch succeeded), or "error".
	LoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "loads_total",
		Help:      "Number of load operations by outcome",
	}, []string{"outcome"})

	// FetchRetries counts retried upstream requests.
	FetchRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "fetch_retries_total",
		Help:      "Number of retried upstream fetch requests",
	})

	// FilterEvaluations counts full filter passes over the event set.
	FilterEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "filter_evaluations_total",
		Help:      "Number of full filter evaluations",
	})

	// VisibleEvents tracks the size of the last filtered result.
	VisibleEvents = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "eventboard",
		Name:      "visible_events",
		Help:      "Number of events matching the current filters",
	})
)
