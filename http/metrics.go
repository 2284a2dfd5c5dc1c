package http

import (
	"github.com/fwojciec/seogenie"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's Prometheus collectors. Each server owns its
// registry so tests can run side by side without collisions.
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal    prometheus.Counter
	fetchFailures    prometheus.Counter
	adviceFallbacks  prometheus.Counter
	analysisDuration prometheus.Histogram
}

// NewMetrics creates and registers the server's collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seogenie_analyses_total",
			Help: "Number of completed site analyses.",
		}),
		fetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seogenie_fetch_failures_total",
			Help: "Number of site analyses abandoned because the page could not be fetched.",
		}),
		adviceFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seogenie_advice_fallbacks_total",
			Help: "Number of analyses that fell back to static advice.",
		}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "seogenie_analysis_duration_seconds",
			Help:    "End-to-end duration of an analysis run.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.analysesTotal,
		m.fetchFailures,
		m.adviceFallbacks,
		m.analysisDuration,
	)

	return m
}

// observeReport records the outcome of a pipeline run.
func (m *Metrics) observeReport(report *seogenie.Report, seconds float64) {
	m.analysisDuration.Observe(seconds)
	m.fetchFailures.Add(float64(len(report.Warnings)))
	for _, analysis := range []*seogenie.Analysis{report.Site, report.Competitor} {
		if analysis == nil {
			continue
		}
		m.analysesTotal.Inc()
		if analysis.AdviceFallback {
			m.adviceFallbacks.Inc()
		}
	}
}
