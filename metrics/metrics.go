// Package metrics holds the Prometheus collectors for the segmentation
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sentencer"

// Metrics bundles the collectors registered on one registry.
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	splits          *prometheus.CounterVec
	sentences       prometheus.Counter
	cacheLookups    *prometheus.CounterVec
	batchTexts      prometheus.Histogram
}

// New creates a registry and registers all collectors on it, including the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of latencies for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_total",
			Help:      "Count of texts segmented, by splitter.",
		}, []string{"splitter"}),
		sentences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentences_total",
			Help:      "Count of sentences returned by the rule splitter.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Count of segmentation cache lookups, by result.",
		}, []string{"result"}),
		batchTexts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_texts",
			Help:      "Histogram of texts per batch request.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
	}

	reg.MustRegister(
		m.requestDuration,
		m.splits,
		m.sentences,
		m.cacheLookups,
		m.batchTexts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.With(prometheus.Labels{
		"method": method,
		"route":  route,
		"code":   strconv.Itoa(code),
	}).Observe(elapsed.Seconds())
}

// ObserveSplit records one segmented text and how many sentences it had.
func (m *Metrics) ObserveSplit(splitter string, sentences int) {
	if m == nil {
		return
	}
	m.splits.WithLabelValues(splitter).Inc()
	if splitter == "rule" {
		m.sentences.Add(float64(sentences))
	}
}

// ObserveCache records a cache hit or miss.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveBatch records the size of a batch request.
func (m *Metrics) ObserveBatch(texts int) {
	if m == nil {
		return
	}
	m.batchTexts.Observe(float64(texts))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
