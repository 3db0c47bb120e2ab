package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ManifestMetrics provides observability for the action manifest loader and
// the alias/binding cache. Pass nil to disable collection with zero overhead.
type ManifestMetrics interface {
	// RecordLoad records one manifest load, successful or not.
	RecordLoad(duration time.Duration, success bool)

	// RecordFetch records one remote (s3://) manifest or binding file fetch.
	RecordFetch(duration time.Duration, success bool)

	// RecordBindingsProduced records how many suggested bindings a profile's
	// action manifest walk produced.
	RecordBindingsProduced(profilePath string, count int)

	// RecordCacheLookup records an alias/binding cache lookup outcome.
	RecordCacheLookup(hit bool)
}

// NewManifestMetrics returns a Prometheus-backed ManifestMetrics, or nil if
// the registry is not enabled.
func NewManifestMetrics() ManifestMetrics {
	reg := GetRegistry()
	if reg == nil {
		return (*manifestMetrics)(nil)
	}
	return &manifestMetrics{
		loadDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "xrizer_manifest_load_duration_milliseconds",
			Help:    "Duration of action manifest loads in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"outcome"}),
		fetchDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "xrizer_manifest_fetch_duration_milliseconds",
			Help:    "Duration of remote manifest/binding fetches in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"outcome"}),
		bindingsProduced: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "xrizer_manifest_bindings_produced",
			Help: "Number of suggested bindings produced for the last load of a profile",
		}, []string{"profile_path"}),
		cacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "xrizer_alias_cache_lookups_total",
			Help: "Total alias/binding cache lookups by outcome",
		}, []string{"outcome"}),
	}
}

type manifestMetrics struct {
	loadDuration     *prometheus.HistogramVec
	fetchDuration    *prometheus.HistogramVec
	bindingsProduced *prometheus.GaugeVec
	cacheLookups     *prometheus.CounterVec
}

func (m *manifestMetrics) RecordLoad(duration time.Duration, success bool) {
	if m == nil {
		return
	}
	m.loadDuration.WithLabelValues(outcomeLabel(success)).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *manifestMetrics) RecordFetch(duration time.Duration, success bool) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(outcomeLabel(success)).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *manifestMetrics) RecordBindingsProduced(profilePath string, count int) {
	if m == nil {
		return
	}
	m.bindingsProduced.WithLabelValues(profilePath).Set(float64(count))
}

func (m *manifestMetrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}

func outcomeLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
