package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SessionMetrics provides observability for the per-frame and per-sync
// session path. Pass nil to disable collection with zero overhead.
type SessionMetrics interface {
	// RecordFrame records one frame_start_update call.
	RecordFrame(duration time.Duration)

	// RecordSync records one UpdateActionState sync for an action set.
	RecordSync(actionSet string, duration time.Duration)

	// RecordPoseResolve records one pose resolution for a tracked device.
	RecordPoseResolve(deviceIndex uint32, origin string, duration time.Duration)

	// SetEventQueueDepth updates the current pending event queue depth.
	SetEventQueueDepth(depth int)

	// RecordSessionRestart records a post_session_restart replay.
	RecordSessionRestart()
}

// NewSessionMetrics returns a Prometheus-backed SessionMetrics, or nil if
// the registry is not enabled.
func NewSessionMetrics() SessionMetrics {
	reg := GetRegistry()
	if reg == nil {
		// A typed nil *sessionMetrics, not a bare nil interface: every method
		// below checks its receiver, so callers never need to guard calls.
		return (*sessionMetrics)(nil)
	}
	return &sessionMetrics{
		frameDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "xrizer_frame_duration_milliseconds",
			Help:    "Duration of frame_start_update calls in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		syncDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "xrizer_sync_duration_milliseconds",
			Help:    "Duration of UpdateActionState sync per action set in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"action_set"}),
		poseDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "xrizer_pose_resolve_duration_milliseconds",
			Help:    "Duration of pose resolution per tracked device in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"device_index", "origin"}),
		eventQueueDepth: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "xrizer_event_queue_depth",
			Help: "Current number of pending events in the event queue",
		}),
		sessionRestarts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "xrizer_session_restarts_total",
			Help: "Total number of post_session_restart replays",
		}),
	}
}

type sessionMetrics struct {
	frameDuration   prometheus.Histogram
	syncDuration    *prometheus.HistogramVec
	poseDuration    *prometheus.HistogramVec
	eventQueueDepth prometheus.Gauge
	sessionRestarts prometheus.Counter
}

func (m *sessionMetrics) RecordFrame(duration time.Duration) {
	if m == nil {
		return
	}
	m.frameDuration.Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *sessionMetrics) RecordSync(actionSet string, duration time.Duration) {
	if m == nil {
		return
	}
	m.syncDuration.WithLabelValues(actionSet).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *sessionMetrics) RecordPoseResolve(deviceIndex uint32, origin string, duration time.Duration) {
	if m == nil {
		return
	}
	m.poseDuration.WithLabelValues(strconv.FormatUint(uint64(deviceIndex), 10), origin).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *sessionMetrics) SetEventQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.eventQueueDepth.Set(float64(depth))
}

func (m *sessionMetrics) RecordSessionRestart() {
	if m == nil {
		return
	}
	m.sessionRestarts.Inc()
}
