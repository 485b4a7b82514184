package engine

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FrameMetrics records frame timings and load activity in a private
// Prometheus registry. A nil *FrameMetrics is a valid no-op.
type FrameMetrics struct {
	registry *prometheus.Registry

	frames         prometheus.Counter
	updateDuration prometheus.Histogram
	drawDuration   prometheus.Histogram
	nodes          prometheus.Gauge
	lifecycle      *prometheus.CounterVec
}

// frameBuckets span 0.5ms to ~65ms, covering 240Hz through 15Hz frames.
var frameBuckets = prometheus.ExponentialBuckets(0.0005, 2, 8)

// NewFrameMetrics creates and registers the frame metrics under namespace.
func NewFrameMetrics(namespace string) *FrameMetrics {
	m := &FrameMetrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total number of frames updated",
		}),
		updateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Time spent in the update pass",
			Buckets:   frameBuckets,
		}),
		drawDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_duration_seconds",
			Help:      "Time spent in the draw pass",
			Buckets:   frameBuckets,
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scene_nodes",
			Help:      "Number of nodes in the scene tree",
		}),
		lifecycle: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_lifecycle_events_total",
			Help:      "Node load state changes by type",
		}, []string{"event"}),
	}
	m.registry.MustRegister(m.frames, m.updateDuration, m.drawDuration, m.nodes, m.lifecycle)
	return m
}

// Registry returns the registry holding the metrics.
func (m *FrameMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the metrics.
func (m *FrameMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveUpdate records one update pass over a tree of nodes nodes.
func (m *FrameMetrics) ObserveUpdate(d time.Duration, nodes int) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.updateDuration.Observe(d.Seconds())
	m.nodes.Set(float64(nodes))
}

// ObserveDraw records one draw pass.
func (m *FrameMetrics) ObserveDraw(d time.Duration) {
	if m == nil {
		return
	}
	m.drawDuration.Observe(d.Seconds())
}

// ObserveLifecycle counts a lifecycle event.
func (m *FrameMetrics) ObserveLifecycle(ev LifecycleEvent) {
	if m == nil {
		return
	}
	m.lifecycle.WithLabelValues(ev.Type.String()).Inc()
}
