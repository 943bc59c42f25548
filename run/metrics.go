package run

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics carries the controller's Prometheus collectors. Construction
// and registration are explicit; a controller without metrics skips
// all counting.
type Metrics struct {
	// RunsTotal counts terminal sessions by algorithm and outcome.
	RunsTotal *prometheus.CounterVec

	// FramesTotal counts every published snapshot.
	FramesTotal prometheus.Counter

	// ActiveRuns holds 1 while a session is in flight.
	ActiveRuns prometheus.Gauge
}

// NewMetrics builds the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvlviz_runs_total",
			Help: "Terminal runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		FramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvlviz_frames_total",
			Help: "Published snapshot frames.",
		}),
		ActiveRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lvlviz_active_runs",
			Help: "Whether a run is currently executing.",
		}),
	}
	reg.MustRegister(m.RunsTotal, m.FramesTotal, m.ActiveRuns)
	return m
}
