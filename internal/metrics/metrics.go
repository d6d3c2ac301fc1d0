// Package metrics records generation runs in Prometheus text format so a
// node_exporter textfile collector can pick them up after a batch job.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the metrics of a single generation run on a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	generated   *prometheus.CounterVec
	dropped     prometheus.Counter
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricenews_records_generated_total",
			Help: "Records written to the dataset, by category",
		}, []string{"category"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pricenews_records_dropped_total",
			Help: "Requested records not generated because of quota truncation",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pricenews_generation_duration_seconds",
			Help: "Wall time of the last generation run, including the file write",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pricenews_last_success_timestamp_seconds",
			Help: "Unix time of the last successful generation run",
		}),
	}

	r.registry.MustRegister(r.generated, r.dropped, r.duration, r.lastSuccess)
	return r
}

// Generated adds n records for category. Categories with zero records are
// still exported so dashboards see every label.
func (r *Recorder) Generated(category string, n int) {
	r.generated.WithLabelValues(category).Add(float64(n))
}

// Dropped adds n truncated records.
func (r *Recorder) Dropped(n int) {
	if n > 0 {
		r.dropped.Add(float64(n))
	}
}

// Succeeded records the run duration and completion time.
func (r *Recorder) Succeeded(d time.Duration, at time.Time) {
	r.duration.Set(d.Seconds())
	r.lastSuccess.Set(float64(at.Unix()))
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
