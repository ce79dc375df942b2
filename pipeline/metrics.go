// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run status label values.
const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics holds the Prometheus collectors of a Runner.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	clusters prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice on the same registry fails with prometheus'
// AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simcluster",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Clustering runs by outcome status",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "simcluster",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one clustering run",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		clusters: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "simcluster",
			Subsystem: "pipeline",
			Name:      "clusters",
			Help:      "Number of clusters found per successful run",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration, m.clusters} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewMetrics: %w", err)
		}
	}

	return m, nil
}

// observe records one finished run. A nil receiver is a no-op.
func (m *Metrics) observe(elapsed time.Duration, clusters int, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(elapsed.Seconds())
	if err != nil {
		m.runs.WithLabelValues(statusError).Inc()
		return
	}
	m.runs.WithLabelValues(statusOK).Inc()
	m.clusters.Observe(float64(clusters))
}
