// Package metrics instruments corpus scans with prometheus collectors. Each
// run owns its own registry so that a finished run can be dumped to a
// textfile for node_exporter without touching global state.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "urlstats"

// Scan groups the collectors updated while a corpus is scanned.
type Scan struct {
	registry *prometheus.Registry

	Lines      prometheus.Counter
	Bytes      prometheus.Counter
	Candidates prometheus.Counter
	URLs       prometheus.Counter
	Rejected   *prometheus.CounterVec
	Distinct   *prometheus.GaugeVec
	Duration   prometheus.Histogram
}

// NewScan creates the collectors and registers them on a fresh registry.
func NewScan() *Scan {
	s := &Scan{
		registry: prometheus.NewRegistry(),
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_scanned_total",
			Help:      "Number of corpus lines scanned.",
		}),
		Bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_scanned_total",
			Help:      "Number of corpus bytes scanned, line terminators excluded.",
		}),
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Number of http prefixes examined.",
		}),
		URLs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "urls_total",
			Help:      "Number of URLs accepted.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_rejected_total",
			Help:      "Number of http prefixes rejected, by reason.",
		}, []string{"reason"}),
		Distinct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "distinct_keys",
			Help:      "Number of distinct keys per table.",
		}, []string{"table"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time spent scanning the corpus.",
			Buckets:   DefaultBuckets,
		}),
	}

	s.registry.MustRegister(s.Lines, s.Bytes, s.Candidates, s.URLs, s.Rejected, s.Distinct, s.Duration)

	return s
}

// ObserveDuration records the time elapsed since start.
func (s *Scan) ObserveDuration(start time.Time) {
	s.Duration.Observe(time.Since(start).Seconds())
}

// Gatherer exposes the registry backing s.
func (s *Scan) Gatherer() prometheus.Gatherer {
	return s.registry
}

// WriteTextfile writes the current values in the text exposition format.
func (s *Scan) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
