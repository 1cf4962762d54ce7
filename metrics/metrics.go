package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "alpaca"
var subsystem = "holidays"

var (
	// YearsPopulatedTotal counts the years evaluated per jurisdiction
	YearsPopulatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "years_populated_total",
		Help:      "Number of years evaluated partitioned by jurisdiction",
	}, []string{"jurisdiction"})

	// PopulateDuration stores the time spent evaluating the rules of a year
	PopulateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "populate_duration_seconds",
		Help:      "Rule evaluation time of a single year partitioned by jurisdiction",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	}, []string{"jurisdiction"})

	// ExportJobsTotal counts the export jobs partitioned by format and status
	ExportJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "export_jobs_total",
		Help:      "Number of export jobs partitioned by format and status",
	}, []string{"format", "status"})

	// ExportedHolidaysTotal counts the dates written by export jobs
	ExportedHolidaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exported_holidays_total",
		Help:      "Number of holiday dates written by export jobs",
	})
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteTextfile dumps the default registry in the text exposition format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
