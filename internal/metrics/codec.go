// Package metrics exposes Prometheus instrumentation for codec operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txkit7000",
		Subsystem: "codec",
		Name:      "operations_total",
		Help:      "Count of transaction codec operations.",
	}, []string{"operation", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txkit7000",
		Subsystem: "codec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction codec operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ObserveCodec records the outcome and duration of one codec operation.
func ObserveCodec(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	codecOperationsTotal.WithLabelValues(operation, status).Inc()
	codecOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
