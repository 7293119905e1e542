package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the status dimension.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// Recorder holds the collectors for filter calls.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	operations *prometheus.CounterVec   // Calls by operation and status.
	duration   *prometheus.HistogramVec // Call latency by operation.
	pixels     prometheus.Counter       // Pixels written by successful calls.
}

// NewWithRegistry creates a Recorder and registers its collectors with registry.
//
// Parameters:
//   - registry: Prometheus registerer to use for metric registration.
//
// Returns:
//   - (*Recorder, error): Recorder, or an error if a collector is already
//     registered with a different definition.
func NewWithRegistry(registry prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pixfilter_operations_total",
			Help: "Number of filter calls by operation and outcome",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pixfilter_operation_duration_seconds",
			Help:    "Wall time of filter calls",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation"}),
		pixels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pixfilter_pixels_processed_total",
			Help: "Number of output pixels produced by successful filter calls",
		}),
	}

	collectors := []prometheus.Collector{r.operations, r.duration, r.pixels}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return r, nil
}

// Observe records one filter call.
//
// Parameters:
//   - operation: Operation name used as label.
//   - pixels: Number of output pixels.
//   - elapsed: Wall time of the call.
//   - err: Error returned by the call, or nil.
func (r *Recorder) Observe(operation string, pixels int, elapsed time.Duration, err error) {
	if r == nil {
		return
	}

	status := Status(err)
	r.operations.WithLabelValues(operation, status).Inc()
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())

	if status == StatusOK {
		r.pixels.Add(float64(pixels))
	}
}

// Status maps a call error to its status label.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCancelled
	default:
		return StatusError
	}
}
