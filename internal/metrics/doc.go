// Package metrics provides Prometheus instrumentation for filter calls.
// It counts calls per operation and outcome, records call latency and tracks
// the number of pixels processed.
package metrics
