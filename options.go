package pixfilter

import "github.com/prometheus/client_golang/prometheus"

// DefaultBrightnessFactor is the factor the dispatcher applies for the
// "brightness" operation unless WithBrightnessFactor overrides it.
const DefaultBrightnessFactor = 1.2

// DefaultMinRowsPerBand is the smallest row band handed to a worker.
// Images shorter than two bands are filtered on the calling goroutine.
const DefaultMinRowsPerBand = 16

// Option configures an Engine or a single dispatcher call.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default engine: GOMAXPROCS workers, no metrics
//	out, err := pixfilter.Process(arr, "blur")
//
//	// Dedicated engine with two workers and Prometheus metrics
//	eng, err := pixfilter.NewEngine(
//	    pixfilter.WithWorkers(2),
//	    pixfilter.WithRegisterer(prometheus.NewRegistry()),
//	)
//	defer eng.Close()
//	out, err = pixfilter.Process(arr, "blur", pixfilter.WithEngine(eng))
type Option func(*options)

// options holds optional configuration.
type options struct {
	workers        int
	minRowsPerBand int
	factor         float64
	factorSet      bool
	registerer     prometheus.Registerer
	engine         *Engine
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		workers:        0, // GOMAXPROCS
		minRowsPerBand: DefaultMinRowsPerBand,
		factor:         DefaultBrightnessFactor,
	}
}

// applyOptions folds opts over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWorkers sets the number of pool workers of an Engine.
// Zero or negative means GOMAXPROCS; 1 disables the pool and filters run on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMinRowsPerBand sets the smallest number of rows an Engine hands to one
// worker. Values below 1 are treated as 1.
func WithMinRowsPerBand(rows int) Option {
	return func(o *options) {
		o.minRowsPerBand = rows
	}
}

// WithBrightnessFactor sets the factor used by the "brightness" operation.
// On NewEngine it changes the engine default; on a dispatcher call it
// overrides the engine default for that call only.
func WithBrightnessFactor(factor float64) Option {
	return func(o *options) {
		o.factor = factor
		o.factorSet = true
	}
}

// WithRegisterer enables Prometheus metrics on an Engine. Collectors are
// registered with reg when the engine is created.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithEngine runs a dispatcher call on eng instead of the default engine.
func WithEngine(eng *Engine) Option {
	return func(o *options) {
		o.engine = eng
	}
}
