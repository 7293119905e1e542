package pixfilter

import (
	"context"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/gogpu/pixfilter/internal/filter"
	"github.com/gogpu/pixfilter/internal/metrics"
	"github.com/gogpu/pixfilter/internal/parallel"
)

// Engine runs filters on a fixed worker pool.
//
// Each call splits the output into bands of whole rows, runs the bands on
// the pool and joins them before returning. Engines hold no per-call state,
// so one engine may serve any number of concurrent calls.
//
// The package-level functions use a default engine sized to GOMAXPROCS.
type Engine struct {
	pool     *parallel.WorkerPool // nil: run on the calling goroutine
	workers  int
	minRows  int
	factor   float64
	recorder *metrics.Recorder
}

// NewEngine creates an engine configured by opts.
// It returns an error if the brightness factor is invalid or metrics cannot
// be registered.
func NewEngine(opts ...Option) (*Engine, error) {
	o := applyOptions(opts)

	if err := CheckBrightnessFactor(o.factor); err != nil {
		return nil, err
	}

	var rec *metrics.Recorder
	if o.registerer != nil {
		var err error
		rec, err = metrics.NewWithRegistry(o.registerer)
		if err != nil {
			return nil, err
		}
	}

	e := newEngine(o)
	e.recorder = rec
	return e, nil
}

// newEngine builds an engine without metrics from validated options.
func newEngine(o options) *Engine {
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	e := &Engine{
		workers: workers,
		minRows: max(o.minRowsPerBand, 1),
		factor:  o.factor,
	}
	if workers > 1 {
		e.pool = parallel.NewWorkerPool(workers)
	}
	return e
}

// defaultEngine is created on first use and lives for the process lifetime.
var defaultEngine = sync.OnceValue(func() *Engine {
	return newEngine(defaultOptions())
})

// Close stops the engine's workers. Calls made after Close still succeed but
// run on the calling goroutine. Close must not be called while filters are
// running on the engine.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the number of workers the engine splits work across.
func (e *Engine) Workers() int {
	return e.workers
}

// BrightnessFactor returns the factor the engine uses for the "brightness"
// operation.
func (e *Engine) BrightnessFactor() float64 {
	return e.factor
}

// GaussianBlur returns img blurred with the normalized 3x3 Gaussian kernel.
func (e *Engine) GaussianBlur(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return e.run(ctx, OpBlur, img, filter.GaussianBlur)
}

// Sharpen returns img convolved with the 3x3 Laplacian sharpen kernel.
func (e *Engine) Sharpen(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return e.run(ctx, OpSharpen, img, filter.Sharpen)
}

// EdgeDetect returns the per-channel Sobel gradient magnitude of img.
func (e *Engine) EdgeDetect(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return e.run(ctx, OpEdgeDetect, img, filter.EdgeDetect)
}

// AdjustBrightness returns img with every sample multiplied by factor,
// rounded and saturated to [0, 255].
// Returns an *InvalidFactorError if factor is not a positive finite number.
func (e *Engine) AdjustBrightness(ctx context.Context, img *PixelBuffer, factor float64) (*PixelBuffer, error) {
	if err := CheckBrightnessFactor(factor); err != nil {
		return nil, err
	}
	lut := filter.BrightnessLUT(factor)
	return e.run(ctx, OpBrightness, img, func(ctx context.Context, dst, src filter.Image, y0, y1 int) error {
		return filter.ApplyLUT(ctx, dst, src, y0, y1, lut)
	})
}

// rowKernel is the signature shared by the band kernels of internal/filter.
type rowKernel func(ctx context.Context, dst, src filter.Image, y0, y1 int) error

// run applies kernel to img band by band and returns the new buffer.
func (e *Engine) run(ctx context.Context, op Operation, img *PixelBuffer, kernel rowKernel) (*PixelBuffer, error) {
	if img == nil {
		return nil, &ValidationError{Constraint: ConstraintShape}
	}

	start := time.Now()
	out := img.sameShape()

	src := filter.Image{Pix: img.data, Width: img.width, Height: img.height}
	dst := filter.Image{Pix: out.data, Width: out.width, Height: out.height}

	bands := parallel.SplitRows(img.height, e.workers, e.minRows)
	err := parallel.Run(ctx, e.pool, bands, func(ctx context.Context, b parallel.Band) error {
		return kernel(ctx, dst, src, b.Y0, b.Y1)
	})

	elapsed := time.Since(start)
	e.recorder.Observe(string(op), img.width*img.height, elapsed, err)

	if err != nil {
		logAborted(op, err)
		return nil, err
	}

	logApplied(op, img, len(bands), elapsed)

	return out, nil
}

// CheckBrightnessFactor returns an *InvalidFactorError unless factor is a
// positive finite number.
func CheckBrightnessFactor(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return &InvalidFactorError{Factor: factor}
	}
	return nil
}
