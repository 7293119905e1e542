package parallel

import "context"

// Band is a half-open range of image rows [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// SplitRows partitions [0, height) into at most parts bands of at least
// minRows rows each. Band heights differ by at most one row, and bands are
// returned top to bottom.
//
// A non-positive height yields no bands; parts and minRows are raised to 1.
func SplitRows(height, parts, minRows int) []Band {
	if height <= 0 {
		return nil
	}
	parts = max(parts, 1)
	minRows = max(minRows, 1)

	parts = min(parts, max(height/minRows, 1))

	bands := make([]Band, parts)
	base := height / parts
	extra := height % parts

	y := 0
	for i := range bands {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}

	return bands
}

// BandFunc computes the output rows of one band.
type BandFunc func(ctx context.Context, b Band) error

// Run executes fn for every band on pool and waits for all of them.
//
// A single band, or a nil pool, runs on the calling goroutine. Once a band
// fails, the context passed to the remaining bands is cancelled so they can
// stop between rows, and the first error is returned.
func Run(ctx context.Context, pool *WorkerPool, bands []Band, fn BandFunc) error {
	if len(bands) == 1 {
		pool = nil
	}

	work := make([]func(context.Context) error, len(bands))
	for i, b := range bands {
		work[i] = func(ctx context.Context) error {
			return fn(ctx, b)
		}
	}

	return pool.ExecuteAll(ctx, work)
}
