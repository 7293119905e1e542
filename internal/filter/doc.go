// Package filter implements the pixfilter filter engine.
//
// This package contains the numeric kernels behind the public filters:
//   - Gaussian blur (separable 3x3 binomial, exact integer arithmetic)
//   - Sharpen (3x3 Laplacian sharpen)
//   - Edge detection (per-channel Sobel gradient magnitude)
//   - Brightness (256-entry lookup table)
//
// Every kernel writes a band of output rows [y0, y1) from a read-only source,
// so callers can split an image into disjoint bands and run them in parallel
// without synchronization. Neighborhood kernels replicate edge pixels.
//
// Kernels check the context between output rows and stop early with
// ctx.Err() when it is cancelled.
package filter
