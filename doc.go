// Package pixfilter provides image filters over dense 8-bit RGB pixel buffers.
//
// # Overview
//
// pixfilter is a small Pure Go filter engine. It exposes four operations
// (Gaussian blur, sharpen, edge detection and brightness adjustment) as pure
// functions from one [PixelBuffer] to a freshly allocated one, plus a
// synthetic gradient generator for tests and demos.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfilter"
//
//	img, err := pixfilter.CreateSampleImage(256, 256)
//	if err != nil {
//	    return err
//	}
//
//	blurred := pixfilter.GaussianBlur(img)
//	brighter, err := pixfilter.AdjustBrightness(img, 1.2)
//
// Callers that hold loosely-typed sample arrays go through the dispatcher,
// which validates shape and sample type before any computation:
//
//	out, err := pixfilter.Process(&pixfilter.Array{
//	    Shape: []int{h, w, 3},
//	    DType: pixfilter.Uint8,
//	    Data:  samples,
//	}, "edge_detect")
//
// # Memory Layout
//
// Samples are row-major and channel-interleaved: pixel (y, x) stores R, G
// and B at offsets (y*width+x)*3 + {0, 1, 2}.
//
// # Border Handling
//
// Neighborhood filters replicate edge pixels: out-of-range coordinates are
// clamped to the nearest valid row or column. Output shape always equals
// input shape.
//
// # Concurrency
//
// Filters never mutate their input, so the same buffer may be read by
// several operations at once (see [ProcessAll]). Large images are split into
// row bands executed on a fixed worker pool owned by an [Engine].
package pixfilter

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
