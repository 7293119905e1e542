package pixfilter

import (
	"bytes"
	"math"
)

// Channels is the number of samples per pixel (R, G, B).
const Channels = 3

// PixelBuffer is a dense RGB raster of 8-bit samples.
//
// Samples are stored row-major and channel-interleaved: pixel (x, y) has its
// R, G and B values at Offset(x, y)+0, +1 and +2.
//
// Filters never modify a PixelBuffer they read; each call returns a new one
// owned by the caller. A buffer may be read concurrently but must not be
// written while any goroutine reads it.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer creates a zeroed buffer with the given dimensions.
// Returns an *InvalidDimensionError if width or height is non-positive or
// width*height*3 overflows an int.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if !validDimensions(width, height) {
		return nil, &InvalidDimensionError{Width: width, Height: height}
	}
	return newPixelBuffer(width, height), nil
}

// validDimensions reports whether width and height are positive and
// width*height*Channels fits in an int.
func validDimensions(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return width <= math.MaxInt/Channels && height <= math.MaxInt/(width*Channels)
}

// newPixelBuffer allocates a buffer for dimensions that are known to be valid.
func newPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*Channels),
	}
}

// Width returns the width of the buffer in pixels.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer in pixels.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Channels returns the number of samples per pixel, always 3.
func (p *PixelBuffer) Channels() int {
	return Channels
}

// Shape returns the array shape (height, width, 3).
func (p *PixelBuffer) Shape() [3]int {
	return [3]int{p.height, p.width, Channels}
}

// Len returns the total number of samples.
func (p *PixelBuffer) Len() int {
	return len(p.data)
}

// Data returns the raw interleaved samples.
// The slice aliases the buffer; writes through it modify the buffer.
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// Offset returns the index of the red sample of pixel (x, y).
func (p *PixelBuffer) Offset(x, y int) int {
	return (y*p.width + x) * Channels
}

// RGB returns the samples of pixel (x, y).
// Coordinates outside the buffer return zeros.
func (p *PixelBuffer) RGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	i := p.Offset(x, y)
	return p.data[i], p.data[i+1], p.data[i+2]
}

// SetRGB sets the samples of pixel (x, y).
// Coordinates outside the buffer are ignored.
func (p *PixelBuffer) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.Offset(x, y)
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
}

// Fill sets every pixel to the same color.
func (p *PixelBuffer) Fill(r, g, b uint8) {
	for i := 0; i < len(p.data); i += Channels {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
	}
}

// Clone returns a deep copy of the buffer.
func (p *PixelBuffer) Clone() *PixelBuffer {
	c := newPixelBuffer(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// Equal reports whether two buffers have the same shape and samples.
func (p *PixelBuffer) Equal(other *PixelBuffer) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.width == other.width && p.height == other.height && bytes.Equal(p.data, other.data)
}

// sameShape allocates an empty buffer with the shape of p.
func (p *PixelBuffer) sameShape() *PixelBuffer {
	return newPixelBuffer(p.width, p.height)
}
