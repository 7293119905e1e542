package filter

import "errors"

// Channels is the number of interleaved samples per pixel.
const Channels = 3

// ErrShapeMismatch is returned when source and destination differ in size.
var ErrShapeMismatch = errors.New("filter: source and destination shapes differ")

// Image is a view over interleaved 8-bit RGB samples.
type Image struct {
	Pix    []uint8
	Width  int
	Height int
}

// Stride returns the number of samples in one row.
func (m Image) Stride() int {
	return m.Width * Channels
}

// Row returns the samples of row y.
func (m Image) Row(y int) []uint8 {
	s := m.Stride()
	return m.Pix[y*s : (y+1)*s]
}

// checkShapes verifies dst can receive rows [y0, y1) computed from src.
func checkShapes(dst, src Image, y0, y1 int) error {
	if dst.Width != src.Width || dst.Height != src.Height || len(dst.Pix) != len(src.Pix) {
		return ErrShapeMismatch
	}
	if y0 < 0 || y1 > src.Height || y0 > y1 {
		return ErrShapeMismatch
	}
	return nil
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// saturate clamps an integer sum to [0, 255].
func saturate(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
