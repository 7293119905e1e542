package filter

import (
	"context"
	"math"
)

// LUT maps every possible input sample to an output sample.
type LUT [256]uint8

// BrightnessLUT builds the lookup table for multiplying samples by factor.
// Entry v is round(v*factor) saturated to [0, 255]; halves round away from zero.
func BrightnessLUT(factor float64) *LUT {
	var lut LUT
	for v := range lut {
		s := math.Round(float64(v) * factor)
		switch {
		case s <= 0:
			lut[v] = 0
		case s >= 255:
			lut[v] = 255
		default:
			lut[v] = uint8(s)
		}
	}
	return &lut
}

// ApplyLUT writes rows [y0, y1) of src mapped through lut into dst.
// The mapping is pointwise, so no neighborhood is read.
func ApplyLUT(ctx context.Context, dst, src Image, y0, y1 int, lut *LUT) error {
	if err := checkShapes(dst, src, y0, y1); err != nil {
		return err
	}

	for y := y0; y < y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		srcRow := src.Row(y)
		dstRow := dst.Row(y)
		for i, v := range srcRow {
			dstRow[i] = lut[v]
		}
	}

	return nil
}
