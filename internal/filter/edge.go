package filter

import (
	"context"
	"math"
)

// magnitudeCeiling is the smallest gx²+gy² whose rounded square root
// exceeds 255. sqrt(65280.25) = 255.5, and squared sums are integers.
const magnitudeCeiling = 65281

// EdgeDetect writes rows [y0, y1) of the Sobel gradient magnitude of src
// into dst.
//
// Each channel is processed independently: no luma conversion takes place.
// The magnitude sqrt(gx² + gy²) is rounded to nearest and saturated to 255.
func EdgeDetect(ctx context.Context, dst, src Image, y0, y1 int) error {
	if err := checkShapes(dst, src, y0, y1); err != nil {
		return err
	}

	stride := src.Stride()
	var n neighborhood

	for y := y0; y < y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		n.rows = rowOffsets(y, src.Height, stride)
		dstRow := dst.Row(y)

		for x := 0; x < src.Width; x++ {
			n.cols = colOffsets(x, src.Width)
			i := x * Channels
			for c := 0; c < Channels; c++ {
				gx := n.apply(src.Pix, &SobelX, c)
				gy := n.apply(src.Pix, &SobelY, c)
				dstRow[i+c] = GradientMagnitude(gx, gy)
			}
		}
	}

	return nil
}

// GradientMagnitude returns round(sqrt(gx² + gy²)) saturated to 255.
func GradientMagnitude(gx, gy int32) uint8 {
	sq := gx*gx + gy*gy
	if sq >= magnitudeCeiling {
		return 255
	}
	return uint8(math.Round(math.Sqrt(float64(sq))))
}
