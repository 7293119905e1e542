package filter

import "context"

// Sharpen writes rows [y0, y1) of the sharpened src into dst.
//
// Each channel is convolved with [SharpenKernel] using edge replication and
// the integer result is saturated to [0, 255]. Saturation is lossy: a sample
// pushed below 0 or above 255 is not recoverable.
func Sharpen(ctx context.Context, dst, src Image, y0, y1 int) error {
	return Convolve3(ctx, dst, src, y0, y1, &SharpenKernel)
}

// Convolve3 writes rows [y0, y1) of src convolved with k into dst.
// Channels are processed independently; sums are saturated to [0, 255].
// The kernel is applied without normalization, so k should sum to 1 for
// brightness-preserving filters.
func Convolve3(ctx context.Context, dst, src Image, y0, y1 int, k *Kernel3) error {
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
			dstRow[i+0] = saturate(n.apply(src.Pix, k, 0))
			dstRow[i+1] = saturate(n.apply(src.Pix, k, 1))
			dstRow[i+2] = saturate(n.apply(src.Pix, k, 2))
		}
	}

	return nil
}
