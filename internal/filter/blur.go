package filter

import (
	"context"
	"sync"
)

// blurKernel is the 1D binomial kernel [1 2 1]. Applied along both axes it
// yields the normalized 3x3 Gaussian [1 2 1; 2 4 2; 1 2 1] / 16.
var blurKernel = BinomialKernel(3)

// GaussianBlur writes rows [y0, y1) of the blurred src into dst.
//
// The blur is separable and computed in exact integer arithmetic:
//  1. Horizontal pass: convolve the needed source rows into an int32 band
//  2. Vertical pass: convolve the band columns and divide by the weight sum
//
// Results are rounded half up; no clamping is needed since weights are
// non-negative and normalized.
func GaussianBlur(ctx context.Context, dst, src Image, y0, y1 int) error {
	return blurSeparable(ctx, dst, src, y0, y1, blurKernel)
}

// blurSeparable applies kernel horizontally then vertically with edge
// replication. The kernel must have odd length and positive sum.
func blurSeparable(ctx context.Context, dst, src Image, y0, y1 int, kernel []int32) error {
	if err := checkShapes(dst, src, y0, y1); err != nil {
		return err
	}
	if y0 == y1 {
		return nil
	}

	half := KernelCenter(len(kernel))
	lo := max(y0-half, 0)
	hi := min(y1+half, src.Height)

	// Get temporary band from pool
	temp := getTempBuffer((hi - lo) * src.Stride())
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, lo, hi, kernel)

	sum := KernelSum(kernel)
	return blurVertical(ctx, temp, dst, lo, y0, y1, kernel, sum*sum)
}

// blurHorizontal convolves source rows [lo, hi) along x.
// Writes unnormalized sums to temp, one row per source row.
func blurHorizontal(src Image, temp []int32, lo, hi int, kernel []int32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2
	stride := src.Stride()
	srcData := src.Pix

	for y := lo; y < hi; y++ {
		srcRow := y * stride
		tempRow := (y - lo) * stride

		for x := 0; x < src.Width; x++ {
			var r, g, b int32

			for k := 0; k < kernelSize; k++ {
				// Clamp to source bounds (edge replication)
				kx := clampInt(x+k-halfKernel, 0, src.Width-1)

				srcIdx := srcRow + kx*Channels
				weight := kernel[k]

				r += int32(srcData[srcIdx+0]) * weight
				g += int32(srcData[srcIdx+1]) * weight
				b += int32(srcData[srcIdx+2]) * weight
			}

			tempIdx := tempRow + x*Channels
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
		}
	}
}

// blurVertical convolves the temp band along y and writes rows [y0, y1)
// of dst. The band starts at source row lo.
func blurVertical(ctx context.Context, temp []int32, dst Image, lo, y0, y1 int, kernel []int32, divisor int32) error {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2
	stride := dst.Stride()
	dstData := dst.Pix
	bias := divisor / 2

	for y := y0; y < y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dstRow := y * stride

		for x := 0; x < dst.Width; x++ {
			col := x * Channels
			var r, g, b int32

			for k := 0; k < kernelSize; k++ {
				// Clamp to image bounds (edge replication), then index the band
				ky := clampInt(y+k-halfKernel, 0, dst.Height-1)

				tempIdx := (ky-lo)*stride + col
				weight := kernel[k]

				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
			}

			dstIdx := dstRow + col
			dstData[dstIdx+0] = saturate((r + bias) / divisor)
			dstData[dstIdx+1] = saturate((g + bias) / divisor)
			dstData[dstIdx+2] = saturate((b + bias) / divisor)
		}
	}

	return nil
}

// intBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type intBuffer struct {
	data []int32
}

// Temporary band pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &intBuffer{data: make([]int32, 256*1024)}
	},
}

// getTempBuffer retrieves a temporary buffer of exactly size elements.
// Every element is overwritten by blurHorizontal, so the buffer is not cleared.
func getTempBuffer(size int) []int32 {
	wrapper := tempBufferPool.Get().(*intBuffer)

	if len(wrapper.data) < size {
		// Need larger buffer - return old one and allocate new
		tempBufferPool.Put(wrapper)
		return make([]int32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []int32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&intBuffer{data: buf[:cap(buf)]})
	}
}
