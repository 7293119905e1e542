package pixfilter

import "context"

// GaussianBlur returns img smoothed with the 3x3 Gaussian kernel
//
//	[1 2 1]
//	[2 4 2] / 16
//	[1 2 1]
//
// Border pixels replicate the nearest edge. The result has the same shape
// as img; img is not modified.
//
// A nil img yields nil. GaussianBlurContext reports that case as a
// *ValidationError instead.
func GaussianBlur(img *PixelBuffer) *PixelBuffer {
	out, _ := GaussianBlurContext(context.Background(), img)
	return out
}

// GaussianBlurContext is like GaussianBlur but stops between rows when ctx
// is cancelled and returns ctx.Err().
func GaussianBlurContext(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return defaultEngine().GaussianBlur(ctx, img)
}

// Sharpen returns img convolved with
//
//	[ 0 -1  0]
//	[-1  5 -1]
//	[ 0 -1  0]
//
// Sums outside [0, 255] saturate. A nil img yields nil; SharpenContext
// returns the *ValidationError.
func Sharpen(img *PixelBuffer) *PixelBuffer {
	out, _ := SharpenContext(context.Background(), img)
	return out
}

// SharpenContext is like Sharpen but honors ctx.
func SharpenContext(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return defaultEngine().Sharpen(ctx, img)
}

// EdgeDetect returns the Sobel gradient magnitude of img, computed for each
// channel independently as round(sqrt(gx*gx + gy*gy)) and saturated to 255.
// Flat regions become black. A nil img yields nil; EdgeDetectContext
// returns the *ValidationError.
func EdgeDetect(img *PixelBuffer) *PixelBuffer {
	out, _ := EdgeDetectContext(context.Background(), img)
	return out
}

// EdgeDetectContext is like EdgeDetect but honors ctx.
func EdgeDetectContext(ctx context.Context, img *PixelBuffer) (*PixelBuffer, error) {
	return defaultEngine().EdgeDetect(ctx, img)
}

// AdjustBrightness returns img with every sample s replaced by
// clamp(round(s*factor), 0, 255). A factor of 1 returns an identical copy.
// Returns an *InvalidFactorError if factor is not a positive finite number.
func AdjustBrightness(img *PixelBuffer, factor float64) (*PixelBuffer, error) {
	return AdjustBrightnessContext(context.Background(), img, factor)
}

// AdjustBrightnessContext is like AdjustBrightness but honors ctx.
func AdjustBrightnessContext(ctx context.Context, img *PixelBuffer, factor float64) (*PixelBuffer, error) {
	return defaultEngine().AdjustBrightness(ctx, img, factor)
}
