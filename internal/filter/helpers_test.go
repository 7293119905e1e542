package filter

import "context"

// Test helper functions shared across filter tests.

// createTestImage creates an image filled with the given color.
func createTestImage(w, h int, r, g, b uint8) Image {
	m := Image{Pix: make([]uint8, w*h*Channels), Width: w, Height: h}
	for i := 0; i < len(m.Pix); i += Channels {
		m.Pix[i+0] = r
		m.Pix[i+1] = g
		m.Pix[i+2] = b
	}
	return m
}

// createGradientImage creates a deterministic non-uniform image.
func createGradientImage(w, h int) Image {
	m := Image{Pix: make([]uint8, w*h*Channels), Width: w, Height: h}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * Channels
			m.Pix[i+0] = uint8((x * 37) % 256)
			m.Pix[i+1] = uint8((y * 53) % 256)
			m.Pix[i+2] = uint8((x*y*11 + 7) % 256)
		}
	}
	return m
}

// newImageLike allocates an empty image with the shape of m.
func newImageLike(m Image) Image {
	return Image{Pix: make([]uint8, len(m.Pix)), Width: m.Width, Height: m.Height}
}

// setPixel writes one pixel.
func setPixel(m Image, x, y int, r, g, b uint8) {
	i := (y*m.Width + x) * Channels
	m.Pix[i+0] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
}

// pixel reads one pixel.
func pixel(m Image, x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * Channels
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// rowFunc is the common signature of the band kernels.
type rowFunc func(ctx context.Context, dst, src Image, y0, y1 int) error

// runBands applies fn over src in bands of the given height.
func runBands(fn rowFunc, src Image, band int) (Image, error) {
	dst := newImageLike(src)
	for y0 := 0; y0 < src.Height; y0 += band {
		y1 := min(y0+band, src.Height)
		if err := fn(context.Background(), dst, src, y0, y1); err != nil {
			return Image{}, err
		}
	}
	return dst, nil
}

// runWhole applies fn over all rows of src at once.
func runWhole(fn rowFunc, src Image) Image {
	dst := newImageLike(src)
	if err := fn(context.Background(), dst, src, 0, src.Height); err != nil {
		panic(err)
	}
	return dst
}

// naiveGaussian3 is the direct 2D reference for the 3x3 binomial blur.
func naiveGaussian3(src Image) Image {
	weights := [3]int{1, 2, 1}
	dst := newImageLike(src)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			for c := 0; c < Channels; c++ {
				sum := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						yy := clampInt(y+dy, 0, src.Height-1)
						xx := clampInt(x+dx, 0, src.Width-1)
						sum += weights[dy+1] * weights[dx+1] * int(src.Pix[(yy*src.Width+xx)*Channels+c])
					}
				}
				dst.Pix[(y*src.Width+x)*Channels+c] = uint8((sum + 8) / 16)
			}
		}
	}
	return dst
}
