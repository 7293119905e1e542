package pixfilter

// CreateSampleImage creates a deterministic gradient test pattern.
//
// The pattern is:
//   - red: horizontal gradient, 255*x/width
//   - green: vertical gradient, 255*y/height
//   - blue: diagonal bands, 255*((x+y) mod width)/width
//
// All quotients truncate toward zero, so every sample lies in [0, 254].
// Returns an *InvalidDimensionError if width or height is non-positive or
// the image would hold more than math.MaxInt samples.
func CreateSampleImage(width, height int) (*PixelBuffer, error) {
	if !validDimensions(width, height) {
		return nil, &InvalidDimensionError{Width: width, Height: height}
	}

	img := newPixelBuffer(width, height)
	data := img.data

	for y := 0; y < height; y++ {
		g := uint8(255 * y / height)
		row := y * width * Channels
		for x := 0; x < width; x++ {
			i := row + x*Channels
			data[i+0] = uint8(255 * x / width)
			data[i+1] = g
			data[i+2] = uint8(255 * ((x + y) % width) / width)
		}
	}

	return img, nil
}
