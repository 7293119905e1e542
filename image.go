package pixfilter

import (
	"image"

	"golang.org/x/image/draw"
)

// ToImage converts the buffer to an opaque image.RGBA.
func (p *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+Channels, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates a buffer from any image.Image. The image is first drawn
// onto an RGBA canvas and the alpha channel is then dropped, so translucent
// pixels keep their premultiplied color values.
// Returns an *InvalidDimensionError for empty images.
func FromImage(src image.Image) (*PixelBuffer, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if !validDimensions(width, height) {
		return nil, &InvalidDimensionError{Width: width, Height: height}
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != width*4 || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}

	pb := newPixelBuffer(width, height)
	for i, j := 0, 0; i < len(pb.data); i, j = i+Channels, j+4 {
		pb.data[i+0] = rgba.Pix[j+0]
		pb.data[i+1] = rgba.Pix[j+1]
		pb.data[i+2] = rgba.Pix[j+2]
	}
	return pb, nil
}
