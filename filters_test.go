package pixfilter

import (
	"context"
	"errors"
	"math"
	"testing"
)

// uniformImage returns a w x h buffer filled with one color.
func uniformImage(t *testing.T, w, h int, r, g, b uint8) *PixelBuffer {
	t.Helper()
	pb, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	pb.Fill(r, g, b)
	return pb
}

// stepImage returns a 4x3 buffer whose columns 2 and 3 are v and the rest 0.
func stepImage(t *testing.T, v uint8) *PixelBuffer {
	t.Helper()
	pb := uniformImage(t, 4, 3, 0, 0, 0)
	for y := 0; y < 3; y++ {
		pb.SetRGB(2, y, v, v, v)
		pb.SetRGB(3, y, v, v, v)
	}
	return pb
}

func allFilters() map[string]func(*PixelBuffer) *PixelBuffer {
	return map[string]func(*PixelBuffer) *PixelBuffer{
		"blur":    GaussianBlur,
		"sharpen": Sharpen,
		"edge":    EdgeDetect,
		"brightness": func(pb *PixelBuffer) *PixelBuffer {
			out, _ := AdjustBrightness(pb, DefaultBrightnessFactor)
			return out
		},
	}
}

func TestFiltersPreserveShape(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {64, 48}}
	for name, fn := range allFilters() {
		for _, s := range sizes {
			src, _ := CreateSampleImage(s[0], s[1])
			out := fn(src)
			if out == nil {
				t.Fatalf("%s(%dx%d) returned nil", name, s[0], s[1])
			}
			if out.Shape() != src.Shape() {
				t.Errorf("%s shape = %v, want %v", name, out.Shape(), src.Shape())
			}
		}
	}
}

func TestFiltersDoNotModifyInput(t *testing.T) {
	src, _ := CreateSampleImage(40, 30)
	orig := src.Clone()
	for name, fn := range allFilters() {
		out := fn(src)
		if !src.Equal(orig) {
			t.Fatalf("%s modified its input", name)
		}
		if &out.Data()[0] == &src.Data()[0] {
			t.Errorf("%s returned a buffer aliasing its input", name)
		}
	}
}

func TestFiltersDeterministic(t *testing.T) {
	src, _ := CreateSampleImage(50, 50)
	for name, fn := range allFilters() {
		if !fn(src).Equal(fn(src)) {
			t.Errorf("%s is not deterministic", name)
		}
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	src := uniformImage(t, 9, 6, 12, 130, 255)
	if out := GaussianBlur(src); !out.Equal(src) {
		t.Error("blur of a uniform image changed it")
	}
}

func TestGaussianBlurStep(t *testing.T) {
	out := GaussianBlur(stepImage(t, 10))

	// Horizontal weights [1 2 1]/4 over [0 0 10 10] with replicated edges.
	want := []uint8{0, 3, 8, 10}
	for y := 0; y < 3; y++ {
		for x, w := range want {
			if r, _, _ := out.RGB(x, y); r != w {
				t.Errorf("blur (%d, %d) = %d, want %d", x, y, r, w)
			}
		}
	}
}

func TestSharpenUniform(t *testing.T) {
	src := uniformImage(t, 5, 5, 0, 77, 255)
	if out := Sharpen(src); !out.Equal(src) {
		t.Error("sharpen of a uniform image changed it")
	}
}

func TestSharpenClamps(t *testing.T) {
	src := uniformImage(t, 3, 3, 0, 0, 0)
	src.SetRGB(1, 1, 100, 100, 100)

	out := Sharpen(src)
	if r, _, _ := out.RGB(1, 1); r != 255 {
		t.Errorf("center = %d, want 255 (5*100 saturated)", r)
	}
	if r, _, _ := out.RGB(1, 0); r != 0 {
		t.Errorf("neighbor = %d, want 0 (-100 saturated)", r)
	}
	if r, _, _ := out.RGB(0, 0); r != 0 {
		t.Errorf("corner = %d, want 0", r)
	}
}

func TestEdgeDetectUniform(t *testing.T) {
	out := EdgeDetect(uniformImage(t, 6, 6, 200, 100, 50))
	if lo, hi := out.MinMax(); lo != 0 || hi != 0 {
		t.Errorf("edge of uniform image range = [%d, %d], want [0, 0]", lo, hi)
	}
}

func TestEdgeDetectStep(t *testing.T) {
	out := EdgeDetect(stepImage(t, 10))

	// gx = 4*(right-left) = 40 on both sides of the step, gy = 0.
	want := []uint8{0, 40, 40, 0}
	for y := 0; y < 3; y++ {
		for x, w := range want {
			if _, g, _ := out.RGB(x, y); g != w {
				t.Errorf("edge (%d, %d) = %d, want %d", x, y, g, w)
			}
		}
	}

	strong := EdgeDetect(stepImage(t, 100))
	if r, _, _ := strong.RGB(1, 1); r != 255 {
		t.Errorf("strong edge = %d, want 255", r)
	}
}

func TestEdgeDetectPerChannel(t *testing.T) {
	src := uniformImage(t, 4, 3, 0, 0, 0)
	for y := 0; y < 3; y++ {
		src.SetRGB(2, y, 10, 0, 0)
		src.SetRGB(3, y, 10, 0, 0)
	}
	out := EdgeDetect(src)
	if r, g, b := out.RGB(1, 1); r != 40 || g != 0 || b != 0 {
		t.Errorf("edge (1, 1) = (%d, %d, %d), want (40, 0, 0)", r, g, b)
	}
}

func TestAdjustBrightness(t *testing.T) {
	src := uniformImage(t, 2, 2, 0, 0, 0)
	src.SetRGB(0, 0, 100, 128, 250)
	src.SetRGB(1, 0, 3, 5, 255)

	tests := []struct {
		factor  float64
		x       int
		r, g, b uint8
	}{
		{1.2, 0, 120, 154, 255},
		{0.5, 1, 2, 3, 128},
		{1.0, 0, 100, 128, 250},
		{3.0, 1, 9, 15, 255},
	}

	for _, tt := range tests {
		out, err := AdjustBrightness(src, tt.factor)
		if err != nil {
			t.Fatalf("AdjustBrightness(%v) error = %v", tt.factor, err)
		}
		if r, g, b := out.RGB(tt.x, 0); r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("AdjustBrightness(%v) pixel %d = (%d, %d, %d), want (%d, %d, %d)",
				tt.factor, tt.x, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestAdjustBrightnessIdentity(t *testing.T) {
	src, _ := CreateSampleImage(31, 17)
	out, err := AdjustBrightness(src, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(src) {
		t.Error("factor 1.0 changed the image")
	}
}

func TestAdjustBrightnessSaturatedWhite(t *testing.T) {
	src := uniformImage(t, 8, 8, 255, 255, 255)
	out, err := AdjustBrightness(src, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := out.MinMax(); lo != 255 || hi != 255 {
		t.Errorf("range = [%d, %d], want [255, 255]", lo, hi)
	}
}

func TestAdjustBrightnessInvalidFactor(t *testing.T) {
	src := uniformImage(t, 2, 2, 1, 2, 3)
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		out, err := AdjustBrightness(src, f)
		if out != nil {
			t.Errorf("AdjustBrightness(%v) returned a buffer", f)
		}
		var fErr *InvalidFactorError
		if !errors.As(err, &fErr) || !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("AdjustBrightness(%v) error = %v, want *InvalidFactorError", f, err)
		}
	}
}

func TestFiltersNilInput(t *testing.T) {
	plain := map[string]func(*PixelBuffer) *PixelBuffer{
		"GaussianBlur": GaussianBlur,
		"Sharpen":      Sharpen,
		"EdgeDetect":   EdgeDetect,
	}
	for name, fn := range plain {
		if out := fn(nil); out != nil {
			t.Errorf("%s(nil) returned a buffer", name)
		}
	}

	withErr := map[string]func(context.Context, *PixelBuffer) (*PixelBuffer, error){
		"GaussianBlurContext": GaussianBlurContext,
		"SharpenContext":      SharpenContext,
		"EdgeDetectContext":   EdgeDetectContext,
	}
	for name, fn := range withErr {
		var vErr *ValidationError
		if _, err := fn(context.Background(), nil); !errors.As(err, &vErr) || vErr.Constraint != ConstraintShape {
			t.Errorf("%s(nil) error = %v, want shape *ValidationError", name, err)
		}
	}
	if _, err := AdjustBrightness(nil, 1); !errors.Is(err, ErrValidation) {
		t.Errorf("AdjustBrightness(nil) error = %v, want ErrValidation", err)
	}
}
