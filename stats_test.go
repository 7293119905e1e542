package pixfilter

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	pb, _ := NewPixelBuffer(2, 2)
	pb.Fill(10, 20, 30)
	if got := pb.Mean(); got != 20 {
		t.Errorf("Mean() = %v, want 20", got)
	}

	pb.SetRGB(0, 0, 250, 250, 250)
	want := float64(3*(10+20+30)+750) / 12
	if got := pb.Mean(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Mean() = %v, want %v", got, want)
	}
}

func TestMinMax(t *testing.T) {
	pb, _ := NewPixelBuffer(3, 1)
	pb.SetRGB(0, 0, 5, 6, 7)
	pb.SetRGB(1, 0, 200, 9, 8)
	pb.SetRGB(2, 0, 4, 100, 50)

	lo, hi := pb.MinMax()
	if lo != 4 || hi != 200 {
		t.Errorf("MinMax() = (%d, %d), want (4, 200)", lo, hi)
	}
}

func TestChannelMeans(t *testing.T) {
	pb, _ := NewPixelBuffer(2, 1)
	pb.SetRGB(0, 0, 10, 0, 255)
	pb.SetRGB(1, 0, 30, 100, 255)

	got := pb.ChannelMeans()
	want := [3]float64{20, 50, 255}
	if got != want {
		t.Errorf("ChannelMeans() = %v, want %v", got, want)
	}
}
