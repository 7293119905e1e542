package pixfilter

// Mean returns the mean sample value over all channels of all pixels.
func (p *PixelBuffer) Mean() float64 {
	if len(p.data) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range p.data {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(p.data))
}

// MinMax returns the smallest and largest sample in the buffer.
func (p *PixelBuffer) MinMax() (lo, hi uint8) {
	if len(p.data) == 0 {
		return 0, 0
	}
	lo, hi = 255, 0
	for _, v := range p.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ChannelMeans returns the mean of each channel separately.
func (p *PixelBuffer) ChannelMeans() [Channels]float64 {
	var sums [Channels]uint64
	for i := 0; i < len(p.data); i += Channels {
		sums[0] += uint64(p.data[i+0])
		sums[1] += uint64(p.data[i+1])
		sums[2] += uint64(p.data[i+2])
	}
	var means [Channels]float64
	n := len(p.data) / Channels
	if n == 0 {
		return means
	}
	for c := range sums {
		means[c] = float64(sums[c]) / float64(n)
	}
	return means
}
