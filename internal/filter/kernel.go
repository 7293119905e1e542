package filter

// Kernel3 is a 3x3 integer convolution kernel in row-major order:
//
//	[0 1 2]
//	[3 4 5]
//	[6 7 8]
//
// Element 4 weights the center pixel.
type Kernel3 [9]int32

// SharpenKernel is the discrete Laplacian sharpen kernel. Its weights sum to 1,
// so flat regions pass through unchanged.
var SharpenKernel = Kernel3{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// SobelX responds to horizontal intensity changes (vertical edges).
var SobelX = Kernel3{
	-1, 0, 1,
	-2, 0, 2,
	-1, 0, 1,
}

// SobelY responds to vertical intensity changes (horizontal edges).
var SobelY = SobelX.Transpose()

// Transpose returns the kernel mirrored along its main diagonal.
func (k Kernel3) Transpose() Kernel3 {
	var t Kernel3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c*3+r] = k[r*3+c]
		}
	}
	return t
}

// BinomialKernel returns row size-1 of Pascal's triangle, the integer
// approximation of a 1D Gaussian. For size <= 1 it returns the identity [1].
//
// BinomialKernel(3) = [1 2 1], BinomialKernel(5) = [1 4 6 4 1].
func BinomialKernel(size int) []int32 {
	if size <= 1 {
		return []int32{1}
	}
	kernel := make([]int32, size)
	kernel[0] = 1
	for n := 1; n < size; n++ {
		for k := n; k > 0; k-- {
			kernel[k] += kernel[k-1]
		}
	}
	return kernel
}

// KernelSum returns the sum of a 1D kernel.
func KernelSum(kernel []int32) int32 {
	var s int32
	for _, w := range kernel {
		s += w
	}
	return s
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// neighborhood holds the sample offsets of a 3x3 window around one pixel
// with edge replication already applied.
type neighborhood struct {
	rows [3]int // start of rows y-1, y, y+1
	cols [3]int // sample offset of columns x-1, x, x+1
}

// rowOffsets returns the replicated row starts around y.
func rowOffsets(y, height, stride int) [3]int {
	return [3]int{
		clampInt(y-1, 0, height-1) * stride,
		y * stride,
		clampInt(y+1, 0, height-1) * stride,
	}
}

// colOffsets returns the replicated column sample offsets around x.
func colOffsets(x, width int) [3]int {
	return [3]int{
		clampInt(x-1, 0, width-1) * Channels,
		x * Channels,
		clampInt(x+1, 0, width-1) * Channels,
	}
}

// apply computes the weighted sum of channel c over the window.
func (n *neighborhood) apply(pix []uint8, k *Kernel3, c int) int32 {
	var sum int32
	for r := 0; r < 3; r++ {
		row := n.rows[r] + c
		sum += k[r*3+0]*int32(pix[row+n.cols[0]]) +
			k[r*3+1]*int32(pix[row+n.cols[1]]) +
			k[r*3+2]*int32(pix[row+n.cols[2]])
	}
	return sum
}
