package pixfilter

// Array is a loosely-typed n-dimensional sample array, the form in which
// callers outside this package hand over image data.
//
// Data holds the raw samples in row-major order, little-endian for
// multi-byte types. An Array becomes a [PixelBuffer] only after [Validate]
// accepts it.
type Array struct {
	Shape []int
	DType DType
	Data  []byte
}

// Validate checks that a is an RGB buffer of shape (height, width, 3) with
// uint8 samples and matching data length.
//
// Rules are checked in order: shape, sample type, data length. The first
// violation is returned as a *ValidationError. Validate has no side effects.
func Validate(a *Array) error {
	if a == nil {
		return &ValidationError{Constraint: ConstraintShape}
	}

	if len(a.Shape) != 3 || a.Shape[2] != Channels || !validDimensions(a.Shape[1], a.Shape[0]) {
		return &ValidationError{Constraint: ConstraintShape, Shape: a.Shape, DType: a.DType}
	}

	if a.DType != Uint8 {
		return &ValidationError{Constraint: ConstraintDType, Shape: a.Shape, DType: a.DType}
	}

	if len(a.Data) != a.Shape[0]*a.Shape[1]*Channels {
		return &ValidationError{
			Constraint: ConstraintLength,
			Shape:      a.Shape,
			DType:      a.DType,
			DataLen:    len(a.Data),
		}
	}

	return nil
}

// FromArray validates a and wraps its data in a PixelBuffer without copying.
// Ownership of a.Data moves to the returned buffer; the caller must not
// write to it afterwards.
func FromArray(a *Array) (*PixelBuffer, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	return &PixelBuffer{
		width:  a.Shape[1],
		height: a.Shape[0],
		data:   a.Data,
	}, nil
}

// Array returns a view of p as an Array. The data is shared, not copied.
func (p *PixelBuffer) Array() *Array {
	return &Array{
		Shape: []int{p.height, p.width, Channels},
		DType: Uint8,
		Data:  p.data,
	}
}
