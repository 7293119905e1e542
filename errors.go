package pixfilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for pixfilter. The typed errors below unwrap to these, so
// callers may use either errors.Is or errors.As.
var (
	// ErrValidation is returned when an input array is not a valid RGB buffer.
	ErrValidation = errors.New("pixfilter: invalid pixel buffer")

	// ErrInvalidDimension is returned when width or height is non-positive
	// or the buffer they describe is too large to address.
	ErrInvalidDimension = errors.New("pixfilter: invalid dimensions")

	// ErrUnknownOperation is returned when an operation name is not recognized.
	ErrUnknownOperation = errors.New("pixfilter: unknown operation")

	// ErrInvalidFactor is returned when a brightness factor is not a
	// positive finite number.
	ErrInvalidFactor = errors.New("pixfilter: invalid brightness factor")
)

// Constraint names the validation rule an input array violated.
type Constraint uint8

const (
	// ConstraintShape means the array is not (height, width, 3) with
	// positive height and width, or holds more samples than an int can count.
	ConstraintShape Constraint = iota

	// ConstraintDType means the samples are not uint8.
	ConstraintDType

	// ConstraintLength means the backing data does not hold exactly
	// height*width*3 samples.
	ConstraintLength
)

// String returns a short name for the constraint.
func (c Constraint) String() string {
	switch c {
	case ConstraintShape:
		return "shape"
	case ConstraintDType:
		return "dtype"
	case ConstraintLength:
		return "length"
	default:
		return "unknown"
	}
}

// ValidationError reports a malformed input array. It is returned before any
// computation starts, so no partial output exists.
type ValidationError struct {
	Constraint Constraint
	Shape      []int
	DType      DType
	DataLen    int
}

func (e *ValidationError) Error() string {
	switch e.Constraint {
	case ConstraintShape:
		return "pixfilter: input must be a 3D array with shape (height, width, 3), got " + formatShape(e.Shape)
	case ConstraintDType:
		return "pixfilter: input array must have dtype uint8, got " + e.DType.String()
	case ConstraintLength:
		want := 0
		if len(e.Shape) == 3 {
			want = e.Shape[0] * e.Shape[1] * e.Shape[2] * e.DType.Size()
		}
		return fmt.Sprintf("pixfilter: input data holds %d bytes, shape %s needs %d",
			e.DataLen, formatShape(e.Shape), want)
	default:
		return "pixfilter: invalid pixel buffer"
	}
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidDimensionError indicates a non-positive width or height, or
// dimensions whose sample count does not fit in an int.
type InvalidDimensionError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionError) Error() string {
	if e.Width > 0 && e.Height > 0 {
		return fmt.Sprintf("pixfilter: invalid dimensions %dx%d: buffer too large", e.Width, e.Height)
	}
	return fmt.Sprintf("pixfilter: invalid dimensions %dx%d: width and height must be positive", e.Width, e.Height)
}

func (e *InvalidDimensionError) Unwrap() error { return ErrInvalidDimension }

// UnknownOperationError indicates an operation name the dispatcher does not know.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return "pixfilter: unknown operation: " + e.Name
}

func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }

// InvalidFactorError indicates a brightness factor that is zero, negative,
// NaN or infinite.
type InvalidFactorError struct {
	Factor float64
}

func (e *InvalidFactorError) Error() string {
	return "pixfilter: brightness factor must be a positive finite number, got " +
		strconv.FormatFloat(e.Factor, 'g', -1, 64)
}

func (e *InvalidFactorError) Unwrap() error { return ErrInvalidFactor }

// formatShape renders a shape the way array libraries print it, e.g. "(50, 50)".
func formatShape(shape []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d))
	}
	if len(shape) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}
