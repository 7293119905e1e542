package pixfilter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Operation names a filter the dispatcher can run.
type Operation string

// Operations understood by Process.
const (
	OpBlur       Operation = "blur"
	OpSharpen    Operation = "sharpen"
	OpEdgeDetect Operation = "edge_detect"
	OpBrightness Operation = "brightness"
)

// Operations returns every supported operation in a stable order.
func Operations() []Operation {
	return []Operation{OpBlur, OpSharpen, OpEdgeDetect, OpBrightness}
}

// String returns the operation name.
func (op Operation) String() string {
	return string(op)
}

// Valid reports whether op is a supported operation.
func (op Operation) Valid() bool {
	switch op {
	case OpBlur, OpSharpen, OpEdgeDetect, OpBrightness:
		return true
	}
	return false
}

// ParseOperation converts a name into an Operation.
// Names are matched exactly; unknown names return an *UnknownOperationError.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.Valid() {
		return "", &UnknownOperationError{Name: name}
	}
	return op, nil
}

// Process validates a and applies the named operation to it.
//
// The array is checked before the operation name, so a malformed array is
// reported even when the name is also wrong. The input data is read but
// never written; the result is a new buffer.
//
// Example:
//
//	img, _ := pixfilter.CreateSampleImage(256, 256)
//	out, err := pixfilter.Process(img.Array(), "edge_detect")
func Process(a *Array, op string, opts ...Option) (*PixelBuffer, error) {
	return ProcessContext(context.Background(), a, op, opts...)
}

// ProcessContext is like Process but stops between output rows when ctx is
// cancelled and returns ctx.Err().
func ProcessContext(ctx context.Context, a *Array, op string, opts ...Option) (*PixelBuffer, error) {
	if err := Validate(a); err != nil {
		logRejected(op, err)
		return nil, err
	}
	operation, err := ParseOperation(op)
	if err != nil {
		logRejected(op, err)
		return nil, err
	}

	img := &PixelBuffer{width: a.Shape[1], height: a.Shape[0], data: a.Data}
	return ProcessBuffer(ctx, img, operation, opts...)
}

// ProcessBuffer applies op to an already validated buffer.
func ProcessBuffer(ctx context.Context, img *PixelBuffer, op Operation, opts ...Option) (*PixelBuffer, error) {
	o := applyOptions(opts)
	return o.dispatch(ctx, img, op)
}

// ProcessAll applies every operation in ops to img concurrently and returns
// the results in the order of ops. The first failure cancels the remaining
// operations and is returned alone.
func ProcessAll(ctx context.Context, img *PixelBuffer, ops []Operation, opts ...Option) ([]*PixelBuffer, error) {
	if img == nil {
		return nil, &ValidationError{Constraint: ConstraintShape}
	}
	for _, op := range ops {
		if !op.Valid() {
			return nil, &UnknownOperationError{Name: string(op)}
		}
	}

	o := applyOptions(opts)
	results := make([]*PixelBuffer, len(ops))

	g, ctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		g.Go(func() error {
			out, err := o.dispatch(ctx, img, op)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// dispatch runs op on the engine selected by o.
func (o *options) dispatch(ctx context.Context, img *PixelBuffer, op Operation) (*PixelBuffer, error) {
	eng := o.engine
	if eng == nil {
		eng = defaultEngine()
	}

	switch op {
	case OpBlur:
		return eng.GaussianBlur(ctx, img)
	case OpSharpen:
		return eng.Sharpen(ctx, img)
	case OpEdgeDetect:
		return eng.EdgeDetect(ctx, img)
	case OpBrightness:
		factor := eng.factor
		if o.factorSet {
			factor = o.factor
		}
		return eng.AdjustBrightness(ctx, img, factor)
	default:
		return nil, &UnknownOperationError{Name: string(op)}
	}
}
