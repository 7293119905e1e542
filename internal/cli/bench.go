package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixfilter"
)

// defaultIterations is the number of timed runs per operation and size.
const defaultIterations = 5

// errInvalidIterations indicates a non-positive --iterations value.
var errInvalidIterations = errors.New("iterations must be positive")

// defaultBenchSizes are the square image sizes benchmarked when --sizes is unset.
var defaultBenchSizes = []int{128, 256, 512}

// newBenchCommand creates the bench command, which times every operation on
// sample images of several sizes.
func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every filter on sample images of several sizes",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}

	cmd.Flags().IntP("iterations", "n", defaultIterations, "Timed runs per operation")
	cmd.Flags().IntSlice("sizes", defaultBenchSizes, "Square image sizes to benchmark")

	return cmd
}

// timing summarizes the durations of repeated runs.
type timing struct {
	mean   time.Duration
	stddev time.Duration
}

// runBench executes the benchmark and prints a report per size and operation.
func runBench(cmd *cobra.Command, _ []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}

	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return err
	}

	if iterations <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidIterations, iterations)
	}

	sizes, err := cmd.Flags().GetIntSlice("sizes")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()

	eng, err := newEngine(s,
		pixfilter.WithBrightnessFactor(s.Factor),
		pixfilter.WithRegisterer(reg))
	if err != nil {
		return err
	}
	defer eng.Close()

	runID := uuid.New()
	log := logrus.WithField("run", runID.String())
	log.WithFields(logrus.Fields{
		"iterations": iterations,
		"workers":    eng.Workers(),
	}).Info("Benchmark started")

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	p.Fprintln(out, "Pixel Filter Benchmark")
	p.Fprintln(out, strings.Repeat("=", 50))

	for _, size := range sizes {
		if err := benchSize(cmd.Context(), out, p, eng, log, size, iterations); err != nil {
			return err
		}
	}

	calls, pixels, err := gatherTotals(reg)
	if err != nil {
		return err
	}

	p.Fprintln(out)
	p.Fprintln(out, strings.Repeat("=", 50))
	p.Fprintf(out, "Run %s: %d filter calls, %d pixels processed\n", runID, calls, pixels)

	log.Info("Benchmark completed")

	return nil
}

// benchSize benchmarks all operations on one size x size sample image.
func benchSize(
	ctx context.Context,
	out io.Writer,
	p *message.Printer,
	eng *pixfilter.Engine,
	log *logrus.Entry,
	size, iterations int,
) error {
	p.Fprintf(out, "\nTesting with %dx%d image:\n", size, size)
	p.Fprintln(out, strings.Repeat("-", 30))
	p.Fprintln(out, "Creating sample image...")

	start := time.Now()

	img, err := pixfilter.CreateSampleImage(size, size)
	if err != nil {
		return err
	}

	created := time.Since(start)
	lo, hi := img.MinMax()

	p.Fprintf(out, "  Created in %.2f ms\n", milliseconds(created))
	p.Fprintf(out, "  Shape: %s, Size: %.1f KB\n", formatShape(img), float64(img.Len())/1024)
	p.Fprintf(out, "  Value range: [%d, %d]\n", lo, hi)

	for _, op := range pixfilter.Operations() {
		p.Fprintf(out, "\nTesting %s operation:\n", op)

		result, t, err := timeOperation(ctx, eng, img, op, iterations)
		if err != nil {
			p.Fprintf(out, "  Error: %v\n", err)
			log.WithError(err).WithField("operation", op).Error("Benchmark step failed")

			if ctx.Err() != nil {
				return ctx.Err()
			}

			continue
		}

		lo, hi := result.MinMax()

		p.Fprintf(out, "  Average time: %.2f ± %.2f ms\n", milliseconds(t.mean), milliseconds(t.stddev))
		p.Fprintf(out, "  Output shape: %s\n", formatShape(result))
		p.Fprintf(out, "  Output range: [%d, %d]\n", lo, hi)

		if t.mean > 0 {
			throughput := float64(size*size) / t.mean.Seconds() / 1e6
			p.Fprintf(out, "  Throughput: %.1f Mpixels/sec\n", throughput)
		}

		log.WithFields(logrus.Fields{
			"operation": op,
			"size":      size,
			"mean":      t.mean,
			"stddev":    t.stddev,
		}).Debug("Operation timed")
	}

	return nil
}

// timeOperation runs op iterations times through the dispatcher and returns
// the last result with the timing summary.
func timeOperation(
	ctx context.Context,
	eng *pixfilter.Engine,
	img *pixfilter.PixelBuffer,
	op pixfilter.Operation,
	iterations int,
) (*pixfilter.PixelBuffer, timing, error) {
	samples := make([]float64, iterations)

	var result *pixfilter.PixelBuffer

	for i := range samples {
		start := time.Now()

		out, err := pixfilter.ProcessContext(ctx, img.Array(), op.String(), pixfilter.WithEngine(eng))
		if err != nil {
			return nil, timing{}, err
		}

		samples[i] = time.Since(start).Seconds()
		result = out
	}

	return result, summarize(samples), nil
}

// summarize returns the mean and population standard deviation of samples
// given in seconds.
func summarize(samples []float64) timing {
	if len(samples) == 0 {
		return timing{}
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}

	mean := sum / float64(len(samples))

	dev := make([]float64, len(samples))
	for i, v := range samples {
		dev[i] = v - mean
	}

	sq := make([]float64, len(samples))
	vecmath.MulBlock(sq, dev, dev)

	var variance float64
	for _, v := range sq {
		variance += v
	}

	variance /= float64(len(samples))

	return timing{
		mean:   seconds(mean),
		stddev: seconds(math.Sqrt(variance)),
	}
}

// gatherTotals sums the call and pixel counters recorded in reg.
func gatherTotals(reg *prometheus.Registry) (calls, pixels int64, err error) {
	families, err := reg.Gather()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}

		switch mf.GetName() {
		case "pixfilter_operations_total":
			calls = int64(total)
		case "pixfilter_pixels_processed_total":
			pixels = int64(total)
		}
	}

	return calls, pixels, nil
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
