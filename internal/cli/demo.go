package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixfilter"
)

// demoSize is the side length of the image used by the demo.
const demoSize = 256

// newDemoCommand creates the demo command, which runs every operation on
// one sample image.
func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every filter on a sample image",
		Long:  "Creates a sample image of --width x --height pixels and applies all four operations to it concurrently.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings(cmd)
			if err != nil {
				return err
			}

			eng, err := newEngine(s, pixfilter.WithBrightnessFactor(s.Factor))
			if err != nil {
				return err
			}
			defer eng.Close()

			return runDemo(cmd.Context(), cmd.OutOrStdout(), eng, s.Width, s.Height)
		},
	}
}

// runDemo applies all operations to a width x height sample image and
// prints the resulting statistics in operation order.
func runDemo(ctx context.Context, out io.Writer, eng *pixfilter.Engine, width, height int) error {
	p := message.NewPrinter(language.English)

	p.Fprintln(out, "Creating sample image...")

	img, err := pixfilter.CreateSampleImage(width, height)
	if err != nil {
		return err
	}

	p.Fprintf(out, "Created image with shape: %s, dtype: %s\n", formatShape(img), pixfilter.Uint8)

	ops := pixfilter.Operations()

	results, err := pixfilter.ProcessAll(ctx, img, ops, pixfilter.WithEngine(eng))
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	originalMean := img.Mean()
	for i, op := range ops {
		processed := results[i]

		p.Fprintf(out, "Applying %s filter...\n", op)
		p.Fprintf(out, "Processed image shape: %s, dtype: %s\n", formatShape(processed), processed.Array().DType)
		p.Fprintf(out, "  Original mean intensity: %.2f\n", originalMean)
		p.Fprintf(out, "  Processed mean intensity: %.2f\n", processed.Mean())
		means := processed.ChannelMeans()
		p.Fprintf(out, "  Processed channel means (R, G, B): %.2f, %.2f, %.2f\n", means[0], means[1], means[2])
		p.Fprintln(out)
	}

	return nil
}
