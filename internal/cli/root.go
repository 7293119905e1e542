package cli

import (
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/internal/flags"
	"github.com/gogpu/pixfilter/internal/logging"
)

// NewRootCommand creates the pixfilter root command with all subcommands
// and flags registered.
//
// Without a subcommand it creates a sample image, applies --operation to it
// and prints the shape and mean intensity of both images.
func NewRootCommand() *cobra.Command {
	flags.SetDefaults()

	rootCmd := &cobra.Command{
		Use:               "pixfilter",
		Short:             "Filters 8-bit RGB images",
		Long:              "\nApplies Gaussian blur, sharpen, edge detection and brightness filters to synthetic RGB test images.",
		Version:           pixfilter.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
		RunE:              runRoot,
	}
	rootCmd.SetVersionTemplate("{{.Name}} (version {{.Version}})\n")

	flags.RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		newDemoCommand(),
		newBenchCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// preRun configures logging from the flags and routes library logs to logrus.
func preRun(cmd *cobra.Command, _ []string) error {
	s, err := flags.Read(cmd.Flags())
	if err != nil {
		return err
	}

	if err := logging.Setup(s.LogFormat, logging.LevelFor(s.Verbose, s.Debug)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	pixfilter.SetLogger(slog.New(logging.NewSlogHandler(logrus.StandardLogger())))

	return nil
}

// settings reads and validates the persistent flags of cmd.
func settings(cmd *cobra.Command) (flags.Settings, error) {
	s, err := flags.Read(cmd.Flags())
	if err != nil {
		return s, err
	}

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// newEngine creates the engine configured by s plus any extra options.
func newEngine(s flags.Settings, extra ...pixfilter.Option) (*pixfilter.Engine, error) {
	eng, err := pixfilter.NewEngine(append(s.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter engine: %w", err)
	}

	return eng, nil
}

// runRoot filters a single sample image.
func runRoot(cmd *cobra.Command, _ []string) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}

	eng, err := newEngine(s)
	if err != nil {
		return err
	}
	defer eng.Close()

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Pixel Filter")
	fmt.Fprintf(out, "Creating %dx%d sample image...\n", s.Width, s.Height)

	img, err := pixfilter.CreateSampleImage(s.Width, s.Height)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Applying %s filter...\n", s.Operation)

	processed, err := pixfilter.ProcessContext(cmd.Context(), img.Array(), s.Operation,
		pixfilter.WithEngine(eng))
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", s.Operation, err)
	}

	logrus.WithFields(logrus.Fields{
		"operation": s.Operation,
		"workers":   eng.Workers(),
	}).Info("Filter applied")

	fmt.Fprintf(out, "Original image - Shape: %s, Mean intensity: %.2f\n",
		formatShape(img), img.Mean())
	fmt.Fprintf(out, "Processed image - Shape: %s, Mean intensity: %.2f\n",
		formatShape(processed), processed.Mean())

	if s.Debug {
		fmt.Fprintln(out, "Debug: Running full demo...")
		return runDemo(cmd.Context(), out, eng, demoSize, demoSize)
	}

	return nil
}

// formatShape renders the array shape of img, e.g. "(256, 256, 3)".
func formatShape(img *pixfilter.PixelBuffer) string {
	s := img.Shape()
	return fmt.Sprintf("(%d, %d, %d)", s[0], s[1], s[2])
}
