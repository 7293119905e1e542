package flags

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/pixfilter"
)

// Default sample image size in pixels.
const (
	defaultWidth  = 256
	defaultHeight = 256
)

// errGetFlagFailed indicates a flag could not be read from the flag set.
var errGetFlagFailed = errors.New("failed to get flag value")

// errInvalidSize indicates a non-positive --width or --height.
var errInvalidSize = errors.New("image width and height must be positive")

// Settings holds the values of the persistent flags after parsing.
type Settings struct {
	Width     int
	Height    int
	Operation string
	Factor    float64
	Workers   int
	Debug     bool
	Verbose   int
	LogFormat string
}

// SetDefaults configures default values for the PIXFILTER_* environment
// variables. It must run before RegisterFlags so flag defaults see them.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("PIXFILTER_WIDTH", defaultWidth)
	viper.SetDefault("PIXFILTER_HEIGHT", defaultHeight)
	viper.SetDefault("PIXFILTER_OPERATION", pixfilter.OpBlur.String())
	viper.SetDefault("PIXFILTER_FACTOR", pixfilter.DefaultBrightnessFactor)
	viper.SetDefault("PIXFILTER_WORKERS", 0)
	viper.SetDefault("PIXFILTER_LOG_FORMAT", "auto")
}

// RegisterFlags adds the persistent flags shared by all pixfilter commands.
func RegisterFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.Int(
		"width",
		envInt("PIXFILTER_WIDTH"),
		"Image width")

	flags.Int(
		"height",
		envInt("PIXFILTER_HEIGHT"),
		"Image height")

	flags.StringP(
		"operation",
		"o",
		envString("PIXFILTER_OPERATION"),
		"Image processing operation to perform (blur, sharpen, edge_detect, brightness)")

	flags.Float64(
		"factor",
		envFloat("PIXFILTER_FACTOR"),
		"Brightness factor for the brightness operation")

	flags.Int(
		"workers",
		envInt("PIXFILTER_WORKERS"),
		"Number of filter workers (0 uses all CPUs)")

	flags.BoolP(
		"debug",
		"d",
		false,
		"Enable debug output and run the full demo")

	flags.CountP(
		"verbose",
		"v",
		"Verbosity (-v, -vv, etc)")

	flags.String(
		"log-format",
		envString("PIXFILTER_LOG_FORMAT"),
		"Log format: auto, json, logfmt or pretty")
}

// Read collects the persistent flag values from flags.
func Read(flags *pflag.FlagSet) (Settings, error) {
	var (
		s   Settings
		err error
	)

	if s.Width, err = flags.GetInt("width"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Height, err = flags.GetInt("height"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Operation, err = flags.GetString("operation"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Factor, err = flags.GetFloat64("factor"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Workers, err = flags.GetInt("workers"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Debug, err = flags.GetBool("debug"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.Verbose, err = flags.GetCount("verbose"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	if s.LogFormat, err = flags.GetString("log-format"); err != nil {
		return s, fmt.Errorf("%w: %w", errGetFlagFailed, err)
	}

	return s, nil
}

// Validate checks the settings that can be rejected before any work starts.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", errInvalidSize, s.Width, s.Height)
	}

	op, err := pixfilter.ParseOperation(s.Operation)
	if err != nil {
		return err
	}

	if op == pixfilter.OpBrightness {
		if err := pixfilter.CheckBrightnessFactor(s.Factor); err != nil {
			return err
		}
	}

	return nil
}

// Options returns the library options selected by the settings.
// The brightness factor is only included when the selected operation is
// brightness; commands that always run it add WithBrightnessFactor
// themselves.
func (s Settings) Options() []pixfilter.Option {
	opts := []pixfilter.Option{pixfilter.WithWorkers(s.Workers)}
	if s.Operation == pixfilter.OpBrightness.String() {
		opts = append(opts, pixfilter.WithBrightnessFactor(s.Factor))
	}
	return opts
}

// envString retrieves a string value from an environment variable via Viper.
func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

// envInt retrieves an integer value from an environment variable via Viper.
func envInt(key string) int {
	viper.MustBindEnv(key)

	return viper.GetInt(key)
}

// envFloat retrieves a float value from an environment variable via Viper.
func envFloat(key string) float64 {
	viper.MustBindEnv(key)

	return viper.GetFloat64(key)
}
