package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// errInvalidLogFormat indicates an unsupported --log-format value.
var errInvalidLogFormat = errors.New("invalid log format specified")

// Formats lists the accepted log formats.
var Formats = []string{"auto", "json", "logfmt", "pretty"}

// Setup configures the standard logrus logger.
func Setup(format string, level logrus.Level) error {
	return Configure(logrus.StandardLogger(), format, level)
}

// Configure sets the formatter and level of logger.
// It returns an error if the format is not one of Formats.
func Configure(logger *logrus.Logger, format string, level logrus.Level) error {
	switch strings.ToLower(format) {
	case "auto", "":
		logger.SetFormatter(&logrus.TextFormatter{
			EnvironmentOverrideColors: true,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "logfmt":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "pretty":
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: false,
		})
	default:
		return fmt.Errorf("%w: %s", errInvalidLogFormat, format)
	}

	logger.SetLevel(level)

	return nil
}

// LevelFor maps the --debug and --verbose flags to a log level.
// No flags log warnings and above; -v adds info, -vv and --debug add debug,
// and -vvv or more adds trace.
func LevelFor(verbose int, debug bool) logrus.Level {
	level := logrus.WarnLevel
	switch {
	case verbose >= 3:
		level = logrus.TraceLevel
	case verbose == 2:
		level = logrus.DebugLevel
	case verbose == 1:
		level = logrus.InfoLevel
	}

	if debug && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	return level
}
