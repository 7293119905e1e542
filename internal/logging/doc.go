// Package logging configures logrus for the pixfilter command and bridges
// the library's log/slog records into it.
package logging
