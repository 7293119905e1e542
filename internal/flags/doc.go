// Package flags manages command-line flags and PIXFILTER_* environment
// variables for the pixfilter command.
package flags
