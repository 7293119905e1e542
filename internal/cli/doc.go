// Package cli contains the pixfilter command-line interface: the root
// command, which filters one sample image, and the demo, bench and version
// subcommands.
package cli
