package cli

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfilter"
)

// newVersionCommand creates the version command, which reports the library
// version, the Go runtime and the SIMD features of the host CPU.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and platform information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			features := cpu.DetectFeatures()

			fmt.Fprintf(out, "pixfilter version %s\n", pixfilter.Version)
			fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "cpu: %s (sse2=%t avx2=%t neon=%t)\n",
				features.Architecture, features.HasSSE2, features.HasAVX2, features.HasNEON)
			fmt.Fprintf(out, "workers: %d\n", runtime.GOMAXPROCS(0))
		},
	}
}
