// Command pixfilter applies image filters to synthetic RGB test images.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/gogpu/pixfilter/internal/cli"
)

// init sets the log level used until flags are parsed.
func init() {
	logrus.SetLevel(logrus.WarnLevel)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		logrus.WithError(err).Fatal("pixfilter failed")
	}
}
