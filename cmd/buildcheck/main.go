// Command buildcheck runs the packaging pipeline: pre-build validation,
// the build itself, post-build validation. It takes no flags; the first
// failing step's exit code becomes its own.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katavolt/resistiv/buildrun"
)

func main() {
	os.Exit(run())
}

// run keeps deferred cleanup ahead of the final os.Exit.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "buildcheck: logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	r := &buildrun.Runner{
		Steps: buildrun.DefaultSteps(),
		Log:   logger,
	}
	code, err := r.Run(ctx)
	if err != nil {
		logger.Error("pipeline could not run", zap.Error(err))
	}
	return code
}
