package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts app, blocks until ctx is cancelled or app asks to shut down, and returns the exit code.
// Stop gets no deadline of its own so the configured shutdown timeout bounds the HTTP server.
func run(ctx context.Context, app *fx.App) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "banksajt: start: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "banksajt: stop: %v\n", err)
		return 1
	}
	return code
}
