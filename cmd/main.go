package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point of campaign-sync. Every subcommand loads the
// configuration, opens the selected store and registers the platform
// adapters before doing its work. SIGINT and SIGTERM cancel the command's
// context; servers then shut down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
		exitCode = 0
	case errors.Is(err, errValidationFailed):
		exitCode = 2
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}
