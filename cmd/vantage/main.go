// File: cmd/vantage/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/xkilldash9x/vantage/cmd"
	"github.com/xkilldash9x/vantage/internal/observability"
)

// Exit codes. A failed check suite is distinguished from a usage or runtime error.
const (
	exitOK           = 0
	exitChecksFailed = 1
	exitError        = 2
)

// Allows mocking os.Exit in tests.
var osExit = os.Exit

func main() {
	defer handlePanic()

	// Cancel in-flight measurements on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	osExit(exitCode(cmd.Execute(ctx)))
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return exitOK
	case errors.Is(err, cmd.ErrChecksFailed):
		return exitChecksFailed
	default:
		return exitError
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		observability.Sync()
		fmt.Fprintf(os.Stderr, "panic: %v\n\n%s", r, debug.Stack())
		osExit(exitError)
	}
}
