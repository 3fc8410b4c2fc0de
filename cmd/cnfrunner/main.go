package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sergz72/cnf-runner/pkg/lib"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCommand()
	rootCmd.AddCommand(newVarsCommand())
	rootCmd.AddCommand(newExampleCommand())

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	if isFlagInterceptError(err) {
		lib.Exit(err,
			"hint: flags after the exec file are intercepted by "+appName+"; use -- to pass them through:",
			"  "+appName+" <config> <env> <exec> -- <flags>",
		)
	}
	lib.Exit(err)
}

// isFlagInterceptError reports whether the error is cobra intercepting a flag
// that was meant for the external process.
func isFlagInterceptError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown flag:") || strings.Contains(msg, "unknown shorthand flag:")
}
