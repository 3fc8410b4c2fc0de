package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// execute runs execFile with args and waits for it to exit.
//
// The process inherits the parent environment with env overlaid on top
// (later entries win), inherits stdin, and writes to stdout/stderr. A
// non-zero exit is not an error here: the returned state carries it and the
// caller reports it.
func execute(ctx context.Context, execFile string, args, env []string, stdout, stderr io.Writer) (*os.ProcessState, error) {
	cmd := exec.CommandContext(ctx, execFile, args...)

	// Environment: start from the process env, then overlay resolved vars.
	cmd.Env = append(os.Environ(), env...)

	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("running %s: %w", execFile, err)
	}
	return cmd.ProcessState, nil
}
