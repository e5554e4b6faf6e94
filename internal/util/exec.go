package util

import (
	"context"
	"errors"
	"fmt"
	"github.com/markusressel/dim2go/internal/ui"
	"os/exec"
	"strings"
	"time"
)

// CommandFunc runs an executable and returns its trimmed stdout
type CommandFunc func(executable string, args []string, timeout time.Duration) (string, error)

// SafeCmdExecution runs the given executable only if it is owned by root and
// not writable by anyone else, see CheckFilePermissionsForExecution.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}
	return runCommand(executable, args, timeout)
}

func runCommand(executable string, args []string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, executable, args...).Output()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		ui.Warning("Command %s timed out after %v", executable, timeout)
		return "", fmt.Errorf("%s: %w", executable, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if len(stderr) > 0 {
				return "", fmt.Errorf("%s exited with code %d: %s", executable, exitErr.ExitCode(), stderr)
			}
			return "", fmt.Errorf("%s exited with code %d", executable, exitErr.ExitCode())
		}
		return "", fmt.Errorf("%s: %w", executable, err)
	}

	return strings.TrimSpace(string(out)), nil
}
