package installer

import (
	"context"
	"os"
	"os/exec"

	"github.com/cortexlinux/cortex/pkg/errors"
)

// Runner executes package manager commands. The indirection exists so
// tests and dry runs never touch the real system.
type Runner interface {
	Run(ctx context.Context, command string, args ...string) error
}

// ExecRunner runs commands on the host, inheriting stderr so apt's
// own diagnostics stay visible.
type ExecRunner struct{}

// Run executes the command, returning ErrRunnerNotFound when the
// binary is missing from PATH.
func (r *ExecRunner) Run(ctx context.Context, command string, args ...string) error {
	if _, err := exec.LookPath(command); err != nil {
		return errors.Wrapf(err, errors.ErrRunnerNotFound, "%s not found in PATH", command)
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
