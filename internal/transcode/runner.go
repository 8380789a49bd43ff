package transcode

import (
	"context"
	"os/exec"
)

// Runner executes an external binary and returns its combined output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandRunner runs binaries with os/exec
type CommandRunner struct{}

// NewCommandRunner creates a runner backed by os/exec
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run executes name with args and returns stdout and stderr combined
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
