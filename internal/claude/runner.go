package claude

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimeout is wrapped into errors from calls that hit their deadline.
var ErrTimeout = errors.New("timed out")

// Output holds the captured streams of one command.
type Output struct {
	Stdout string
	Stderr string
}

// Runner executes an external command with a deadline.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (Output, error)
}

// waitDelay bounds how long Run waits for output pipes after the process is
// killed. Children of a wrapper script can otherwise hold them open.
const waitDelay = time.Second

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run starts name with args and waits at most timeout for it to exit. On
// expiry the process is killed, pipes are released after waitDelay, and the
// error wraps ErrTimeout.
func (ExecRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (Output, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
	return out, err
}
