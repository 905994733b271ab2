package claude

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NotFoundSentinel is printed by `claude mcp get` when no server has the name.
const NotFoundSentinel = "No MCP server found"

// Existence is the answer of the existence oracle.
type Existence int

const (
	// ExistenceUnknown means the check itself failed or timed out.
	ExistenceUnknown Existence = iota

	// ExistenceAbsent means the claude CLI confirmed no such server.
	ExistenceAbsent

	// ExistencePresent means a server with the name is registered.
	ExistencePresent
)

// String returns a readable name.
func (e Existence) String() string {
	switch e {
	case ExistenceAbsent:
		return "absent"
	case ExistencePresent:
		return "present"
	default:
		return "unknown"
	}
}

// Result is the outcome of a mutating claude call.
type Result struct {
	Success bool
	Output  string
}

// Registry provides an abstraction over Claude Code's MCP registrations.
type Registry interface {
	// Available returns an error when the claude CLI cannot be run.
	Available(ctx context.Context) error

	// Exists reports whether a registration named name exists. The error is
	// non-nil only together with ExistenceUnknown.
	Exists(ctx context.Context, name string) (Existence, error)

	// Add registers server under name in scope.
	Add(ctx context.Context, name string, server Server, scope Scope) Result

	// Remove deletes the registration named name from scope.
	Remove(ctx context.Context, name string, scope Scope) Result
}

// Timeouts bounds each kind of claude invocation.
type Timeouts struct {
	Version time.Duration
	Get     time.Duration
	Add     time.Duration
	Remove  time.Duration
}

// DefaultTimeouts returns the per-call limits used by the CLI.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Version: 5 * time.Second,
		Get:     10 * time.Second,
		Add:     15 * time.Second,
		Remove:  10 * time.Second,
	}
}

// CLIRegistry implements Registry by invoking the claude CLI.
type CLIRegistry struct {
	bin      string
	runner   Runner
	timeouts Timeouts
	log      zerolog.Logger
}

// NewCLIRegistry creates a CLIRegistry for the given claude executable.
func NewCLIRegistry(bin string, runner Runner, timeouts Timeouts, log zerolog.Logger) *CLIRegistry {
	return &CLIRegistry{
		bin:      bin,
		runner:   runner,
		timeouts: timeouts,
		log:      log.With().Str("component", "claude").Logger(),
	}
}

var _ Registry = (*CLIRegistry)(nil)

// Available runs `claude --version`.
func (r *CLIRegistry) Available(ctx context.Context) error {
	out, err := r.run(ctx, r.timeouts.Version, "--version")
	if err != nil {
		return fmt.Errorf("%s --version: %w", r.bin, err)
	}
	r.log.Debug().Str("version", strings.TrimSpace(out.Stdout)).Msg("claude CLI available")
	return nil
}

// Exists runs `claude mcp get <name>`. The not-found sentinel in either
// stream means absent; any other failure is reported as unknown.
func (r *CLIRegistry) Exists(ctx context.Context, name string) (Existence, error) {
	out, err := r.run(ctx, r.timeouts.Get, "mcp", "get", name)
	if strings.Contains(out.Stdout, NotFoundSentinel) || strings.Contains(out.Stderr, NotFoundSentinel) {
		return ExistenceAbsent, nil
	}
	if err != nil {
		return ExistenceUnknown, fmt.Errorf("mcp get %s: %w", name, err)
	}
	return ExistencePresent, nil
}

// Add runs `claude mcp add-json -s <scope> <name> <json>`.
func (r *CLIRegistry) Add(ctx context.Context, name string, server Server, scope Scope) Result {
	payload, err := Encode(server)
	if err != nil {
		return Result{Success: false, Output: err.Error()}
	}

	out, err := r.run(ctx, r.timeouts.Add, "mcp", "add-json", "-s", scope.String(), name, payload)
	return toResult(out, err)
}

// Remove runs `claude mcp remove -s <scope> <name>`.
func (r *CLIRegistry) Remove(ctx context.Context, name string, scope Scope) Result {
	out, err := r.run(ctx, r.timeouts.Remove, "mcp", "remove", "-s", scope.String(), name)
	return toResult(out, err)
}

func (r *CLIRegistry) run(ctx context.Context, timeout time.Duration, args ...string) (Output, error) {
	r.log.Debug().Str("bin", r.bin).Strs("args", args).Dur("timeout", timeout).Msg("running claude")

	out, err := r.runner.Run(ctx, timeout, r.bin, args...)

	event := r.log.Debug()
	if err != nil {
		event = event.Err(err)
	}
	event.Str("stdout", strings.TrimSpace(out.Stdout)).
		Str("stderr", strings.TrimSpace(out.Stderr)).
		Msg("claude finished")

	return out, err
}

func toResult(out Output, err error) Result {
	if err != nil {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = err.Error()
		}
		return Result{Success: false, Output: msg}
	}

	msg := strings.TrimSpace(out.Stdout)
	if msg == "" {
		msg = strings.TrimSpace(out.Stderr)
	}
	return Result{Success: true, Output: msg}
}
