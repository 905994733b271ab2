package claude

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runCall struct {
	timeout time.Duration
	name    string
	args    []string
}

// scriptedRunner returns canned outputs keyed by the first two args.
type scriptedRunner struct {
	responses map[string]scriptedResponse
	calls     []runCall
}

type scriptedResponse struct {
	out Output
	err error
}

func (r *scriptedRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (Output, error) {
	r.calls = append(r.calls, runCall{timeout: timeout, name: name, args: args})
	key := args[0]
	if len(args) > 1 {
		key += " " + args[1]
	}
	resp := r.responses[key]
	return resp.out, resp.err
}

func newTestRegistry(responses map[string]scriptedResponse) (*CLIRegistry, *scriptedRunner) {
	runner := &scriptedRunner{responses: responses}
	return NewCLIRegistry("claude", runner, DefaultTimeouts(), zerolog.Nop()), runner
}

func TestCLIRegistry_Exists(t *testing.T) {
	tests := []struct {
		name    string
		resp    scriptedResponse
		want    Existence
		wantErr bool
	}{
		{
			name: "present",
			resp: scriptedResponse{out: Output{Stdout: "fs:\n  Scope: User config\n  Type: stdio\n"}},
			want: ExistencePresent,
		},
		{
			name: "sentinel on stdout with success",
			resp: scriptedResponse{out: Output{Stdout: "No MCP server found with name: fs"}},
			want: ExistenceAbsent,
		},
		{
			name: "sentinel on stderr with failure",
			resp: scriptedResponse{
				out: Output{Stderr: "No MCP server found with name: fs"},
				err: errors.New("exit status 1"),
			},
			want: ExistenceAbsent,
		},
		{
			name:    "failure without sentinel",
			resp:    scriptedResponse{out: Output{Stderr: "boom"}, err: errors.New("exit status 2")},
			want:    ExistenceUnknown,
			wantErr: true,
		},
		{
			name:    "timeout",
			resp:    scriptedResponse{err: fmt.Errorf("%w after 10s", ErrTimeout)},
			want:    ExistenceUnknown,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, runner := newTestRegistry(map[string]scriptedResponse{"mcp get": tt.resp})

			got, err := reg.Exists(context.Background(), "fs")
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			require.Len(t, runner.calls, 1)
			assert.Equal(t, []string{"mcp", "get", "fs"}, runner.calls[0].args)
			assert.Equal(t, 10*time.Second, runner.calls[0].timeout)
		})
	}
}

func TestCLIRegistry_Exists_TimeoutIsWrapped(t *testing.T) {
	reg, _ := newTestRegistry(map[string]scriptedResponse{
		"mcp get": {err: fmt.Errorf("%w after 10s", ErrTimeout)},
	})

	_, err := reg.Exists(context.Background(), "slow")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCLIRegistry_Add(t *testing.T) {
	reg, runner := newTestRegistry(map[string]scriptedResponse{
		"mcp add-json": {out: Output{Stdout: "Added stdio MCP server fs to user config\n"}},
	})

	res := reg.Add(context.Background(), "fs", &StdioServer{Command: "npx", Args: []string{"-y", "server-fs"}}, ScopeUser)

	assert.True(t, res.Success)
	assert.Equal(t, "Added stdio MCP server fs to user config", res.Output)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "claude", runner.calls[0].name)
	assert.Equal(t,
		[]string{"mcp", "add-json", "-s", "user", "fs", `{"command":"npx","args":["-y","server-fs"]}`},
		runner.calls[0].args)
	assert.Equal(t, 15*time.Second, runner.calls[0].timeout)
}

func TestCLIRegistry_Add_Failure(t *testing.T) {
	tests := []struct {
		name string
		resp scriptedResponse
		want string
	}{
		{
			name: "stderr preferred",
			resp: scriptedResponse{out: Output{Stderr: "invalid json\n"}, err: errors.New("exit status 1")},
			want: "invalid json",
		},
		{
			name: "error text when stderr empty",
			resp: scriptedResponse{err: errors.New("exit status 1")},
			want: "exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(map[string]scriptedResponse{"mcp add-json": tt.resp})
			res := reg.Add(context.Background(), "api", &RemoteServer{URL: "https://x"}, ScopeLocal)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestCLIRegistry_Add_SuccessFallsBackToStderr(t *testing.T) {
	reg, _ := newTestRegistry(map[string]scriptedResponse{
		"mcp add-json": {out: Output{Stderr: "warning: deprecated flag"}},
	})
	res := reg.Add(context.Background(), "api", &RemoteServer{URL: "https://x"}, ScopeUser)
	assert.True(t, res.Success)
	assert.Equal(t, "warning: deprecated flag", res.Output)
}

func TestCLIRegistry_Remove(t *testing.T) {
	reg, runner := newTestRegistry(map[string]scriptedResponse{
		"mcp remove": {out: Output{Stdout: "Removed"}},
	})

	res := reg.Remove(context.Background(), "fs", ScopeLocal)
	assert.True(t, res.Success)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"mcp", "remove", "-s", "local", "fs"}, runner.calls[0].args)
	assert.Equal(t, 10*time.Second, runner.calls[0].timeout)
}

func TestCLIRegistry_Available(t *testing.T) {
	reg, runner := newTestRegistry(map[string]scriptedResponse{
		"--version": {out: Output{Stdout: "1.0.0 (Claude Code)"}},
	})
	require.NoError(t, reg.Available(context.Background()))
	assert.Equal(t, 5*time.Second, runner.calls[0].timeout)

	reg, _ = newTestRegistry(map[string]scriptedResponse{
		"--version": {err: exec.ErrNotFound},
	})
	err := reg.Available(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := ExecRunner{}.Run(context.Background(), 5*time.Second, "sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)

	_, err = ExecRunner{}.Run(context.Background(), 5*time.Second, "sh", "-c", "exit 3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestExecRunner_Timeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	start := time.Now()
	_, err := ExecRunner{}.Run(context.Background(), 50*time.Millisecond, "sleep", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecRunner_TimeoutWithChildHoldingPipes(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// sleep runs as a child of sh and inherits stdout/stderr.
	start := time.Now()
	_, err := ExecRunner{}.Run(context.Background(), 200*time.Millisecond, "sh", "-c", "sleep 4; echo done")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, elapsed, 200*time.Millisecond+waitDelay+time.Second)
}

func TestExistence_String(t *testing.T) {
	assert.Equal(t, "present", ExistencePresent.String())
	assert.Equal(t, "absent", ExistenceAbsent.String())
	assert.Equal(t, "unknown", ExistenceUnknown.String())
}
