package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/clock"
	"github.com/danieljhkim/mcport/internal/config"
	"github.com/danieljhkim/mcport/internal/engine"
)

// testFS keeps files in memory so backups can be inspected without touching disk.
type testFS struct {
	files map[string][]byte
}

func newTestFS() *testFS {
	return &testFS{files: make(map[string][]byte)}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, ok := fs.files[path]
	return ok, nil
}

func (fs *testFS) CopyFile(src, dst string) error {
	content, ok := fs.files[src]
	if !ok {
		return os.ErrNotExist
	}
	fs.files[dst] = append([]byte(nil), content...)
	return nil
}

// fakeClaudeScript mimics the parts of the claude CLI mcport drives. Each
// registration is a file named after the server inside $FAKE_CLAUDE_STATE.
const fakeClaudeScript = `#!/bin/sh
state="$FAKE_CLAUDE_STATE"
if [ "$1" = "--version" ]; then
  echo "1.0.0 (Claude Code)"
  exit 0
fi
case "$2" in
  get)
    if [ -f "$state/$3" ]; then
      echo "$3:"
      cat "$state/$3"
      exit 0
    fi
    echo "No MCP server found with name: $3" >&2
    exit 1
    ;;
  add-json)
    if [ -f "$state/$5" ]; then
      echo "MCP server $5 already exists in $4 config" >&2
      exit 1
    fi
    case "$6" in
      *reject*) echo "Invalid configuration for $5" >&2; exit 1 ;;
    esac
    printf '%s' "$6" > "$state/$5"
    echo "$4" > "$state/$5.scope"
    echo "Added MCP server $5 to $4 config"
    ;;
  remove)
    if [ ! -f "$state/$5" ]; then
      echo "No MCP server found with name: $5" >&2
      exit 1
    fi
    rm -f "$state/$5" "$state/$5.scope"
    echo "Removed MCP server $5 from $4 config"
    ;;
  *)
    echo "unknown command $*" >&2
    exit 1
    ;;
esac
`

type fakeClaude struct {
	bin   string
	state string
}

// installFakeClaude writes the script into a temp dir and points it at a fresh
// state directory.
func installFakeClaude(t *testing.T) *fakeClaude {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake claude CLI is a shell script")
	}

	dir := t.TempDir()
	state := filepath.Join(dir, "state")
	if err := os.MkdirAll(state, 0755); err != nil {
		t.Fatal(err)
	}
	bin := filepath.Join(dir, "claude")
	if err := os.WriteFile(bin, []byte(fakeClaudeScript), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FAKE_CLAUDE_STATE", state)

	return &fakeClaude{bin: bin, state: state}
}

func (f *fakeClaude) registered(t *testing.T, name string) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.state, name))
	if os.IsNotExist(err) {
		return "", false
	}
	if err != nil {
		t.Fatal(err)
	}
	return string(data), true
}

func (f *fakeClaude) register(t *testing.T, name, payload string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.state, name), []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupTestEngine(t *testing.T) (*engine.Engine, *testFS, *fakeClaude, config.Paths) {
	t.Helper()

	fake := installFakeClaude(t)
	fs := newTestFS()
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	paths := config.Paths{
		CodexConfig: "/home/test/.codex/config.toml",
		ClaudeState: "/home/test/.claude.json",
		ClaudeBin:   fake.bin,
	}

	registry := claude.NewCLIRegistry(fake.bin, claude.ExecRunner{}, claude.DefaultTimeouts(), zerolog.Nop())
	eng := engine.New(registry, fs, clk, paths, zerolog.Nop())
	return eng, fs, fake, paths
}
