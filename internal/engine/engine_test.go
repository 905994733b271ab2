package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/clock"
	"github.com/danieljhkim/mcport/internal/config"
	"github.com/danieljhkim/mcport/internal/fsops"
	"github.com/danieljhkim/mcport/internal/planner"
)

var fixedTime = time.UnixMilli(1700000000123)

type testEnv struct {
	eng      *Engine
	registry *claude.FakeRegistry
	paths    config.Paths
	dir      string
}

// newTestEnv wires an Engine against a temp directory and a fake registry.
func newTestEnv(t *testing.T, existing map[string]claude.Server) *testEnv {
	t.Helper()

	dir := t.TempDir()
	paths := config.Paths{
		CodexConfig: filepath.Join(dir, ".codex", "config.toml"),
		ClaudeState: filepath.Join(dir, ".claude.json"),
		ClaudeBin:   "claude",
	}
	reg := claude.NewFakeRegistry(existing)
	eng := New(reg, fsops.NewRealFS(), clock.NewFakeClock(fixedTime), paths, zerolog.Nop())

	return &testEnv{eng: eng, registry: reg, paths: paths, dir: dir}
}

func (env *testEnv) writeCodexConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(env.paths.CodexConfig), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.paths.CodexConfig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func (env *testEnv) writeClaudeState(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(env.paths.ClaudeState, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func (env *testEnv) backups(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(env.paths.ClaudeState + ".backup.*")
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

// scriptedConfirmer answers every prompt with the same value.
type scriptedConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, c.err
}

// recordingObserver captures progress events as strings.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) BackupCreated(path string) {
	o.events = append(o.events, "backup:"+filepath.Base(path))
}

func (o *recordingObserver) EntryStarted(entry planner.Entry) {
	o.events = append(o.events, "start:"+entry.Name)
}

func (o *recordingObserver) EntryFinished(entry planner.Entry, outcome EntryOutcome) {
	status := "ok"
	if !outcome.Succeeded {
		status = "failed"
	}
	o.events = append(o.events, "finish:"+entry.Name+":"+status)
}
