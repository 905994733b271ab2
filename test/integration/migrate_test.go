package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/planner"
)

type yes struct{}

func (yes) Confirm(string) (bool, error) { return true, nil }

const codexConfig = `
model = "o3"

[mcp_servers.fs]
command = "npx"
args = ["-y", "@modelcontextprotocol/server-filesystem", "/tmp"]

[mcp_servers.fs.env]
DEBUG = "1"

[mcp_servers.docs]
url = "https://docs.example.com/mcp"
bearer_token_env_var = "DOCS_TOKEN"

[mcp_servers.empty]
args = ["orphan"]
`

func TestMigrate_FullCycle(t *testing.T) {
	eng, fs, fake, paths := setupTestEngine(t)
	ctx := context.Background()

	fs.files[paths.CodexConfig] = []byte(codexConfig)
	fs.files[paths.ClaudeState] = []byte(`{"numStartups":3}`)

	if err := eng.Preflight(ctx, &engine.PreflightRequest{ConfigPath: paths.CodexConfig}); err != nil {
		t.Fatalf("Preflight() error = %v", err)
	}

	plan, err := eng.Plan(ctx, &engine.PlanRequest{ConfigPath: paths.CodexConfig})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(plan.Entries) != 2 || len(plan.Dropped) != 1 {
		t.Fatalf("plan has %d entries and %d dropped, want 2 and 1", len(plan.Entries), len(plan.Dropped))
	}
	for _, e := range plan.Entries {
		if e.Action != planner.ActionAdd {
			t.Errorf("entry %s action = %s, want add", e.Name, e.Action)
		}
	}

	result, err := eng.Execute(ctx, &engine.ExecuteRequest{
		Plan:      plan,
		Scope:     claude.ScopeLocal,
		Confirmer: yes{},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Migrated != 2 || result.Failed != 0 || result.Skipped != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/0/0", result.Migrated, result.Failed, result.Skipped)
	}

	got, ok := fake.registered(t, "fs")
	if !ok {
		t.Fatal("fs was not registered")
	}
	want := `{"command":"npx","args":["-y","@modelcontextprotocol/server-filesystem","/tmp"],"env":{"DEBUG":"1"}}`
	if got != want {
		t.Errorf("fs payload = %s, want %s", got, want)
	}

	got, ok = fake.registered(t, "docs")
	if !ok {
		t.Fatal("docs was not registered")
	}
	want = `{"type":"http","url":"https://docs.example.com/mcp","headers":{"Authorization":"Bearer ${DOCS_TOKEN}"}}`
	if got != want {
		t.Errorf("docs payload = %s, want %s", got, want)
	}

	scope, _ := fake.registered(t, "fs.scope")
	if scope != "local\n" {
		t.Errorf("scope = %q, want local", scope)
	}

	backup := paths.ClaudeState + ".backup.1704110400000"
	if string(fs.files[backup]) != `{"numStartups":3}` {
		t.Errorf("backup %s = %q", backup, fs.files[backup])
	}
	if result.BackupPath != backup {
		t.Errorf("BackupPath = %q, want %q", result.BackupPath, backup)
	}

	// A second run finds everything registered.
	again, err := eng.Plan(ctx, &engine.PlanRequest{ConfigPath: paths.CodexConfig})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	for _, e := range again.Entries {
		if e.Action != planner.ActionSkipExisting {
			t.Errorf("rerun entry %s action = %s, want skip_existing", e.Name, e.Action)
		}
	}
}

func TestMigrate_OverwriteAndFailure(t *testing.T) {
	eng, fs, fake, paths := setupTestEngine(t)
	ctx := context.Background()

	fs.files[paths.CodexConfig] = []byte(`
[mcp_servers.fs]
command = "npx-new"

[mcp_servers.bad]
command = "reject"

[mcp_servers.tail]
url = "https://tail"
`)
	fake.register(t, "fs", `{"command":"npx-old"}`)

	plan, err := eng.Plan(ctx, &engine.PlanRequest{ConfigPath: paths.CodexConfig, Overwrite: true})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan.Entries[0].Action != planner.ActionOverwrite {
		t.Fatalf("fs action = %s, want overwrite", plan.Entries[0].Action)
	}

	result, err := eng.Execute(ctx, &engine.ExecuteRequest{
		Plan:      plan,
		Scope:     claude.ScopeUser,
		Confirmer: yes{},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Migrated != 2 || result.Failed != 1 {
		t.Errorf("migrated/failed = %d/%d, want 2/1", result.Migrated, result.Failed)
	}
	if result.Outcomes[1].Succeeded || result.Outcomes[1].Message != "Invalid configuration for bad" {
		t.Errorf("bad outcome = %+v", result.Outcomes[1])
	}
	if got, _ := fake.registered(t, "fs"); got != `{"command":"npx-new"}` {
		t.Errorf("fs payload = %s, want overwritten", got)
	}
	if _, ok := fake.registered(t, "tail"); !ok {
		t.Error("tail not registered after earlier failure")
	}
	if result.BackupPath != "" {
		t.Errorf("BackupPath = %q, want none without a state file", result.BackupPath)
	}
}

func TestMigrate_PreflightMissingConfig(t *testing.T) {
	eng, _, _, paths := setupTestEngine(t)

	err := eng.Preflight(context.Background(), &engine.PreflightRequest{ConfigPath: paths.CodexConfig})
	if !errors.Is(err, engine.ErrSourceNotFound) {
		t.Errorf("Preflight() error = %v, want ErrSourceNotFound", err)
	}
}
