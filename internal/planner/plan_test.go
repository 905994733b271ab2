package planner

import (
	"testing"

	"github.com/danieljhkim/mcport/internal/claude"
)

func TestNewMigrationPlan(t *testing.T) {
	plan := NewMigrationPlan("/home/u/.codex/config.toml")

	if plan.ConfigPath != "/home/u/.codex/config.toml" {
		t.Errorf("ConfigPath = %q", plan.ConfigPath)
	}
	if plan.Entries == nil {
		t.Error("expected Entries to be initialized")
	}
	if plan.Dropped == nil {
		t.Error("expected Dropped to be initialized")
	}
	if !plan.IsEmpty() {
		t.Error("expected new plan to be empty")
	}
}

func TestAction_Applies(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionAdd, true},
		{ActionOverwrite, true},
		{ActionSkipExisting, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := tt.action.Applies(); got != tt.want {
				t.Errorf("Applies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMigrationPlan_ApplicableAndCounts(t *testing.T) {
	plan := NewMigrationPlan("config.toml")
	target := &claude.StdioServer{Command: "x"}

	entries := []Entry{
		{Name: "a", Target: target, Action: ActionAdd},
		{Name: "b", Target: target, Action: ActionSkipExisting, Reason: ReasonExisting},
		{Name: "c", Target: target, Action: ActionOverwrite, Reason: ReasonOverwrite},
		{Name: "d", Target: target, Action: ActionAdd},
	}
	for _, e := range entries {
		plan.AddEntry(e)
	}

	applicable := plan.Applicable()
	names := make([]string, len(applicable))
	for i, e := range applicable {
		names[i] = e.Name
	}
	want := []string{"a", "c", "d"}
	if len(names) != len(want) {
		t.Fatalf("Applicable() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Applicable()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	counts := plan.Counts()
	if counts != (Counts{Add: 2, Overwrite: 1, Skip: 1}) {
		t.Errorf("Counts() = %+v", counts)
	}
}

func TestMigrationPlan_AddDropped(t *testing.T) {
	plan := NewMigrationPlan("config.toml")
	plan.AddDropped(DroppedRecord{Name: "broken", Reason: "no url"})

	if len(plan.Dropped) != 1 || plan.Dropped[0].Name != "broken" {
		t.Errorf("Dropped = %+v", plan.Dropped)
	}
	if !plan.IsEmpty() {
		t.Error("dropped records must not count as entries")
	}
}
