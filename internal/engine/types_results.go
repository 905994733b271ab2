package engine

import (
	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/codex"
	"github.com/danieljhkim/mcport/internal/planner"
)

// Status describes how an Execute call ended.
type Status string

const (
	// StatusNothingToDo means no entry needed adding or overwriting.
	StatusNothingToDo Status = "nothing_to_do"

	// StatusDryRun means the plan was only previewed.
	StatusDryRun Status = "dry_run"

	// StatusDeclined means the operator answered no at the prompt.
	StatusDeclined Status = "declined"

	// StatusCompleted means every applicable entry was attempted.
	StatusCompleted Status = "completed"
)

// EntryOutcome is the result of applying one entry.
type EntryOutcome struct {
	// Name is the entry name
	Name string `json:"name" yaml:"name"`

	// Action is the action that was applied
	Action planner.Action `json:"action" yaml:"action"`

	// Succeeded reports whether the add call succeeded
	Succeeded bool `json:"succeeded" yaml:"succeeded"`

	// Message is the captured output or error text of the add call
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ExecuteResult represents the result of executing a migration plan.
type ExecuteResult struct {
	// Status is how the run ended
	Status Status `json:"status" yaml:"status"`

	// Outcomes lists one outcome per attempted entry, in plan order
	Outcomes []EntryOutcome `json:"outcomes" yaml:"outcomes"`

	// Migrated is the number of successful add calls
	Migrated int `json:"migrated" yaml:"migrated"`

	// Failed is the number of failed add calls
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the number of plan entries that were not applicable
	Skipped int `json:"skipped" yaml:"skipped"`

	// BackupPath is the backup of the Claude state file (empty if none was taken)
	BackupPath string `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`
}

// ListedServer is one decoded server with its conversion.
type ListedServer struct {
	// Source is the decoded Codex definition
	Source codex.Server `json:"source" yaml:"source"`

	// Target is the converted registration (nil when conversion failed)
	Target claude.Server `json:"target,omitempty" yaml:"target,omitempty"`

	// Error is the conversion error, if any
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Ambiguous is true when both url and command are set
	Ambiguous bool `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
}

// ListResult represents the decoded contents of a Codex config.
type ListResult struct {
	// ConfigPath is the Codex config that was read
	ConfigPath string `json:"config_path" yaml:"config_path"`

	// Servers lists every server in source order
	Servers []ListedServer `json:"servers" yaml:"servers"`
}
