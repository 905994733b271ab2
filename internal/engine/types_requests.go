package engine

import (
	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/convert"
	"github.com/danieljhkim/mcport/internal/planner"
)

// PreflightRequest represents the checks run before any plan is built.
type PreflightRequest struct {
	// ConfigPath is the Codex config that must exist
	ConfigPath string
}

// PlanRequest represents a request to build a migration plan.
type PlanRequest struct {
	// ConfigPath is the Codex config to read
	ConfigPath string

	// Overwrite replaces existing Claude registrations instead of skipping them
	Overwrite bool

	// Convert controls bearer token resolution
	Convert convert.Options
}

// ExecuteRequest represents a request to apply a migration plan.
type ExecuteRequest struct {
	// Plan is the plan to apply; it is not modified
	Plan *planner.MigrationPlan

	// DryRun stops after planning without prompting or mutating anything
	DryRun bool

	// Scope is the Claude Code scope for add and remove calls
	Scope claude.Scope

	// Confirmer is asked once before any mutation
	Confirmer Confirmer

	// Observer receives progress events (optional)
	Observer Observer
}

// ListRequest represents a request to decode and convert without planning.
type ListRequest struct {
	// ConfigPath is the Codex config to read
	ConfigPath string

	// Convert controls bearer token resolution
	Convert convert.Options
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Observer receives progress while a plan executes. Calls happen on the
// executing goroutine, in plan order.
type Observer interface {
	// BackupCreated is called once when the Claude state file was copied.
	BackupCreated(path string)

	// EntryStarted is called before the first claude call for an entry.
	EntryStarted(entry planner.Entry)

	// EntryFinished is called with the entry's outcome.
	EntryFinished(entry planner.Entry, outcome EntryOutcome)
}
