package planner

import (
	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/codex"
)

// Action is what the executor will do with an entry.
type Action string

// Action constants
const (
	ActionAdd          Action = "add"
	ActionSkipExisting Action = "skip_existing"
	ActionOverwrite    Action = "overwrite"
)

// Applies reports whether the executor mutates Claude Code for this action.
func (a Action) Applies() bool {
	return a == ActionAdd || a == ActionOverwrite
}

// MigrationPlan represents a plan to migrate Codex servers into Claude Code.
type MigrationPlan struct {
	// ConfigPath is the Codex config the plan was built from
	ConfigPath string `json:"config_path" yaml:"config_path"`

	// Entries is the ordered list of converted servers, in source order
	Entries []Entry `json:"entries" yaml:"entries"`

	// Dropped lists servers that could not be converted (empty if none)
	Dropped []DroppedRecord `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

// Entry is one converted server and the action chosen for it.
type Entry struct {
	// Name is the registration name, shared by source and target
	Name string `json:"name" yaml:"name"`

	// Source is the decoded Codex definition
	Source codex.Server `json:"source" yaml:"source"`

	// Target is the Claude Code registration to create
	Target claude.Server `json:"target" yaml:"target"`

	// Action is add, skip_existing or overwrite
	Action Action `json:"action" yaml:"action"`

	// Reason explains any action other than add
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Warnings are operator-facing notes that do not change the action
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// DroppedRecord is a source server left out of the plan.
type DroppedRecord struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Counts tallies entries per action.
type Counts struct {
	Add       int `json:"add" yaml:"add"`
	Overwrite int `json:"overwrite" yaml:"overwrite"`
	Skip      int `json:"skip" yaml:"skip"`
}

// NewMigrationPlan creates a new empty MigrationPlan.
func NewMigrationPlan(configPath string) *MigrationPlan {
	return &MigrationPlan{
		ConfigPath: configPath,
		Entries:    []Entry{},
		Dropped:    []DroppedRecord{},
	}
}

// AddEntry appends an entry to the plan.
func (p *MigrationPlan) AddEntry(e Entry) {
	p.Entries = append(p.Entries, e)
}

// AddDropped records a server that was left out of the plan.
func (p *MigrationPlan) AddDropped(d DroppedRecord) {
	p.Dropped = append(p.Dropped, d)
}

// IsEmpty returns true if the plan has no entries at all.
func (p *MigrationPlan) IsEmpty() bool {
	return len(p.Entries) == 0
}

// Applicable returns the entries the executor will act on, in plan order.
func (p *MigrationPlan) Applicable() []Entry {
	out := make([]Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.Action.Applies() {
			out = append(out, e)
		}
	}
	return out
}

// Counts tallies the plan's entries by action.
func (p *MigrationPlan) Counts() Counts {
	var c Counts
	for _, e := range p.Entries {
		switch e.Action {
		case ActionAdd:
			c.Add++
		case ActionOverwrite:
			c.Overwrite++
		case ActionSkipExisting:
			c.Skip++
		}
	}
	return c
}
