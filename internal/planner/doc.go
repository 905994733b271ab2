// Package planner handles the planning phase of a migration.
//
// The planner turns decoded Codex servers into a deterministic MigrationPlan.
// It converts each server, asks the existence oracle whether Claude Code
// already has a registration with the same name, and assigns an action.
//
// Key responsibilities:
//   - Preserve source order in the plan
//   - Drop servers that cannot be converted, recording why
//   - Classify each entry as add, skip_existing or overwrite
//   - Flag ambiguous definitions and failed existence checks as warnings
package planner
