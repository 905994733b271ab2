package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/mcport/internal/planner"
)

// Execute applies the add and overwrite entries of a plan.
//
// Algorithm steps:
// 1. Filter applicable entries; stop if there are none
// 2. Stop if DryRun
// 3. Ask for confirmation once; stop if declined
// 4. Back up the Claude state file (best effort)
// 5. For each entry in order: remove first when overwriting, then add
// 6. Return per-entry outcomes and counts
//
// Entries run strictly one after another. A failed entry is recorded and the
// loop moves on; Execute only returns an error when confirmation fails.
func (e *Engine) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResult, error) {
	toApply := req.Plan.Applicable()
	result := &ExecuteResult{
		Outcomes: []EntryOutcome{},
		Skipped:  len(req.Plan.Entries) - len(toApply),
	}

	if len(toApply) == 0 {
		result.Status = StatusNothingToDo
		return result, nil
	}

	if req.DryRun {
		result.Status = StatusDryRun
		return result, nil
	}

	if req.Confirmer == nil {
		return nil, ErrNoConfirmer
	}
	proceed, err := req.Confirmer.Confirm(fmt.Sprintf("Migrate %d server(s) to Claude Code?", len(toApply)))
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !proceed {
		result.Status = StatusDeclined
		return result, nil
	}

	result.BackupPath = e.backupClaudeState()
	if result.BackupPath != "" && req.Observer != nil {
		req.Observer.BackupCreated(result.BackupPath)
	}

	for _, entry := range toApply {
		if req.Observer != nil {
			req.Observer.EntryStarted(entry)
		}

		outcome := e.applyEntry(ctx, entry, req)
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Succeeded {
			result.Migrated++
		} else {
			result.Failed++
		}

		if req.Observer != nil {
			req.Observer.EntryFinished(entry, outcome)
		}
	}

	result.Status = StatusCompleted
	e.log.Info().
		Int("migrated", result.Migrated).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("migration finished")

	return result, nil
}

// applyEntry performs the claude calls for a single entry.
func (e *Engine) applyEntry(ctx context.Context, entry planner.Entry, req *ExecuteRequest) EntryOutcome {
	log := e.log.With().Str("server", entry.Name).Str("action", string(entry.Action)).Logger()

	if entry.Action == planner.ActionOverwrite {
		// The entry may already be gone; the add below is what counts.
		rm := e.registry.Remove(ctx, entry.Name, req.Scope)
		log.Debug().Bool("success", rm.Success).Str("output", rm.Output).Msg("removed existing registration")
	}

	res := e.registry.Add(ctx, entry.Name, entry.Target, req.Scope)
	if !res.Success {
		log.Warn().Str("output", res.Output).Msg("add failed")
	}

	return EntryOutcome{
		Name:      entry.Name,
		Action:    entry.Action,
		Succeeded: res.Success,
		Message:   res.Output,
	}
}
