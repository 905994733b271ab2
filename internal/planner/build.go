package planner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/codex"
	"github.com/danieljhkim/mcport/internal/convert"
)

// Reasons attached to non-add entries.
const (
	ReasonOverwrite = "Server exists in Claude Code; will be overwritten (--overwrite)"
	ReasonExisting  = "Server already exists in Claude Code; use --overwrite to replace"
)

// WarningAmbiguous is attached when a server has both url and command.
const WarningAmbiguous = "both url and command are set; migrating as http and ignoring command"

// Oracle answers whether Claude Code already has a registration by name.
type Oracle interface {
	Exists(ctx context.Context, name string) (claude.Existence, error)
}

// Options configures BuildPlan.
type Options struct {
	// Convert is passed through to convert.Convert
	Convert convert.Options

	// Overwrite replaces existing registrations instead of skipping them
	Overwrite bool
}

// BuildPlan generates a deterministic migration plan for servers.
// Entries keep the order of servers. A failed existence check is treated as
// "does not exist" and surfaced as a warning on the entry.
func BuildPlan(
	ctx context.Context,
	configPath string,
	servers []codex.Server,
	oracle Oracle,
	opts Options,
	log zerolog.Logger,
) *MigrationPlan {
	plan := NewMigrationPlan(configPath)

	for _, server := range servers {
		target, err := convert.Convert(server, opts.Convert)
		if err != nil {
			// The operator is told through plan.Dropped.
			log.Debug().Str("server", server.Name).Err(err).Msg("skipping server")
			plan.AddDropped(DroppedRecord{Name: server.Name, Reason: err.Error()})
			continue
		}

		entry := Entry{
			Name:   server.Name,
			Source: server,
			Target: target,
		}

		if convert.Ambiguous(server) {
			log.Warn().Str("server", server.Name).Msg(WarningAmbiguous)
			entry.Warnings = append(entry.Warnings, WarningAmbiguous)
		}

		existence, err := oracle.Exists(ctx, server.Name)
		if err != nil {
			log.Warn().Str("server", server.Name).Err(err).Msg("existence check failed; assuming absent")
			entry.Warnings = append(entry.Warnings, fmt.Sprintf("existence check failed, assuming not registered: %v", err))
		}

		entry.Action, entry.Reason = classify(existence == claude.ExistencePresent, opts.Overwrite)
		log.Debug().
			Str("server", server.Name).
			Str("existence", existence.String()).
			Str("action", string(entry.Action)).
			Msg("planned")

		plan.AddEntry(entry)
	}

	return plan
}

func classify(exists, overwrite bool) (Action, string) {
	switch {
	case exists && overwrite:
		return ActionOverwrite, ReasonOverwrite
	case exists:
		return ActionSkipExisting, ReasonExisting
	default:
		return ActionAdd, ""
	}
}
