// Package engine provides the core business logic for mcport operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It coordinates preflight checks, decoding of the
// Codex config, planning, backup of the Claude state file, and sequential
// execution of the plan through the claude CLI.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Preflight: Verifies the claude CLI and the source config are usable
//   - Plan/Execute: Builds the migration plan and applies it entry by entry
//   - List: Decodes and converts without touching Claude Code
package engine

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/clock"
	"github.com/danieljhkim/mcport/internal/config"
	"github.com/danieljhkim/mcport/internal/fsops"
)

// Engine orchestrates all mcport operations.
// It is the main API surface called by the CLI.
type Engine struct {
	registry    claude.Registry
	fs          fsops.FS
	clock       clock.Clock
	configPaths config.Paths
	log         zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	registry claude.Registry,
	fs fsops.FS,
	clk clock.Clock,
	paths config.Paths,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		registry:    registry,
		fs:          fs,
		clock:       clk,
		configPaths: paths,
		log:         log.With().Str("component", "engine").Logger(),
	}
}
