package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/planner"
)

var (
	migrateDryRun    bool
	migrateOverwrite bool
	migrateScope     string
	migrateYes       bool
)

// migrationReport is the machine-readable form of a run.
type migrationReport struct {
	Plan   *planner.MigrationPlan `json:"plan" yaml:"plan"`
	Result *engine.ExecuteResult  `json:"result,omitempty" yaml:"result,omitempty"`
}

// runMigrate is the root command: preflight, plan, preview, confirm, execute.
func runMigrate(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(outputName)
	if err != nil {
		return err
	}

	scope, err := claude.ParseScope(migrateScope)
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrInvalidScope, err)
	}

	convertOpts, err := convertOptions(resolveEnv, envFile)
	if err != nil {
		return err
	}

	paths, err := resolvePaths(codexConfigPath, claudeBin)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), verbose)
	eng := newEngine(paths, log)
	ctx := cmd.Context()
	out := newConsole(cmd.OutOrStdout())
	text := format == outputText

	if text {
		_, _ = boldColor.Fprint(out.w, "mcport")
		_, _ = dimColor.Fprintln(out.w, " - Codex CLI -> Claude Code MCP migration")
		out.Blank()
	}

	if err := eng.Preflight(ctx, &engine.PreflightRequest{ConfigPath: paths.CodexConfig}); err != nil {
		printPreflightHint(newConsole(cmd.ErrOrStderr()), err)
		return err
	}

	plan, err := eng.Plan(ctx, &engine.PlanRequest{
		ConfigPath: paths.CodexConfig,
		Overwrite:  migrateOverwrite,
		Convert:    convertOpts,
	})
	if err != nil {
		return err
	}

	if plan.IsEmpty() {
		if !text {
			return writeDocument(out.w, format, migrationReport{Plan: plan})
		}
		renderDropped(out, plan.Dropped)
		_, _ = warningColor.Fprintln(out.w, "No MCP servers found in Codex config.")
		return nil
	}

	req := &engine.ExecuteRequest{
		Plan:   plan,
		DryRun: migrateDryRun,
		Scope:  scope,
	}
	if text {
		renderPlan(out, plan)
		req.Confirmer = newConfirmer(migrateYes, cmd.InOrStdin(), out.w)
		req.Observer = &progressPrinter{c: out}
	} else {
		// Keep stdout clean for the document.
		req.Confirmer = newConfirmer(migrateYes, cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	result, err := eng.Execute(ctx, req)
	if err != nil {
		return err
	}

	if !text {
		return writeDocument(out.w, format, migrationReport{Plan: plan, Result: result})
	}
	renderSummary(out, result)
	return nil
}

// printPreflightHint adds the next step for the preflight failures a user can fix.
func printPreflightHint(c *console, err error) {
	switch {
	case errors.Is(err, engine.ErrClaudeUnavailable):
		c.Error(`"claude" CLI not found. Install Claude Code first:`)
		c.Dim("  https://docs.anthropic.com/en/docs/claude-code")
	case errors.Is(err, engine.ErrSourceNotFound):
		c.Dim("  Use -c / --codex-config to specify a different path")
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&migrateDryRun, "dry-run", "n", false, "Preview changes without applying them")
	rootCmd.Flags().BoolVar(&migrateOverwrite, "overwrite", false, "Overwrite existing Claude MCP servers with same names")
	rootCmd.Flags().StringVarP(&migrateScope, "scope", "s", string(claude.ScopeUser), `Claude Code scope: "user" (all projects) or "local" (current project)`)
	rootCmd.Flags().BoolVarP(&migrateYes, "yes", "y", false, "Skip the confirmation prompt")
}
