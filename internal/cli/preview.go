package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/planner"
)

const detailIndent = "     "

// renderPlan prints the migration table: one block per entry followed by the
// per-action totals. Dropped servers are listed after the table.
func renderPlan(c *console, plan *planner.MigrationPlan) {
	c.Blank()
	_, _ = boldColor.Fprintf(c.w, "Migration Plan (from %s)\n", plan.ConfigPath)
	c.Rule()

	for _, entry := range plan.Entries {
		renderEntry(c, entry)
	}

	c.Rule()
	counts := plan.Counts()
	fmt.Fprintf(c.w, " %s, %s, %s\n",
		addColor.Sprintf("%d to add", counts.Add),
		overwriteColor.Sprintf("%d to overwrite", counts.Overwrite),
		dimColor.Sprintf("%d to skip", counts.Skip),
	)

	renderDropped(c, plan.Dropped)
}

func renderEntry(c *console, entry planner.Entry) {
	clr := actionColor(entry.Action)
	fmt.Fprintf(c.w, " %s %s [%s] %s\n",
		clr.Sprint(actionIcon(entry.Action)),
		boldColor.Sprint(entry.Name),
		transportLabel(entry.Target),
		clr.Sprint(actionLabel(entry.Action)),
	)

	preview, err := claude.EncodeIndent(entry.Target, "  ")
	if err != nil {
		preview = err.Error()
	}
	_, _ = dimColor.Fprintln(c.w, indentLines(preview, detailIndent))

	if entry.Reason != "" {
		_, _ = dimColor.Fprintln(c.w, detailIndent+entry.Reason)
	}
	for _, w := range entry.Warnings {
		_, _ = warningColor.Fprintf(c.w, "%s⚠ %s\n", detailIndent, w)
	}
}

func renderDropped(c *console, dropped []planner.DroppedRecord) {
	if len(dropped) == 0 {
		return
	}
	c.Blank()
	for _, d := range dropped {
		c.Warning(fmt.Sprintf("Skipping %q: %s", d.Name, d.Reason))
	}
}

// renderSummary prints the outcome of Execute in the same wording the
// interactive run uses.
func renderSummary(c *console, result *engine.ExecuteResult) {
	switch result.Status {
	case engine.StatusNothingToDo:
		c.Blank()
		_, _ = warningColor.Fprintln(c.w, "No servers to migrate.")
	case engine.StatusDryRun:
		c.Blank()
		_, _ = infoColor.Fprintln(c.w, "[Dry run] No changes were made.")
	case engine.StatusDeclined:
		_, _ = warningColor.Fprintln(c.w, "Migration cancelled.")
	case engine.StatusCompleted:
		c.Blank()
		fmt.Fprintf(c.w, "%s, %s, %s\n",
			addColor.Sprintf("%d migrated", result.Migrated),
			failColor.Sprintf("%d failed", result.Failed),
			dimColor.Sprintf("%d skipped", result.Skipped),
		)
	}
}

// transportLabel is the bracketed tag shown next to an entry name.
func transportLabel(s claude.Server) string {
	switch s.(type) {
	case *claude.RemoteServer:
		return "HTTP"
	case *claude.StdioServer:
		return "stdio"
	default:
		return "?"
	}
}

func actionIcon(a planner.Action) string {
	switch a {
	case planner.ActionAdd:
		return "+"
	case planner.ActionOverwrite:
		return "~"
	default:
		return "-"
	}
}

func actionLabel(a planner.Action) string {
	switch a {
	case planner.ActionAdd:
		return "ADD"
	case planner.ActionOverwrite:
		return "OVERWRITE"
	default:
		return "SKIP"
	}
}

func actionColor(a planner.Action) *color.Color {
	switch a {
	case planner.ActionAdd:
		return addColor
	case planner.ActionOverwrite:
		return overwriteColor
	default:
		return dimColor
	}
}
