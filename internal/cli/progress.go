package cli

import (
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/planner"
)

// progressPrinter reports execution progress as "  Migrating <name>... done".
type progressPrinter struct {
	c *console
}

var _ engine.Observer = (*progressPrinter)(nil)

func (p *progressPrinter) BackupCreated(path string) {
	p.c.Dim("  Backup created: " + path)
}

func (p *progressPrinter) EntryStarted(entry planner.Entry) {
	_, _ = p.c.w.Write([]byte("  Migrating " + boldColor.Sprint(entry.Name) + "... "))
}

func (p *progressPrinter) EntryFinished(entry planner.Entry, outcome engine.EntryOutcome) {
	if outcome.Succeeded {
		_, _ = addColor.Fprintln(p.c.w, "done")
		return
	}
	_, _ = failColor.Fprintln(p.c.w, "failed")
	if outcome.Message != "" {
		_, _ = failColor.Fprintln(p.c.w, indentLines(outcome.Message, "    "))
	}
}
