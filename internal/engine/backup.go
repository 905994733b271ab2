package engine

import (
	"github.com/danieljhkim/mcport/internal/clock"
)

// backupClaudeState copies the Claude state file to
// <path>.backup.<unix-millis> and returns the backup path. A missing state
// file or a failed copy yields "" and never stops the run.
func (e *Engine) backupClaudeState() string {
	src := e.configPaths.ClaudeState
	if src == "" {
		return ""
	}

	exists, err := e.fs.Exists(src)
	if err != nil {
		e.log.Warn().Err(err).Str("path", src).Msg("cannot check claude state file; skipping backup")
		return ""
	}
	if !exists {
		e.log.Debug().Str("path", src).Msg("no claude state file to back up")
		return ""
	}

	dst := src + ".backup." + clock.Stamp(e.clock)
	if err := e.fs.CopyFile(src, dst); err != nil {
		e.log.Warn().Err(err).Str("path", src).Msg("backup failed; continuing without backup")
		return ""
	}

	e.log.Debug().Str("backup", dst).Msg("backup created")
	return dst
}
