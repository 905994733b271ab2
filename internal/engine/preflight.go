package engine

import (
	"context"
	"fmt"
)

// Preflight verifies that the claude CLI runs and the Codex config exists.
// Either failure aborts the run before any plan is built.
func (e *Engine) Preflight(ctx context.Context, req *PreflightRequest) error {
	if err := e.registry.Available(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrClaudeUnavailable, err)
	}

	exists, err := e.fs.Exists(req.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to check codex config %s: %w", req.ConfigPath, err)
	}
	if !exists {
		return fmt.Errorf("%w at %s", ErrSourceNotFound, req.ConfigPath)
	}

	return nil
}
