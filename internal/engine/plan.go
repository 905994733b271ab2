package engine

import (
	"context"

	"github.com/danieljhkim/mcport/internal/codex"
	"github.com/danieljhkim/mcport/internal/planner"
)

// Algorithm steps:
// 1. Decode the Codex config into servers (source order)
// 2. Convert each server, dropping the unconvertible ones
// 3. Ask Claude Code whether each name is already registered
// 4. Classify and return the plan
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*planner.MigrationPlan, error) {
	servers, err := codex.DecodeFile(e.fs, req.ConfigPath)
	if err != nil {
		return nil, err
	}
	e.log.Debug().Str("config", req.ConfigPath).Int("servers", len(servers)).Msg("decoded codex config")

	return planner.BuildPlan(ctx, req.ConfigPath, servers, e.registry, planner.Options{
		Convert:   req.Convert,
		Overwrite: req.Overwrite,
	}, e.log), nil
}
