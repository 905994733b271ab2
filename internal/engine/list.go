package engine

import (
	"context"

	"github.com/danieljhkim/mcport/internal/codex"
	"github.com/danieljhkim/mcport/internal/convert"
)

// List decodes the Codex config and converts every server without asking
// Claude Code anything. Conversion failures are reported per server.
func (e *Engine) List(ctx context.Context, req *ListRequest) (*ListResult, error) {
	servers, err := codex.DecodeFile(e.fs, req.ConfigPath)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		ConfigPath: req.ConfigPath,
		Servers:    make([]ListedServer, 0, len(servers)),
	}

	for _, server := range servers {
		listed := ListedServer{
			Source:    server,
			Ambiguous: convert.Ambiguous(server),
		}

		target, err := convert.Convert(server, req.Convert)
		if err != nil {
			listed.Error = err.Error()
		} else {
			listed.Target = target
		}

		result.Servers = append(result.Servers, listed)
	}

	return result, nil
}
