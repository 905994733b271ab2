// Package convert maps Codex server definitions onto Claude Code registrations.
//
// Convert is a pure function: the only outside state it can observe is what
// the caller hands it through a SecretLookup, and only when secret resolution
// is requested.
package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/codex"
)

// ErrMissingTarget is matched by errors for servers with neither url nor command.
var ErrMissingTarget = errors.New("neither url nor command defined")

// MissingTargetError names the server that could not be represented.
type MissingTargetError struct {
	Name string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("server %q has neither url nor command defined", e.Name)
}

// Is reports whether target is ErrMissingTarget.
func (e *MissingTargetError) Is(target error) bool {
	return target == ErrMissingTarget
}

// Options controls secret handling during conversion.
type Options struct {
	// ResolveSecrets substitutes bearer tokens from Secrets instead of
	// emitting ${VAR} placeholders.
	ResolveSecrets bool

	// Secrets is consulted only when ResolveSecrets is set.
	Secrets SecretLookup
}

// Convert maps one Codex server to a Claude registration. Rules are applied
// in order and the first match wins: url makes a remote server, command makes
// a stdio server, otherwise the server is rejected with a MissingTargetError.
func Convert(server codex.Server, opts Options) (claude.Server, error) {
	if server.URL != "" {
		remote := &claude.RemoteServer{URL: server.URL}
		if server.BearerTokenEnvVar != "" {
			token := bearerToken(server.BearerTokenEnvVar, opts)
			remote.Headers = map[string]string{"Authorization": "Bearer " + token}
		}
		return remote, nil
	}

	if server.Command != "" {
		stdio := &claude.StdioServer{Command: server.Command}
		if len(server.Args) > 0 {
			stdio.Args = slices.Clone(server.Args)
		}
		if len(server.Env) > 0 {
			stdio.Env = maps.Clone(server.Env)
		}
		return stdio, nil
	}

	return nil, &MissingTargetError{Name: server.Name}
}

// Ambiguous reports whether a server declares both a url and a command. Such
// servers convert as remote and the command is ignored.
func Ambiguous(server codex.Server) bool {
	return server.URL != "" && server.Command != ""
}

// Placeholder returns the ${VAR} reference left for Claude Code to expand.
func Placeholder(envVar string) string {
	return "${" + envVar + "}"
}

func bearerToken(envVar string, opts Options) string {
	if opts.ResolveSecrets && opts.Secrets != nil {
		if v, ok := opts.Secrets.Lookup(envVar); ok && v != "" {
			return v
		}
	}
	return Placeholder(envVar)
}
