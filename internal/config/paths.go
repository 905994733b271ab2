// Package config resolves the filesystem locations and environment overrides
// mcport works with.
//
// The source is the Codex CLI config file (default ~/.codex/config.toml) and
// the target state is the Claude Code state file (default ~/.claude.json),
// which is only ever copied for backup and never written directly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvCodexHome overrides the Codex home directory.
	EnvCodexHome = "CODEX_HOME"

	// EnvClaudeConfigDir overrides the directory holding .claude.json.
	EnvClaudeConfigDir = "CLAUDE_CONFIG_DIR"

	// EnvClaudeBin overrides the claude executable.
	EnvClaudeBin = "MCPORT_CLAUDE_BIN"

	// EnvLogLevel sets the zerolog level (debug, info, warn, error).
	EnvLogLevel = "MCPORT_LOG_LEVEL"

	// DefaultClaudeBin is the executable looked up on PATH.
	DefaultClaudeBin = "claude"
)

// Paths contains the filesystem paths used by mcport.
type Paths struct {
	// CodexConfig is the Codex CLI config.toml to migrate from
	CodexConfig string

	// ClaudeState is the Claude Code state file that gets backed up before mutation
	ClaudeState string

	// ClaudeBin is the claude executable name or path
	ClaudeBin string
}

// DefaultPaths returns the default paths for mcport.
// Paths can be overridden with environment variables:
// - CODEX_HOME: directory containing config.toml (default ~/.codex)
// - CLAUDE_CONFIG_DIR: directory containing .claude.json (default ~)
// - MCPORT_CLAUDE_BIN: claude executable (default "claude")
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	codexHome := strings.TrimSpace(os.Getenv(EnvCodexHome))
	if codexHome == "" {
		codexHome = filepath.Join(home, ".codex")
	}

	claudeDir := strings.TrimSpace(os.Getenv(EnvClaudeConfigDir))
	if claudeDir == "" {
		claudeDir = home
	}

	bin := strings.TrimSpace(os.Getenv(EnvClaudeBin))
	if bin == "" {
		bin = DefaultClaudeBin
	}

	return &Paths{
		CodexConfig: filepath.Join(codexHome, "config.toml"),
		ClaudeState: filepath.Join(claudeDir, ".claude.json"),
		ClaudeBin:   bin,
	}, nil
}

// LogLevel returns the configured log level name, or "" when unset.
func LogLevel() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
}
