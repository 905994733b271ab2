package engine

import "errors"

var (
	// ErrClaudeUnavailable indicates the claude CLI could not be run.
	ErrClaudeUnavailable = errors.New("claude CLI not available")

	// ErrSourceNotFound indicates the Codex config file does not exist.
	ErrSourceNotFound = errors.New("codex config not found")

	// ErrInvalidScope indicates an unsupported registration scope.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrNoConfirmer indicates Execute needed a confirmation but had no way to ask.
	ErrNoConfirmer = errors.New("no confirmer configured")
)
