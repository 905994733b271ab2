package claude

import (
	"fmt"
	"strings"
)

// Scope is the visibility level of a Claude Code registration.
type Scope string

const (
	// ScopeUser registers the server for every project of the current user.
	ScopeUser Scope = "user"

	// ScopeLocal registers the server for the current project only.
	ScopeLocal Scope = "local"
)

// ParseScope validates a scope name.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeUser:
		return ScopeUser, nil
	case ScopeLocal:
		return ScopeLocal, nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be %q or %q", s, ScopeUser, ScopeLocal)
	}
}

// String returns the scope name.
func (s Scope) String() string {
	return string(s)
}
