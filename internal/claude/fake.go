package claude

import (
	"context"
	"errors"
	"fmt"
)

// Call records one invocation made against a FakeRegistry.
type Call struct {
	Op     string
	Name   string
	Scope  Scope
	Server Server
}

// FakeRegistry implements Registry in memory for testing.
// Registrations are keyed by name only; scope is recorded but not modeled.
type FakeRegistry struct {
	servers map[string]Server

	// Unavailable makes Available fail.
	Unavailable bool

	// ExistsErrors makes Exists return ExistenceUnknown with the error for a name.
	ExistsErrors map[string]error

	// AddFailures makes Add fail with the message for a name.
	AddFailures map[string]string

	// Calls lists every Exists, Add and Remove in order.
	Calls []Call
}

// NewFakeRegistry creates a FakeRegistry holding the given registrations.
func NewFakeRegistry(existing map[string]Server) *FakeRegistry {
	servers := make(map[string]Server, len(existing))
	for name, s := range existing {
		servers[name] = s
	}
	return &FakeRegistry{
		servers:      servers,
		ExistsErrors: map[string]error{},
		AddFailures:  map[string]string{},
	}
}

var _ Registry = (*FakeRegistry)(nil)

// Available returns an error when Unavailable is set.
func (f *FakeRegistry) Available(ctx context.Context) error {
	if f.Unavailable {
		return errors.New("claude: executable file not found in $PATH")
	}
	return nil
}

// Exists reports whether name is registered.
func (f *FakeRegistry) Exists(ctx context.Context, name string) (Existence, error) {
	f.Calls = append(f.Calls, Call{Op: "get", Name: name})
	if err, ok := f.ExistsErrors[name]; ok {
		return ExistenceUnknown, err
	}
	if _, ok := f.servers[name]; ok {
		return ExistencePresent, nil
	}
	return ExistenceAbsent, nil
}

// Add registers server unless an AddFailures entry or an existing
// registration with the same name prevents it, mirroring the real CLI.
func (f *FakeRegistry) Add(ctx context.Context, name string, server Server, scope Scope) Result {
	f.Calls = append(f.Calls, Call{Op: "add", Name: name, Scope: scope, Server: server})
	if msg, ok := f.AddFailures[name]; ok {
		return Result{Success: false, Output: msg}
	}
	if _, ok := f.servers[name]; ok {
		return Result{Success: false, Output: fmt.Sprintf("MCP server %s already exists in %s config", name, scope)}
	}
	f.servers[name] = server
	return Result{Success: true, Output: fmt.Sprintf("Added %s MCP server %s to %s config", server.Transport(), name, scope)}
}

// Remove deletes name if present.
func (f *FakeRegistry) Remove(ctx context.Context, name string, scope Scope) Result {
	f.Calls = append(f.Calls, Call{Op: "remove", Name: name, Scope: scope})
	if _, ok := f.servers[name]; !ok {
		return Result{Success: false, Output: fmt.Sprintf("No MCP server found with name: %s", name)}
	}
	delete(f.servers, name)
	return Result{Success: true, Output: fmt.Sprintf("Removed MCP server %s from %s config", name, scope)}
}

// Server returns the registration stored under name.
func (f *FakeRegistry) Server(name string) (Server, bool) {
	s, ok := f.servers[name]
	return s, ok
}

// Ops returns the operation names of Calls, e.g. "add:fs".
func (f *FakeRegistry) Ops() []string {
	ops := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		ops[i] = c.Op + ":" + c.Name
	}
	return ops
}
