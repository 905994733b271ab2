// Package claude models Claude Code MCP registrations and drives the claude
// CLI that owns them.
//
// A registration is either a remote HTTP server or a local stdio process.
// Server is a closed sum type over exactly those two shapes: the isServer
// marker keeps other packages from adding variants, and every consumer
// switches on the concrete type.
package claude

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Server is a Claude Code MCP registration: *RemoteServer or *StdioServer.
type Server interface {
	// Transport returns the transport label shown to users.
	Transport() Transport

	isServer()
}

// Transport names the kind of registration.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// RemoteServer is an MCP server reached over streamable HTTP.
type RemoteServer struct {
	URL     string
	Headers map[string]string
}

// StdioServer is an MCP server launched as a local process.
type StdioServer struct {
	Command string
	Args    []string
	Env     map[string]string
}

func (*RemoteServer) isServer() {}
func (*StdioServer) isServer()  {}

// Transport returns TransportHTTP.
func (*RemoteServer) Transport() Transport { return TransportHTTP }

// Transport returns TransportStdio.
func (*StdioServer) Transport() Transport { return TransportStdio }

// remoteWire and stdioWire are the JSON shapes accepted by
// `claude mcp add-json`. Empty collections are omitted entirely.
type remoteWire struct {
	Type    Transport         `json:"type" yaml:"type"`
	URL     string            `json:"url" yaml:"url"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

type stdioWire struct {
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

func (s *RemoteServer) wire() remoteWire {
	return remoteWire{Type: TransportHTTP, URL: s.URL, Headers: s.Headers}
}

func (s *StdioServer) wire() stdioWire {
	return stdioWire{Command: s.Command, Args: s.Args, Env: s.Env}
}

// MarshalJSON implements json.Marshaler.
func (s *RemoteServer) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire())
}

// MarshalJSON implements json.Marshaler.
func (s *StdioServer) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (s *RemoteServer) MarshalYAML() (interface{}, error) {
	return s.wire(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *StdioServer) MarshalYAML() (interface{}, error) {
	return s.wire(), nil
}

// Encode renders a server as the compact JSON passed to `claude mcp add-json`.
func Encode(s Server) (string, error) {
	var v interface{}
	switch srv := s.(type) {
	case *RemoteServer:
		v = srv.wire()
	case *StdioServer:
		v = srv.wire()
	default:
		return "", fmt.Errorf("unsupported server type %T", s)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode server: %w", err)
	}
	return string(data), nil
}

// EncodeIndent renders a server as indented JSON for previews.
func EncodeIndent(s Server, indent string) (string, error) {
	compact, err := Encode(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(compact), "", indent); err != nil {
		return "", fmt.Errorf("failed to indent server: %w", err)
	}
	return buf.String(), nil
}
