// Package codex decodes MCP server definitions from a Codex CLI config file.
//
// The Codex config is TOML with one table per server under mcp_servers:
//
//	[mcp_servers.docs]
//	url = "https://example.com/mcp"
//	bearer_token_env_var = "DOCS_TOKEN"
//
//	[mcp_servers.fs]
//	command = "npx"
//	args = ["-y", "@modelcontextprotocol/server-filesystem"]
//
//	[mcp_servers.fs.env]
//	ROOT = "/tmp"
//
// Decoding is deliberately lenient: fields with an unexpected type are
// ignored rather than rejected, and a missing or malformed mcp_servers section
// decodes to an empty list. Whether a record is usable is decided later, at
// conversion time.
package codex
