package codex

// Server is one normalized server definition from the Codex config.
// Empty strings and nil collections mean the field was absent or had the
// wrong type in the source.
type Server struct {
	// Name is the table key under mcp_servers, unique within one config
	Name string `json:"name" yaml:"name"`

	// URL is the endpoint of a remote (streamable HTTP) server
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// BearerTokenEnvVar names the environment variable holding the bearer token
	BearerTokenEnvVar string `json:"bearer_token_env_var,omitempty" yaml:"bearer_token_env_var,omitempty"`

	// Command launches a local stdio server
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// Args are passed to Command in order
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Env is extra environment for Command
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// IsRemote reports whether the server declares an endpoint URL.
func (s Server) IsRemote() bool {
	return s.URL != ""
}
