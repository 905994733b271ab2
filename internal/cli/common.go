package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/clock"
	"github.com/danieljhkim/mcport/internal/config"
	"github.com/danieljhkim/mcport/internal/convert"
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/fsops"
	"github.com/danieljhkim/mcport/internal/logging"
)

// outputFormat selects how results are printed.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	case "":
		return outputText, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be text, json or yaml", s)
	}
}

// newLogger builds the diagnostic logger on the command's stderr.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	return logging.New(w, logging.Options{
		Verbose: verbose,
		Level:   config.LogLevel(),
	})
}

// resolvePaths applies flag overrides on top of the environment defaults.
func resolvePaths(codexConfig, claudeBin string) (*config.Paths, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if codexConfig != "" {
		paths.CodexConfig = codexConfig
	}
	if claudeBin != "" {
		paths.ClaudeBin = claudeBin
	}
	return paths, nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(paths *config.Paths, log zerolog.Logger) *engine.Engine {
	registry := claude.NewCLIRegistry(paths.ClaudeBin, claude.ExecRunner{}, claude.DefaultTimeouts(), log)
	return engine.New(registry, fsops.NewRealFS(), &clock.RealClock{}, *paths, log)
}

// convertOptions builds the secret handling for conversion. An env file
// implies resolution; its values win over the process environment.
func convertOptions(resolveEnv bool, envFile string) (convert.Options, error) {
	if envFile == "" {
		if !resolveEnv {
			return convert.Options{}, nil
		}
		return convert.Options{ResolveSecrets: true, Secrets: convert.EnvLookup{}}, nil
	}

	fromFile, err := convert.LoadDotenv(envFile)
	if err != nil {
		return convert.Options{}, err
	}
	return convert.Options{
		ResolveSecrets: true,
		Secrets:        convert.ChainLookup{fromFile, convert.EnvLookup{}},
	}, nil
}

// writeDocument encodes v as JSON or YAML.
func writeDocument(w io.Writer, format outputFormat, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported document format %q", format)
	}
}
