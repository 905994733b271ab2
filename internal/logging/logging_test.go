package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    zerolog.Level
	}{
		{"empty defaults to warn", "", false, zerolog.WarnLevel},
		{"verbose wins", "error", true, zerolog.DebugLevel},
		{"explicit info", "info", false, zerolog.InfoLevel},
		{"explicit debug", "debug", false, zerolog.DebugLevel},
		{"unknown falls back", "chatty", false, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level, tt.verbose))
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{NoColor: true})

	log.Debug().Msg("hidden")
	log.Warn().Str("server", "fs").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "server=fs")
	assert.Contains(t, out, "run=")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Verbose: true, NoColor: true})

	log.Debug().Msg("command output")

	assert.Contains(t, buf.String(), "command output")
}
