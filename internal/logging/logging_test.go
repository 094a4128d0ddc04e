// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscope/pkg/types"
)

func TestNewLevelParsing(t *testing.T) {
	log := New(types.LoggingConfig{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log = New(types.LoggingConfig{Level: ""})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = New(types.LoggingConfig{Level: "not-a-level"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewFileWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "paperscope.log")
	log, closer, err := NewFile(types.LoggingConfig{Level: "info", File: path})
	require.NoError(t, err)

	log.Info().Str("query", "transformers").Msg("search started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"query":"transformers"`), "log line: %s", data)
}

func TestNewFileUnsetPathDiscards(t *testing.T) {
	log, closer, err := NewFile(types.LoggingConfig{})
	require.NoError(t, err)
	log.Info().Msg("goes nowhere")
	assert.NoError(t, closer.Close())
}
