package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/iconset-mcp/icon/loader"
)

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte(`
builtins:
  - printer
limit: 50
sources:
  - prefix: mdi
    url: /tmp/mdi.json
  - url: /tmp/fluent.json
`), 0o644))

	cfg, err := Load(context.Background(), location)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"printer"}, cfg.Builtins)
	assert.EqualValues(t, 50, cfg.Limit)
	assert.EqualValues(t, []*loader.Location{
		{Prefix: "mdi", URL: "/tmp/mdi.json"},
		{URL: "/tmp/fluent.json"},
	}, cfg.Sources)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(location, []byte("limit: [1"), 0o644))
	_, err = Load(context.Background(), location)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		hasError    bool
	}{
		{description: "empty", config: &Config{}},
		{description: "negative limit", config: &Config{Limit: -1}, hasError: true},
		{description: "missing url", config: &Config{Sources: []*loader.Location{{Prefix: "mdi"}}}, hasError: true},
		{description: "nil source", config: &Config{Sources: []*loader.Location{nil}}, hasError: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := testCase.config.Validate()
			assert.EqualValues(t, testCase.hasError, err != nil)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ICONSET_CONFIG", "/etc/iconset.yaml")
	t.Setenv("ICONSET_DEBUG_CONFIG", "true")
	e, err := ParseEnv()
	require.NoError(t, err)
	assert.EqualValues(t, "/etc/iconset.yaml", e.Config)
	assert.EqualValues(t, "info", e.LogLevel)
	assert.True(t, e.DebugConfig)
}
