package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/iconset-mcp/icon/loader"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	// Builtins selects additional Fluxor actions ("*", "system/", "printer").
	Builtins []string `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	// Sources lists icon sets in catalog order. Bundled sets are used when empty.
	Sources []*loader.Location `yaml:"sources,omitempty" json:"sources,omitempty"`
	// Limit caps list/search results when a request does not set its own.
	Limit int `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// Load reads config from URL (local path or any afs supported scheme).
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	for i, source := range c.Sources {
		if source == nil || source.URL == "" {
			return fmt.Errorf("sources[%d]: url was empty", i)
		}
	}
	return nil
}
