// Package config loads sniff settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"

	fmtutil "github.com/ostafen/sniff/pkg/util/format"
)

const EnvPrefix = "SNIFF_"

type Config struct {
	LogLevel   string `env:"LOG_LEVEL,default:INFO"`
	LogFile    string `env:"LOG_FILE"`
	ReadLimit  string `env:"READ_LIMIT,default:8KB"`
	Workers    int    `env:"WORKERS,default:4"`
	Signatures string `env:"SIGNATURES"`
	Plugins    string `env:"PLUGINS"` // comma-separated
}

// Load reads the configuration from SNIFF_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("invalid worker count %d", cfg.Workers)
	}
	return cfg, nil
}

// ReadLimitBytes parses ReadLimit as a byte size.
func (c *Config) ReadLimitBytes() (int, error) {
	n, err := fmtutil.ParseBytes(c.ReadLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid read limit %q: %w", c.ReadLimit, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid read limit %q", c.ReadLimit)
	}
	return int(n), nil
}

// PluginPaths splits Plugins into its non-empty entries.
func (c *Config) PluginPaths() []string {
	return SplitList(c.Plugins)
}

// SplitList splits a comma-separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
