// Package config holds the optional settings file of the plotting tool.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bensuk23/Optimisation/internal/logx"
)

// Config is the decoded settings file. Zero-valued fields keep defaults.
type Config struct {
	// BaseDir replaces the executable's directory as the installation
	// directory paths are resolved from.
	BaseDir     string `toml:"base_dir"`
	LogLevel    string `toml:"log_level"`
	PreviewRows int    `toml:"preview_rows"`
	Chart       Chart  `toml:"chart"`
}

// Chart sizes the rendered image, in inches.
type Chart struct {
	WidthIn  float64 `toml:"width_in"`
	HeightIn float64 `toml:"height_in"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:    "info",
		PreviewRows: 5,
		Chart:       Chart{WidthIn: 10, HeightIn: 6},
	}
}

// Load decodes the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g in", c.Chart.WidthIn, c.Chart.HeightIn)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows)
	}
	if _, ok := logx.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
