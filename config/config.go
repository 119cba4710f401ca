package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked up in the working directory when no
// explicit path is given.
const DefaultFileName = "polymesh.toml"

// Config is the project file for tools built on the library: where the
// scene assets live and how chatty the logger should be.
type Config struct {
	AssetRoot string `toml:"asset_root"`
	LogLevel  string `toml:"log_level"`
	Watch     bool   `toml:"watch"`
}

func defaults() *Config {
	return &Config{
		AssetRoot: "assets",
		LogLevel:  "warn",
	}
}

// Load reads a TOML project file. A missing file is not an error: the
// defaults are returned so tools run without any setup.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
