package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/vector/toml"
)

// Config is the sandbox config file layout
type Config struct {
	Sandbox SandboxConfig `toml:"sandbox"`
}

// SandboxConfig holds the [sandbox] section
type SandboxConfig struct {
	Initial [3]float64 `toml:"initial"`
	Kind    string     `toml:"kind"`
	Kinds   []string   `toml:"kinds"`
	Store   string     `toml:"store"`
	Sound   bool       `toml:"sound"`
	Degrees bool       `toml:"degrees"`
}

func defaultConfig() Config {
	return Config{
		Sandbox: SandboxConfig{
			Initial: [3]float64{1, 0, 0},
			Store:   "snapshots",
			Sound:   true,
		},
	}
}

// LoadConfig reads path over the defaults; a missing file yields the defaults
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
