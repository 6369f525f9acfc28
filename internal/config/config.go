package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the hosting server: where
// saves live, how the engine is wired, and which balance preset is in
// effect. Economy formulas read Balance only.
type Config struct {
	Addr       string      `yaml:"addr" json:"addr"`
	DataDir    string      `yaml:"data_dir" json:"data_dir"`
	SaveKey    string      `yaml:"save_key" json:"save_key"`
	Difficulty string      `yaml:"difficulty" json:"difficulty"`
	SeededRNG  SeededRNG   `yaml:"seeded_rng" json:"seeded_rng"`
	Balance    *Balance    `yaml:"balance,omitempty" json:"balance,omitempty"`
	Logging    LogConfig   `yaml:"logging" json:"logging"`
	Autosave   AutosaveCfg `yaml:"autosave" json:"autosave"`
}

type SeededRNG struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	Seed    int64 `yaml:"seed" json:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type AutosaveCfg struct {
	Enabled  bool          `yaml:"enabled" json:"enabled"`
	Debounce time.Duration `yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Addr:       ":8420",
		DataDir:    "data",
		SaveKey:    "clickfluencer_save",
		Difficulty: "default",
		Autosave:   AutosaveCfg{Enabled: true, Debounce: 5 * time.Second},
		Logging:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults are returned so the server can run unconfigured.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// EffectiveBalance resolves the balance for this config: an explicit
// balance block wins, otherwise the named difficulty preset.
func (c Config) EffectiveBalance() Balance {
	if c.Balance != nil {
		return *c.Balance
	}
	switch c.Difficulty {
	case "casual":
		return Casual()
	case "hard":
		return Hard()
	default:
		return Default()
	}
}
