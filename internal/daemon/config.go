// Package daemon manages the VegiRise runtime lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Goals   GoalsConfig   `toml:"goals"`
	Wakeup  WakeupConfig  `toml:"wakeup"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// GoalsConfig seeds the vegetable goal tiers for a fresh install.
// Persisted settings in the store take precedence once saved.
type GoalsConfig struct {
	MinimumGrams  int64 `toml:"minimum_grams"`
	StandardGrams int64 `toml:"standard_grams"`
	TargetGrams   int64 `toml:"target_grams"`
}

// WakeupConfig controls wake-up scoring defaults.
type WakeupConfig struct {
	GoalTime      string `toml:"goal_time"`       // "HH:MM"
	EarlyBirdTime string `toml:"early_bird_time"` // wake before this counts as early bird
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	homeDir := vegiriseHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8420,
			CORSOrigins: []string{"*"},
		},
		Goals: GoalsConfig{
			MinimumGrams:  350,
			StandardGrams: 500,
			TargetGrams:   800,
		},
		Wakeup: WakeupConfig{
			GoalTime:      "06:00",
			EarlyBirdTime: "05:30",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "vegirise.log"),
		},
	}
}

// LoadConfig reads config from ~/.vegirise/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(vegiriseHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.vegirise/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(vegiriseHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// vegiriseHome returns the VegiRise data directory.
func vegiriseHome() string {
	if env := os.Getenv("VEGIRISE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vegirise")
}
