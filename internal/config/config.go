package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// LogDir is the directory diagnostic log files are written to.
	LogDir string `yaml:"log_dir"`
	// LogFile is the base log file name; the current date is prefixed.
	LogFile string `yaml:"log_file"`
	// RecentTransactions is the size of the recency statement view.
	RecentTransactions int `yaml:"recent_transactions"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		LogDir:             "logs",
		LogFile:            "bank-account-service.log",
		RecentTransactions: 10,
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their defaults, and a missing file is not an error: the defaults are
// returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	defaults := Default()
	if cfg.LogDir == "" {
		cfg.LogDir = defaults.LogDir
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}
	if cfg.RecentTransactions <= 0 {
		cfg.RecentTransactions = defaults.RecentTransactions
	}
	return cfg, nil
}
