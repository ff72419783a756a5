package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "CHOOSE_CONFIG"

// Config holds the CLI configuration.
type Config struct {
	// Clear erases the prompt from the terminal once an option is chosen.
	Clear bool `yaml:"clear"`

	// InterruptCancels lets Ctrl-C cancel the prompt.
	InterruptCancels bool `yaml:"interrupt_cancels"`

	// LogFile receives JSON debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`

	// ShowHidden includes dot entries when options come from a directory.
	ShowHidden bool `yaml:"show_hidden"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InterruptCancels: true,
	}
}

// DefaultPath returns the config file location. $CHOOSE_CONFIG wins over
// <user config dir>/choose/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "choose", "config.yaml"), nil
}

// Load reads the config at path, falling back to DefaultPath when path is
// empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
