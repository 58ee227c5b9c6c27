// Package config loads and saves tasm's settings, a small TOML document
// that supplies defaults for what the CLI would otherwise have to repeat
// on every invocation (search directories, output format, error policy).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is tasm's settings document.
type Config struct {
	Assemble struct {
		SearchDirs   []string `toml:"search_dirs"`
		OutputFormat string   `toml:"output_format"` // rom, tef
		OutputFile   string   `toml:"output_file"`
		FailFast     bool     `toml:"fail_fast"`
	} `toml:"assemble"`

	Log struct {
		ColorOutput bool   `toml:"color_output"`
		Level       string `toml:"level"` // debug, info, warn, error
	} `toml:"log"`
}

// DefaultConfig returns the built-in defaults, matching the original
// CLI's own defaults (-o asm.out, -f rom).
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Assemble.SearchDirs = nil
	cfg.Assemble.OutputFormat = "rom"
	cfg.Assemble.OutputFile = "asm.out"
	cfg.Assemble.FailFast = false

	cfg.Log.ColorOutput = true
	cfg.Log.Level = "info"

	return cfg
}

// SearchDirsFromFlag splits a colon-separated -s argument into a slice,
// the form main.go's CLI flag takes per the external interface.
func SearchDirsFromFlag(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "tasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "tasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "tasm", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "tasm", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// is not an error; it yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
