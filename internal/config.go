package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultConfigPath is where the config file is looked up when no other
// path is given.
const DefaultConfigPath = "~/.daily/config.toml"

// Config represents the application configuration.
type Config struct {
	DailiesDir   string            `yaml:"dailies_dir" toml:"dailies_dir"`
	SkipWeekends bool              `yaml:"skip_weekends" toml:"skip_weekends"`
	Editor       string            `yaml:"editor" toml:"editor"`
	App          ApplicationConfig `yaml:"app" toml:"app"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.DailiesDir, validation.Required),
	); err != nil {
		return err
	}
	return c.App.Validate()
}

// ResolvedDailiesDir returns DailiesDir with a leading "~" expanded.
func (c *Config) ResolvedDailiesDir() (string, error) {
	return ExpandHome(c.DailiesDir)
}

// ApplicationConfig holds logging configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level" toml:"log_level"`
	LogFormat string     `yaml:"log_format" toml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		DailiesDir:   "~/.daily/dailies",
		SkipWeekends: true,
		App: ApplicationConfig{
			LogLevel:  slog.LevelWarn,
			LogFormat: LogFormatText,
		},
	}
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
