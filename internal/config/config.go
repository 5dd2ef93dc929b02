package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/ask/style"
)

// ThemeConfig selects a preset palette, optionally overriding single
// colors. Override values are passed to lipgloss verbatim, so both
// ANSI indexes ("212") and hex values ("#ff79c6") work.
type ThemeConfig struct {
	Name    string `toml:"name"`
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Warning string `toml:"warning"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
}

// PromptConfig holds prompt engine defaults.
type PromptConfig struct {
	MaxAttempts    int  `toml:"max_attempts"`
	StrictProvided bool `toml:"strict_provided"`
}

// SpinnerConfig holds spinner defaults.
type SpinnerConfig struct {
	Frames string `toml:"frames"`
}

// Config holds the ask configuration.
type Config struct {
	Color   string        `toml:"color"` // "auto", "always" or "never"
	Theme   ThemeConfig   `toml:"theme"`
	Prompt  PromptConfig  `toml:"prompt"`
	Spinner SpinnerConfig `toml:"spinner"`
}

// ValidColorModes are the accepted values for the color setting.
var ValidColorModes = []string{"auto", "always", "never"}

// ValidFrameNames are the accepted values for spinner.frames.
var ValidFrameNames = []string{"dot", "line", "mini-dot", "points"}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Color: "auto",
		Theme: ThemeConfig{Name: "default"},
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ask", "config.toml"), nil
}

// Load reads the config file, returning defaults when it is missing.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path, returning
// defaults when it is missing.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings that only accept a fixed set of values.
func (c Config) Validate() error {
	if c.Color != "" && !slices.Contains(ValidColorModes, c.Color) {
		return fmt.Errorf("invalid color mode %q (valid: %s)",
			c.Color, strings.Join(ValidColorModes, ", "))
	}
	if c.Theme.Name != "" && !slices.Contains(style.ThemeNames(), strings.ToLower(c.Theme.Name)) {
		return fmt.Errorf("unknown theme %q (valid: %s)",
			c.Theme.Name, strings.Join(style.ThemeNames(), ", "))
	}
	if c.Spinner.Frames != "" && !slices.Contains(ValidFrameNames, c.Spinner.Frames) {
		return fmt.Errorf("unknown spinner frames %q (valid: %s)",
			c.Spinner.Frames, strings.Join(ValidFrameNames, ", "))
	}
	if c.Prompt.MaxAttempts < -1 {
		return fmt.Errorf("prompt.max_attempts must be >= -1, got %d", c.Prompt.MaxAttempts)
	}
	return nil
}
