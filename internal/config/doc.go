// Package config handles loading and validation of ask configuration.
//
// Configuration is read from ~/.config/ask/config.toml. Every setting
// is optional; [Default] values apply when the file is missing.
//
// # Key Settings
//
//   - color: "auto", "always" or "never" (default: "auto")
//
// # Theme Configuration
//
// The [theme] section selects a preset palette and may override
// individual colors with any value lipgloss understands (ANSI index
// or hex):
//
//	[theme]
//	name = "dracula"
//	accent = "#ff79c6"
//
// # Prompt Configuration
//
//	[prompt]
//	max_attempts = 5      # 0 = default budget, -1 = unlimited
//	strict_provided = true
//
// # Spinner Configuration
//
//	[spinner]
//	frames = "mini-dot"   # dot, line, mini-dot, points
package config
