package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/raphi011/ask/style"
)

// Apply installs the configured color mode and theme. The config must
// have passed [Config.Validate].
func (c Config) Apply() error {
	switch c.Color {
	case "always":
		style.SetColor(style.ColorAlways)
	case "never":
		style.SetColor(style.ColorNever)
	default:
		style.SetColor(style.ColorAuto)
	}

	if c.Theme.Name != "" {
		if err := style.SelectTheme(c.Theme.Name); err != nil {
			return err
		}
	}

	// Single-color overrides on top of the selected preset.
	theme := style.CurrentTheme()
	overridden := false
	for _, o := range []struct {
		value string
		dst   *lipgloss.TerminalColor
	}{
		{c.Theme.Primary, &theme.Primary},
		{c.Theme.Accent, &theme.Accent},
		{c.Theme.Success, &theme.Success},
		{c.Theme.Error, &theme.Error},
		{c.Theme.Warning, &theme.Warning},
		{c.Theme.Muted, &theme.Muted},
		{c.Theme.Normal, &theme.Normal},
	} {
		if o.value != "" {
			*o.dst = lipgloss.Color(o.value)
			overridden = true
		}
	}
	if overridden {
		style.SetTheme(theme)
	}
	return nil
}
