package style

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette used by the prompt and spinner packages.
type Theme struct {
	Primary lipgloss.TerminalColor // accent color (prompt messages, borders)
	Accent  lipgloss.TerminalColor // highlight color (selected items)
	Success lipgloss.TerminalColor // positive outcomes
	Error   lipgloss.TerminalColor // error messages
	Warning lipgloss.TerminalColor // warnings
	Muted   lipgloss.TerminalColor // placeholders, disabled text
	Normal  lipgloss.TerminalColor // standard text
}

// Preset themes.
var (
	// DefaultTheme is the default color scheme.
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
	}

	// DraculaTheme is based on the Dracula color scheme.
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Warning: lipgloss.Color("#ffb86c"), // orange
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
	}

	// NordTheme is based on the Nord color scheme.
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Success: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Error:   lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Warning: lipgloss.Color("#ebcb8b"), // nord13 (aurora yellow)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
		Normal:  lipgloss.Color("#eceff4"), // nord6 (snow storm)
	}

	// GruvboxTheme is based on the Gruvbox color scheme.
	GruvboxTheme = Theme{
		Primary: lipgloss.Color("#83a598"), // blue
		Accent:  lipgloss.Color("#d3869b"), // purple
		Success: lipgloss.Color("#b8bb26"), // green
		Error:   lipgloss.Color("#fb4934"), // red
		Warning: lipgloss.Color("#fabd2f"), // yellow
		Muted:   lipgloss.Color("#665c54"), // gray
		Normal:  lipgloss.Color("#ebdbb2"), // foreground
	}

	// CatppuccinTheme is based on Catppuccin Mocha.
	CatppuccinTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"), // blue
		Accent:  lipgloss.Color("#f5c2e7"), // pink
		Success: lipgloss.Color("#a6e3a1"), // green
		Error:   lipgloss.Color("#f38ba8"), // red
		Warning: lipgloss.Color("#fab387"), // peach
		Muted:   lipgloss.Color("#6c7086"), // overlay0
		Normal:  lipgloss.Color("#cdd6f4"), // text
	}

	// NoneTheme renders without any colors (terminal defaults).
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
	}
)

var presetThemes = map[string]Theme{
	"default":    DefaultTheme,
	"dracula":    DraculaTheme,
	"nord":       NordTheme,
	"gruvbox":    GruvboxTheme,
	"catppuccin": CatppuccinTheme,
	"none":       NoneTheme,
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme
)

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// ThemeByName returns a preset theme without activating it.
func ThemeByName(name string) (Theme, bool) {
	t, ok := presetThemes[strings.ToLower(name)]
	return t, ok
}

// SelectTheme activates a preset theme by name.
func SelectTheme(name string) error {
	t, ok := presetThemes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	SetTheme(t)
	return nil
}

// ThemeNames returns all preset theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(presetThemes))
	for name := range presetThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
