package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Color is a named color from the standard 16-color terminal palette.
// The zero value Unset means "no color".
type Color int

const (
	Unset Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright_black":   BrightBlack,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,
	"bright_white":   BrightWhite,
}

// fg/bg SGR attributes indexed by Color-1.
var (
	fgAttrs = [16]color.Attribute{
		color.FgBlack, color.FgRed, color.FgGreen, color.FgYellow,
		color.FgBlue, color.FgMagenta, color.FgCyan, color.FgWhite,
		color.FgHiBlack, color.FgHiRed, color.FgHiGreen, color.FgHiYellow,
		color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan, color.FgHiWhite,
	}
	bgAttrs = [16]color.Attribute{
		color.BgBlack, color.BgRed, color.BgGreen, color.BgYellow,
		color.BgBlue, color.BgMagenta, color.BgCyan, color.BgWhite,
		color.BgHiBlack, color.BgHiRed, color.BgHiGreen, color.BgHiYellow,
		color.BgHiBlue, color.BgHiMagenta, color.BgHiCyan, color.BgHiWhite,
	}
)

// ParseColor resolves a color name like "red" or "bright_blue".
// Names are case-insensitive; "bright-blue" is accepted as an alias.
func ParseColor(name string) (Color, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	c, ok := colorNames[key]
	if !ok {
		return Unset, fmt.Errorf("unknown color %q (valid: %s)", name, strings.Join(ColorNames(), ", "))
	}
	return c, nil
}

// ColorNames returns all valid color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Color) valid() bool {
	return c >= Unset && c <= BrightWhite
}

func (c Color) String() string {
	if c == Unset {
		return "unset"
	}
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) foreground() color.Attribute { return fgAttrs[c-1] }
func (c Color) background() color.Attribute { return bgAttrs[c-1] }
