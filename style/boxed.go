package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BoxOption configures [Boxed].
type BoxOption func(*boxOptions)

type boxOptions struct {
	title    string
	minWidth int
}

// WithTitle embeds a title in the top border of the box.
func WithTitle(title string) BoxOption {
	return func(o *boxOptions) { o.title = title }
}

// WithMinWidth sets a minimum content width for the box.
func WithMinWidth(w int) BoxOption {
	return func(o *boxOptions) { o.minWidth = w }
}

// Boxed renders lines inside a rounded border, optionally with a title
// embedded in the top border:
//
//	╭─ Title ────╮
//	│ line one   │
//	│ line two   │
//	╰────────────╯
//
// Line widths are measured ANSI-aware, so styled content is padded
// correctly. The border uses the current theme's primary color.
func Boxed(lines []string, opts ...BoxOption) string {
	var o boxOptions
	for _, opt := range opts {
		opt(&o)
	}

	width := o.minWidth
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	titleWidth := lipgloss.Width(o.title)
	if o.title != "" && titleWidth+1 > width {
		width = titleWidth + 1
	}

	b := lipgloss.RoundedBorder()
	inner := width + 2 // one space of padding on each side

	borderize := func(s string) string {
		if !ColorEnabled() {
			return s
		}
		return lipgloss.NewStyle().Foreground(CurrentTheme().Primary).Render(s)
	}

	var sb strings.Builder

	// Top border, with the title spliced in when present.
	if o.title == "" {
		sb.WriteString(borderize(b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight))
	} else {
		rest := inner - titleWidth - 3
		sb.WriteString(borderize(b.TopLeft + b.Top))
		sb.WriteString(" " + o.title + " ")
		sb.WriteString(borderize(strings.Repeat(b.Top, rest) + b.TopRight))
	}
	sb.WriteByte('\n')

	for _, line := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(line))
		sb.WriteString(borderize(b.Left))
		sb.WriteString(" " + line + pad + " ")
		sb.WriteString(borderize(b.Right))
		sb.WriteByte('\n')
	}

	sb.WriteString(borderize(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight))
	return sb.String()
}
