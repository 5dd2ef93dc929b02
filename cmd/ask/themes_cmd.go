package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/style"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "themes",
		Short:   "List available themes",
		GroupID: GroupDisplay,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			for _, name := range style.ThemeNames() {
				sample := name
				if theme, ok := style.ThemeByName(name); ok && style.ColorEnabled() {
					sample = lipgloss.NewStyle().Foreground(theme.Primary).Render(name)
				}
				out.Println(sample)
			}
			return nil
		},
	}
}
