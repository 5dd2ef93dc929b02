package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/style"
)

func newStyleCmd() *cobra.Command {
	var (
		fg, bg        string
		bold          bool
		faint         bool
		italic        bool
		underline     bool
		blink         bool
		reverse       bool
		strikethrough bool
	)

	cmd := &cobra.Command{
		Use:     "style <text...>",
		Short:   "Print styled text",
		GroupID: GroupDisplay,
		Args:    cobra.MinimumNArgs(1),
		Long: `Print styled text.

Arguments are joined with spaces and printed with the requested colors
and attributes. Colors degrade automatically when stdout is not a
terminal; --no-color and the color config setting apply as usual.

Color names: ` + strings.Join(style.ColorNames(), ", ") + `.`,
		Example: `  ask style --fg red --bold "build failed"
  ask style --fg bright_blue --underline "https://example.com"
  ask style --bg yellow --fg black " WARN "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			spec, err := specFromNames(fg, bg)
			if err != nil {
				return err
			}
			spec.Bold = bold
			spec.Faint = faint
			spec.Italic = italic
			spec.Underline = underline
			spec.Blink = blink
			spec.Reverse = reverse
			spec.Strikethrough = strikethrough

			st, err := style.New(spec)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(st.Render(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&fg, "fg", "", "Foreground color name")
	cmd.Flags().StringVar(&bg, "bg", "", "Background color name")
	cmd.Flags().BoolVar(&bold, "bold", false, "Bold text")
	cmd.Flags().BoolVar(&faint, "faint", false, "Faint text")
	cmd.Flags().BoolVar(&italic, "italic", false, "Italic text")
	cmd.Flags().BoolVar(&underline, "underline", false, "Underlined text")
	cmd.Flags().BoolVar(&blink, "blink", false, "Blinking text")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Swap foreground and background")
	cmd.Flags().BoolVar(&strikethrough, "strikethrough", false, "Struck-through text")

	return cmd
}
