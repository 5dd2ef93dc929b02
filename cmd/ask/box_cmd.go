package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/style"
)

func newBoxCmd() *cobra.Command {
	var (
		title    string
		minWidth int
	)

	cmd := &cobra.Command{
		Use:     "box [text...]",
		Short:   "Draw text in a rounded box",
		GroupID: GroupDisplay,
		Long: `Draw text in a rounded box.

Each argument becomes one line. Without arguments, lines are read from
stdin.`,
		Example: `  ask box "All tests passed" --title "CI"
  df -h | ask box --title "Disk"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			lines := args
			if len(lines) == 0 {
				var err error
				lines, err = readLines(os.Stdin)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			}

			var opts []style.BoxOption
			if title != "" {
				opts = append(opts, style.WithTitle(title))
			}
			if minWidth > 0 {
				opts = append(opts, style.WithMinWidth(minWidth))
			}

			output.FromContext(ctx).Println(style.Boxed(lines, opts...))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title embedded in the top border")
	cmd.Flags().IntVar(&minWidth, "min-width", 0, "Minimum content width")

	return cmd
}
