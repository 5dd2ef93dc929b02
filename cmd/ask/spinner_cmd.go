package main

import (
	"fmt"

	"github.com/spf13/cobra"

	command "github.com/raphi011/ask/internal/cmd"
	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/spinner"
)

func newSpinnerCmd() *cobra.Command {
	var (
		title   string
		frames  string
		showOut bool
	)

	cmd := &cobra.Command{
		Use:     "spinner [flags] -- <command> [args...]",
		Short:   "Run a command behind a spinner",
		GroupID: GroupDisplay,
		Args:    cobra.MinimumNArgs(1),
		Long: `Run a command behind a spinner.

The spinner animates on stderr while the command runs and is erased
when it finishes. On failure the command's stderr becomes the error
message; its stdout is printed with --show-output.`,
		Example: `  ask spinner --title "Building" -- make all
  ask spinner --title "Fetching" --frames line -- git fetch --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := frames
			if name == "" {
				name = cfg.Spinner.Frames
			}
			fs, err := frameSetFor(name)
			if err != nil {
				return err
			}

			var out []byte
			runErr := spinner.Run(title, func(*spinner.Spinner) error {
				var err error
				out, err = command.OutputContext(ctx, "", args[0], args[1:]...)
				return err
			}, spinner.WithFrames(fs))

			if showOut && len(out) > 0 {
				output.FromContext(ctx).Print(string(out))
			}
			if runErr != nil {
				return fmt.Errorf("%s: %w", args[0], runErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "Working...", "Text shown next to the spinner")
	cmd.Flags().StringVar(&frames, "frames", "", "Frame set (dot, line, mini-dot, points)")
	cmd.Flags().BoolVar(&showOut, "show-output", false, "Print the command's stdout when it finishes")

	return cmd
}
