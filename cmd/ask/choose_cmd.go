package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/prompt"
)

func newChooseCmd() *cobra.Command {
	var (
		filter  bool
		message string
	)

	cmd := &cobra.Command{
		Use:     "choose [options...]",
		Short:   "Pick one option from a list",
		GroupID: GroupPrompt,
		Long: `Pick one option from a list.

Options come from the arguments, or one per line on stdin when no
arguments are given. The selected option is printed on stdout.`,
		Example: `  ask choose apple banana cherry
  git branch --format '%(refname:short)' | ask choose --filter`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			options := args
			if len(options) == 0 {
				var err error
				options, err = readOptions(os.Stdin)
				if err != nil {
					return fmt.Errorf("read options: %w", err)
				}
				// The pipe just consumed stdin; the list needs the
				// terminal for key input.
				if tty, err := os.Open("/dev/tty"); err == nil {
					defer tty.Close()
					os.Stdin = tty
				}
			}
			if len(options) == 0 {
				return fmt.Errorf("no options to choose from")
			}

			var (
				res prompt.SelectResult
				err error
			)
			if filter {
				res, err = prompt.FilterSelect(message, options)
			} else {
				res, err = prompt.Select(message, options)
			}
			if err != nil {
				return err
			}
			if res.Cancelled {
				return prompt.ErrAborted
			}

			output.FromContext(ctx).Value(res.Value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&filter, "filter", "f", false, "Fuzzy-filter options while typing")
	cmd.Flags().StringVarP(&message, "message", "m", "Choose an option", "Prompt shown above the list")

	return cmd
}
