package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/ask/parse"
	"github.com/raphi011/ask/prompt"
)

func newConfirmCmd() *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:     "confirm <message>",
		Short:   "Ask a yes/no question",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Ask a yes/no question.

Exits 0 on yes, 1 on no and 130 when the prompt is cancelled, so the
answer can drive shell conditionals directly.`,
		Example: `  ask confirm "Deploy to production?" && ./deploy.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := runConfirm(args[0], value)
			if err != nil {
				return err
			}
			if !confirmed {
				return errDeclined
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Provided answer (yes/no), skips the prompt when it parses")

	return cmd
}

func runConfirm(message, value string) (bool, error) {
	if value != "" {
		if ok, err := parse.Bool().Parse(value); err == nil {
			return ok, nil
		}
		// Unparseable provided answers fall through to the prompt.
	}

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		res, err := prompt.Confirm(message)
		if err != nil {
			return false, err
		}
		if res.Cancelled {
			return false, prompt.ErrAborted
		}
		return res.Confirmed, nil
	}

	// Piped input: read a line instead of taking over the terminal.
	no := false
	return prompt.Prompt[bool]{
		Message: message,
		Parser:  parse.Bool(),
		Default: &no,
	}.Run()
}
