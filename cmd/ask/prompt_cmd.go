package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/history"
	"github.com/raphi011/ask/internal/log"
	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/prompt"
)

func newPromptCmd() *cobra.Command {
	var (
		kind     string
		choices  []string
		value    string
		def      string
		strict   bool
		attempts int
		hidden   bool
		remember bool
	)

	cmd := &cobra.Command{
		Use:     "prompt <message>",
		Short:   "Ask for a typed value",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Ask for a typed value and print it on stdout.

The answer is re-prompted until it parses as the requested type. A
--value supplied ahead of time (typically from a flag or environment
variable of the calling script) skips the prompt when it parses; when
it does not, the error is shown and the prompt runs as usual, unless
--strict is set.`,
		Example: `  ask prompt "Your name"
  ask prompt "Port" --type int --default 8080
  ask prompt "Timeout" --type duration --value "$TIMEOUT"
  ask prompt "Region" --type enum --choices eu,us,ap
  ask prompt "Token" --hidden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parser, err := parserFor(kind, choices)
			if err != nil {
				return err
			}

			p := prompt.Prompt[any]{
				Message:        args[0],
				Parser:         parser,
				Provided:       value,
				StrictProvided: strict || cfg.Prompt.StrictProvided,
				MaxAttempts:    attempts,
				HideInput:      hidden,
			}
			if p.MaxAttempts == 0 {
				p.MaxAttempts = cfg.Prompt.MaxAttempts
			}
			if cmd.Flags().Changed("default") {
				d, err := parser.Parse(def)
				if err != nil {
					return fmt.Errorf("invalid default: %w", err)
				}
				p.Default = &d
			}
			if remember && p.Default == nil {
				if h, err := history.Load(); err == nil {
					if last := h.Get(args[0]); last != "" {
						if d, err := parser.Parse(last); err == nil {
							p.Default = &d
						}
					}
				}
			}

			v, err := p.Run()
			if err != nil {
				return err
			}

			if remember && !hidden {
				h, err := history.Load()
				if err == nil {
					h.Set(args[0], fmt.Sprint(v))
					err = h.Save()
				}
				if err != nil {
					log.FromContext(ctx).Warnf("save answer history: %v", err)
				}
			}

			log.FromContext(ctx).Debugf("parsed %s value: %v", parser.Name(), v)
			output.FromContext(ctx).Value(v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "string", "Value type (string, int, float, bool, duration, enum, auto)")
	cmd.Flags().StringSliceVar(&choices, "choices", nil, "Valid values for --type enum")
	cmd.Flags().StringVar(&value, "value", "", "Provided value, prompts only when it does not parse")
	cmd.Flags().StringVar(&def, "default", "", "Default used on empty input")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of prompting when --value does not parse")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "Retry budget (-1 for unlimited)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Do not echo input (passwords)")
	cmd.Flags().BoolVar(&remember, "remember", false, "Offer the last accepted answer as the default")

	return cmd
}
