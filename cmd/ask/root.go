package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ask/internal/config"
	"github.com/raphi011/ask/internal/log"
	"github.com/raphi011/ask/internal/output"
	"github.com/raphi011/ask/prompt"
	"github.com/raphi011/ask/style"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	themeFlag  string
	configPath string

	// Shared state injected into commands
	cfg *config.Config
)

// errDeclined signals a "no" answer. It maps to exit code 1 without a
// message, so scripts can branch on `ask confirm`.
var errDeclined = errors.New("declined")

// Command group IDs for organizing help output
const (
	GroupPrompt  = "prompt"
	GroupDisplay = "display"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ask",
	Short: "Prompts, styles and spinners for shell scripts",
	Long: `ask brings typed prompts, ANSI styling, spinners and boxes to
shell scripts.

Prompt results are printed on stdout; everything interactive happens on
stderr, so command substitution stays clean:

  name=$(ask prompt "Your name")
  port=$(ask prompt "Port" --type int --default 8080)`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			loaded = config.Default()
		}
		cfg = &loaded

		if err := cfg.Apply(); err != nil {
			return err
		}

		// Flags win over the config file.
		if noColor {
			style.SetColor(style.ColorNever)
		}
		if themeFlag != "" {
			if err := style.SelectTheme(themeFlag); err != nil {
				return err
			}
		}

		// Logger on stderr for diagnostics, printer on stdout for data.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, errDeclined):
			os.Exit(1)
		case errors.Is(err, prompt.ErrAborted):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(130)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme (default, dracula, nord, gruvbox, catppuccin, none)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/ask/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupDisplay, Title: "Display Commands:"},
	)

	// Prompt commands
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newChooseCmd())

	// Display commands
	rootCmd.AddCommand(newStyleCmd())
	rootCmd.AddCommand(newSpinnerCmd())
	rootCmd.AddCommand(newBoxCmd())
	rootCmd.AddCommand(newThemesCmd())
}
