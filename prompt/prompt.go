package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/raphi011/ask/parse"
	"github.com/raphi011/ask/style"
)

// DefaultMaxAttempts is the retry budget when [Prompt.MaxAttempts] is zero.
const DefaultMaxAttempts = 20

// Unlimited disables the retry budget.
const Unlimited = -1

var (
	messageStyle = style.MustNew(style.Spec{Foreground: style.Blue, Bold: true})
	errorStyle   = style.MustNew(style.Spec{Foreground: style.Red})
)

// Prompt asks for a single value of type T.
//
// The zero value is not usable: Message and Parser are required. All
// other fields are optional.
type Prompt[T any] struct {
	// Message is shown before the input cursor, annotated with the
	// default value when one is set.
	Message string

	// Parser converts the raw line into the result value.
	Parser parse.Parser[T]

	// Default is returned when the user submits an empty line. It is
	// assumed to be valid; the parser is not invoked for it.
	Default *T

	// Provided is a raw value supplied ahead of time, typically by a
	// CLI flag. When non-empty it is parsed once: success returns the
	// value without reading input, failure reports the error and falls
	// through to interactive mode (or fails, see StrictProvided).
	Provided string

	// StrictProvided makes a non-parseable Provided value an error
	// instead of falling back to interactive prompting.
	StrictProvided bool

	// MaxAttempts bounds interactive retries. Zero means
	// [DefaultMaxAttempts]; [Unlimited] disables the bound.
	MaxAttempts int

	// HideInput disables echo while reading (passwords). Only
	// effective when the input is a terminal.
	HideInput bool

	// In is the input source, os.Stdin when nil.
	In io.Reader

	// Out receives the prompt and error messages, os.Stderr when nil.
	Out io.Writer
}

// Run asks until a value parses, the retry budget is exhausted, or the
// input ends. Every returned value has passed the parser exactly once,
// except a Default, which is returned as-is on empty input.
func (p Prompt[T]) Run() (T, error) {
	var zero T
	if p.Parser == nil {
		return zero, errors.New("prompt: nil parser")
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stderr
	}

	if p.Provided != "" {
		v, err := p.Parser.Parse(p.Provided)
		if err == nil {
			return v, nil
		}
		if p.StrictProvided {
			return zero, err
		}
		errorStyle.Fprintln(out, err.Error())
	}

	label := p.Message
	if p.Default != nil {
		label = fmt.Sprintf("%s [%v]", label, *p.Default)
	}
	label += ": "

	readLine := p.lineReader(in, out)

	budget := p.MaxAttempts
	if budget == 0 {
		budget = DefaultMaxAttempts
	}

	for attempt := 0; budget == Unlimited || attempt < budget; attempt++ {
		messageStyle.Fprint(out, label)

		line, err := readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, fmt.Errorf("%w: end of input", ErrAborted)
			}
			return zero, fmt.Errorf("read input: %w", err)
		}

		if line == "" {
			if p.Default != nil {
				return *p.Default, nil
			}
			errorStyle.Fprintln(out, "A value is required.")
			continue
		}

		v, err := p.Parser.Parse(line)
		if err != nil {
			errorStyle.Fprintln(out, err.Error())
			continue
		}
		return v, nil
	}

	return zero, &MaxAttemptsError{Attempts: budget}
}

// lineReader returns a function reading one line per call. The reader
// is created once so buffered input survives across retries.
func (p Prompt[T]) lineReader(in io.Reader, out io.Writer) func() (string, error) {
	if p.HideInput {
		if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			fd := int(f.Fd())
			return func() (string, error) {
				b, err := term.ReadPassword(fd)
				fmt.Fprintln(out) // echo the newline the terminal swallowed
				if err != nil {
					return "", err
				}
				return string(b), nil
			}
		}
		// Not a terminal: fall through to a plain (echoing) read.
	}

	scanner := bufio.NewScanner(in)
	return func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
}

// Ask prompts interactively with default settings.
func Ask[T any](msg string, parser parse.Parser[T]) (T, error) {
	return Prompt[T]{Message: msg, Parser: parser}.Run()
}

// AskString prompts for a free-form string.
func AskString(msg string) (string, error) {
	return Ask(msg, parse.String())
}

// AskInt prompts for an integer.
func AskInt(msg string) (int, error) {
	return Ask(msg, parse.Int())
}

// AskBool prompts for a yes/no style answer.
func AskBool(msg string) (bool, error) {
	return Ask(msg, parse.Bool())
}

// AskDuration prompts for a duration like "30s" or "1h30m".
func AskDuration(msg string) (time.Duration, error) {
	return Ask(msg, parse.Duration())
}
