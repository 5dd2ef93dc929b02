package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/raphi011/ask/internal/config"
	"github.com/raphi011/ask/parse"
	"github.com/raphi011/ask/spinner"
	"github.com/raphi011/ask/style"
)

// valueTypes are the accepted --type values for the prompt command.
var valueTypes = []string{"string", "int", "float", "bool", "duration", "enum", "auto"}

// parserFor builds the parser matching a --type value. choices is only
// used for "enum".
func parserFor(kind string, choices []string) (parse.Parser[any], error) {
	switch kind {
	case "", "string":
		return parse.Untyped(parse.String()), nil
	case "int":
		return parse.Untyped(parse.Int()), nil
	case "float":
		return parse.Untyped(parse.Float()), nil
	case "bool":
		return parse.Untyped(parse.Bool()), nil
	case "duration":
		return parse.Untyped(parse.Duration()), nil
	case "enum":
		if len(choices) == 0 {
			return nil, fmt.Errorf("--type enum requires --choices")
		}
		return parse.Untyped(parse.Enum(choices...)), nil
	case "auto":
		// Most specific branch first, so "8080" stays an int and "90s"
		// becomes a duration.
		return parse.FirstOf(
			parse.Untyped(parse.Int()),
			parse.Untyped(parse.Float()),
			parse.Untyped(parse.Bool()),
			parse.Untyped(parse.Duration()),
			parse.Untyped(parse.String()),
		), nil
	default:
		return nil, fmt.Errorf("unknown type %q (valid: %s)", kind, strings.Join(valueTypes, ", "))
	}
}

// readOptions reads one option per line, skipping blank lines.
func readOptions(r io.Reader) ([]string, error) {
	var opts []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			opts = append(opts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return opts, nil
}

// readLines reads lines verbatim, preserving blanks and indentation.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// frameSetFor maps a frames name from a flag or the config file to a
// spinner frame set.
func frameSetFor(name string) (spinner.FrameSet, error) {
	switch name {
	case "", "dot":
		return spinner.Dot, nil
	case "line":
		return spinner.Line, nil
	case "mini-dot":
		return spinner.MiniDot, nil
	case "points":
		return spinner.Points, nil
	default:
		return spinner.Dot, fmt.Errorf("unknown spinner frames %q (valid: %s)",
			name, strings.Join(config.ValidFrameNames, ", "))
	}
}

// specFromNames resolves --fg/--bg color names into a style spec.
func specFromNames(fg, bg string) (style.Spec, error) {
	var spec style.Spec
	if fg != "" {
		c, err := style.ParseColor(fg)
		if err != nil {
			return spec, err
		}
		spec.Foreground = c
	}
	if bg != "" {
		c, err := style.ParseColor(bg)
		if err != nil {
			return spec, err
		}
		spec.Background = c
	}
	return spec, nil
}
