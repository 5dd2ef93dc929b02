package prompt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/ask/parse"
	"github.com/raphi011/ask/style"
)

func plainOutput(t *testing.T) {
	t.Helper()
	style.SetColor(style.ColorNever)
	t.Cleanup(func() { style.SetColor(style.ColorAuto) })
}

func ptr[T any](v T) *T { return &v }

// failingReader fails the test if the prompt tries to read from it.
type failingReader struct {
	t *testing.T
}

func (r failingReader) Read([]byte) (int, error) {
	r.t.Error("prompt read from input, expected none")
	return 0, errors.New("unexpected read")
}

// countingParser wraps a parser and counts Parse calls.
type countingParser[T any] struct {
	parse.Parser[T]
	calls int
}

func (p *countingParser[T]) Parse(raw string) (T, error) {
	p.calls++
	return p.Parser.Parse(raw)
}

func TestPromptProvidedSkipsInput(t *testing.T) {
	plainOutput(t)

	var out strings.Builder
	got, err := Prompt[int]{
		Message:  "Port",
		Parser:   parse.Int(),
		Provided: "10",
		In:       failingReader{t},
		Out:      &out,
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 10 {
		t.Errorf("Run() = %d, want 10", got)
	}
	if out.String() != "" {
		t.Errorf("Run() wrote %q, expected no output", out.String())
	}
}

func TestPromptProvidedInvalidFallsBack(t *testing.T) {
	plainOutput(t)

	var out strings.Builder
	got, err := Prompt[int]{
		Message:  "Port",
		Parser:   parse.Int(),
		Provided: "not-a-port",
		In:       strings.NewReader("8080\n"),
		Out:      &out,
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 8080 {
		t.Errorf("Run() = %d, want 8080", got)
	}
	if !strings.Contains(out.String(), `"not-a-port"`) {
		t.Errorf("output %q should report the bad provided value", out.String())
	}
}

func TestPromptProvidedInvalidStrict(t *testing.T) {
	plainOutput(t)

	_, err := Prompt[int]{
		Message:        "Port",
		Parser:         parse.Int(),
		Provided:       "nope",
		StrictProvided: true,
		In:             failingReader{t},
		Out:            &strings.Builder{},
	}.Run()

	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Run() error = %v, want *parse.Error", err)
	}
}

func TestPromptEmptyInputReturnsDefault(t *testing.T) {
	plainOutput(t)

	cp := &countingParser[bool]{Parser: parse.Bool()}
	got, err := Prompt[bool]{
		Message: "Enable cache",
		Parser:  cp,
		Default: ptr(true),
		In:      strings.NewReader("\n"),
		Out:     &strings.Builder{},
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !got {
		t.Error("Run() = false, want default true")
	}
	if cp.calls != 0 {
		t.Errorf("parser invoked %d times for a default, want 0", cp.calls)
	}
}

func TestPromptDefaultShownInLabel(t *testing.T) {
	plainOutput(t)

	var out strings.Builder
	_, err := Prompt[int]{
		Message: "Retries",
		Parser:  parse.Int(),
		Default: ptr(3),
		In:      strings.NewReader("\n"),
		Out:     &out,
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "Retries [3]: "; !strings.Contains(out.String(), want) {
		t.Errorf("output %q should contain %q", out.String(), want)
	}
}

func TestPromptRetriesUntilValid(t *testing.T) {
	plainOutput(t)

	var out strings.Builder
	got, err := Prompt[int]{
		Message: "Count",
		Parser:  parse.Int(),
		In:      strings.NewReader("abc\n4.2\n42\n"),
		Out:     &out,
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Run() = %d, want 42", got)
	}
	if got := strings.Count(out.String(), "cannot parse"); got != 2 {
		t.Errorf("output reported %d parse errors, want 2:\n%s", got, out.String())
	}
}

func TestPromptEmptyWithoutDefaultRetries(t *testing.T) {
	plainOutput(t)

	var out strings.Builder
	got, err := Prompt[string]{
		Message: "Name",
		Parser:  parse.String(),
		In:      strings.NewReader("\nalice\n"),
		Out:     &out,
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "alice" {
		t.Errorf("Run() = %q, want %q", got, "alice")
	}
	if !strings.Contains(out.String(), "A value is required.") {
		t.Errorf("output %q should require a value", out.String())
	}
}

func TestPromptEndOfInputAborts(t *testing.T) {
	plainOutput(t)

	_, err := Prompt[int]{
		Message: "Count",
		Parser:  parse.Int(),
		In:      strings.NewReader(""),
		Out:     &strings.Builder{},
	}.Run()
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Run() error = %v, want ErrAborted", err)
	}
}

func TestPromptMaxAttempts(t *testing.T) {
	plainOutput(t)

	_, err := Prompt[int]{
		Message:     "Count",
		Parser:      parse.Int(),
		MaxAttempts: 2,
		In:          strings.NewReader("x\ny\nz\n"),
		Out:         &strings.Builder{},
	}.Run()

	var merr *MaxAttemptsError
	if !errors.As(err, &merr) {
		t.Fatalf("Run() error = %v, want *MaxAttemptsError", err)
	}
	if merr.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", merr.Attempts)
	}
}

func TestPromptNilParser(t *testing.T) {
	t.Parallel()

	_, err := Prompt[int]{Message: "Count"}.Run()
	if err == nil {
		t.Fatal("Run() with nil parser expected error, got nil")
	}
}

func TestPromptAlternation(t *testing.T) {
	plainOutput(t)

	p := parse.FirstOf(parse.Untyped(parse.Duration()), parse.Untyped(parse.Int()))
	got, err := Prompt[any]{
		Message: "Timeout",
		Parser:  p,
		In:      strings.NewReader("90s\n"),
		Out:     &strings.Builder{},
	}.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if d, ok := got.(time.Duration); !ok || d != 90*time.Second {
		t.Errorf("Run() = %v (%T), want 90s duration", got, got)
	}
}
