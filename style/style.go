package style

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/colorprofile"
	"github.com/fatih/color"
)

const reset = "\x1b[0m"

// Spec describes a text style. The zero value renders text unchanged.
// A Spec is validated once by [New]; it is never re-checked at render time.
type Spec struct {
	Foreground    Color
	Background    Color
	Bold          bool
	Faint         bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
}

func (s Spec) attributes() []color.Attribute {
	var attrs []color.Attribute
	if s.Foreground != Unset {
		attrs = append(attrs, s.Foreground.foreground())
	}
	if s.Background != Unset {
		attrs = append(attrs, s.Background.background())
	}
	if s.Bold {
		attrs = append(attrs, color.Bold)
	}
	if s.Faint {
		attrs = append(attrs, color.Faint)
	}
	if s.Italic {
		attrs = append(attrs, color.Italic)
	}
	if s.Underline {
		attrs = append(attrs, color.Underline)
	}
	if s.Blink {
		attrs = append(attrs, color.BlinkSlow)
	}
	if s.Reverse {
		attrs = append(attrs, color.ReverseVideo)
	}
	if s.Strikethrough {
		attrs = append(attrs, color.CrossedOut)
	}
	return attrs
}

// Styler renders text with a fixed, pre-validated [Spec].
// Stylers are immutable and safe for concurrent use.
type Styler struct {
	spec   Spec
	prefix string // combined SGR sequence, "" when no attributes are set
}

// New builds a Styler from the given spec.
// Unknown color values are rejected here, never at render time.
func New(spec Spec) (*Styler, error) {
	if !spec.Foreground.valid() {
		return nil, fmt.Errorf("invalid style spec: bad foreground color %d", int(spec.Foreground))
	}
	if !spec.Background.valid() {
		return nil, fmt.Errorf("invalid style spec: bad background color %d", int(spec.Background))
	}

	s := &Styler{spec: spec}
	if attrs := spec.attributes(); len(attrs) > 0 {
		codes := make([]string, len(attrs))
		for i, a := range attrs {
			codes[i] = strconv.Itoa(int(a))
		}
		// One combined sequence in, one reset out. The sequence is
		// assembled here rather than delegated to fatih/color, whose
		// Sprint closes each attribute with its own terminator code.
		s.prefix = "\x1b[" + strings.Join(codes, ";") + "m"
	}
	return s, nil
}

// MustNew is like [New] but panics on an invalid spec.
// Intended for package-level styler variables with constant specs.
func MustNew(spec Spec) *Styler {
	s, err := New(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Spec returns the spec this styler was built from.
func (s *Styler) Spec() Spec { return s.spec }

// Render wraps text in the escape codes implied by the spec, followed by
// a single reset. When color is disabled the text is returned unchanged.
func (s *Styler) Render(text string) string {
	if s.prefix == "" || !ColorEnabled() {
		return text
	}
	return s.prefix + text + reset
}

// Renderf formats according to a format specifier and renders the result.
func (s *Styler) Renderf(format string, a ...any) string {
	return s.Render(fmt.Sprintf(format, a...))
}

// Fprint renders its arguments (fmt.Sprint style) and writes them to w.
func (s *Styler) Fprint(w io.Writer, a ...any) (int, error) {
	return fmt.Fprint(w, s.Render(fmt.Sprint(a...)))
}

// Fprintf renders the formatted string and writes it to w.
func (s *Styler) Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return fmt.Fprint(w, s.Renderf(format, a...))
}

// Fprintln renders its arguments and writes them to w with a newline.
func (s *Styler) Fprintln(w io.Writer, a ...any) (int, error) {
	return fmt.Fprintln(w, s.Render(fmt.Sprint(a...)))
}

// ColorMode controls whether styled output carries escape codes.
type ColorMode int

const (
	// ColorAuto enables color when stdout is a terminal that supports it.
	ColorAuto ColorMode = iota
	// ColorAlways forces color on.
	ColorAlways
	// ColorNever forces color off.
	ColorNever
)

var (
	colorMu   sync.Mutex
	colorMode ColorMode

	detectOnce sync.Once
	detected   bool
)

// SetColor overrides color detection. The default is [ColorAuto].
func SetColor(mode ColorMode) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorMode = mode
}

// ColorEnabled reports whether rendered output will carry escape codes.
func ColorEnabled() bool {
	colorMu.Lock()
	mode := colorMode
	colorMu.Unlock()

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	detectOnce.Do(func() {
		// Honors NO_COLOR, CLICOLOR_FORCE and TTY detection.
		p := colorprofile.Detect(os.Stdout, os.Environ())
		detected = p != colorprofile.NoTTY && p != colorprofile.Ascii
	})
	return detected
}
