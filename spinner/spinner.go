// Package spinner renders an in-progress animation with a mutable
// title on a single terminal line.
//
// A Spinner moves through three states: idle, running, stopped. [Run]
// is the scoped form: it starts the animation, runs a function, and
// guarantees the spinner is stopped and the line restored on every
// exit path, including panics. The animation writes to stderr by
// default so stdout stays clean for piping.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ask/style"
)

type state int

const (
	idle state = iota
	running
	stopped
)

// Spinner animates a glyph plus a title until stopped. The title may be
// changed at any time while running; the next tick picks it up.
type Spinner struct {
	mu      sync.Mutex
	st      state
	title   string
	frames  FrameSet
	out     io.Writer
	program *tea.Program
	titleCh chan string
	done    chan struct{}
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithOutput redirects the animation, stderr by default.
func WithOutput(w io.Writer) Option {
	return func(s *Spinner) { s.out = w }
}

// WithFrames selects the animation frame set, [Dot] by default.
func WithFrames(f FrameSet) Option {
	return func(s *Spinner) { s.frames = f }
}

// New creates an idle spinner with the given title.
func New(title string, opts ...Option) *Spinner {
	s := &Spinner{
		title:   title,
		out:     os.Stderr,
		titleCh: make(chan string, 10),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// titleMsg updates the rendered title.
type titleMsg string

type spinnerModel struct {
	spinner bspinner.Model
	title   string
	titleCh chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForTitle())
}

func (m spinnerModel) waitForTitle() tea.Cmd {
	return func() tea.Msg {
		title, ok := <-m.titleCh
		if !ok {
			return tea.Quit()
		}
		return titleMsg(title)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)
		return m, m.waitForTitle()
	case tea.KeyMsg:
		// Keys don't control the spinner; the owner stops it.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.title == "" {
		return m.spinner.View()
	}
	return fmt.Sprintf("%s%s", m.spinner.View(), m.title)
}

// Start begins the animation. Starting a running or stopped spinner is
// a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st != idle {
		return
	}

	sp := bspinner.New(
		bspinner.WithSpinner(s.frames.frames()),
		bspinner.WithStyle(lipgloss.NewStyle().Foreground(style.CurrentTheme().Primary)),
	)
	model := spinnerModel{
		spinner: sp,
		title:   s.title,
		titleCh: s.titleCh,
	}

	// Input is an empty reader: the spinner must not consume stdin,
	// which the caller may need for prompts right after.
	s.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithOutput(s.out),
		tea.WithInput(strings.NewReader("")),
	)
	s.st = running

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// SetTitle changes the title shown next to the animation. Before Start
// it sets the initial title; after Stop it is a no-op.
func (s *Spinner) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.st {
	case idle:
		s.title = title
	case running:
		s.title = title
		// Non-blocking send: dropping a rapid intermediate title is
		// fine, the channel close happens under this same mutex.
		select {
		case s.titleCh <- title:
		default:
		}
	case stopped:
	}
}

// Title returns the most recently set title.
func (s *Spinner) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Running reports whether the animation is active.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st == running
}

// Stop ends the animation and clears the line. It does not return
// until the render goroutine has exited, so the caller can safely
// write to the terminal afterwards. Stopping an idle or stopped
// spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.st != running {
		s.st = stopped
		s.mu.Unlock()
		return
	}
	s.st = stopped
	close(s.titleCh)
	s.mu.Unlock()

	s.program.Quit()

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
		// The renderer did not honor Quit; kill it and wait for the
		// goroutine to exit so the erase below cannot interleave with
		// its writes.
		s.program.Kill()
		<-s.done
	}

	fmt.Fprint(s.out, "\r"+ansi.EraseEntireLine)
}

// Run executes fn while a spinner animates. The spinner is always
// stopped before Run returns, also when fn returns an error or
// panics; fn's error is returned unmasked.
func Run(title string, fn func(*Spinner) error, opts ...Option) error {
	s := New(title, opts...)
	s.Start()
	defer s.Stop()
	return fn(s)
}
