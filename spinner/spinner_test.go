package spinner

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestSpinnerLifecycle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New("loading", WithOutput(&buf))

	if s.Running() {
		t.Error("new spinner should not be running")
	}

	s.SetTitle("still loading")
	if got := s.Title(); got != "still loading" {
		t.Errorf("Title() = %q, want %q", got, "still loading")
	}

	s.Start()
	if !s.Running() {
		t.Error("Start() should transition to running")
	}
	s.Start() // second start is a no-op

	s.Stop()
	if s.Running() {
		t.Error("Stop() should transition out of running")
	}
	s.Stop() // second stop is a no-op

	// The line is cleared on stop.
	if out := buf.String(); !strings.HasSuffix(out, "\r\x1b[2K") {
		t.Errorf("output should end with a line clear, got %q", out)
	}
}

func TestSpinnerSetTitleAfterStop(t *testing.T) {
	t.Parallel()

	s := New("a", WithOutput(&bytes.Buffer{}))
	s.Start()
	s.Stop()

	s.SetTitle("b")
	if got := s.Title(); got != "a" {
		t.Errorf("Title() after stop = %q, want unchanged %q", got, "a")
	}
}

func TestRunStopsOnError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	wantErr := errors.New("boom")

	err := Run("working", func(s *Spinner) error {
		if !s.Running() {
			t.Error("spinner should be running inside fn")
		}
		return wantErr
	}, WithOutput(&buf))

	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
	if out := buf.String(); !strings.HasSuffix(out, "\r\x1b[2K") {
		t.Errorf("spinner not cleaned up after error, output %q", out)
	}
}

func TestRunStopsOnPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate out of Run")
			}
		}()
		_ = Run("working", func(*Spinner) error {
			panic("boom")
		}, WithOutput(&buf))
	}()

	// Teardown ran despite the panic.
	if out := buf.String(); !strings.HasSuffix(out, "\r\x1b[2K") {
		t.Errorf("spinner not cleaned up after panic, output %q", out)
	}
}

// stopFenceWriter records writes arriving after the fence is raised.
type stopFenceWriter struct {
	mu     sync.Mutex
	fenced bool
	late   bool
	buf    bytes.Buffer
}

func (w *stopFenceWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fenced {
		w.late = true
	}
	return w.buf.Write(p)
}

func TestStopWaitsForRenderer(t *testing.T) {
	t.Parallel()

	w := &stopFenceWriter{}
	s := New("working", WithOutput(w))
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	w.mu.Lock()
	w.fenced = true
	w.mu.Unlock()

	// Nothing may touch the output once Stop has returned.
	time.Sleep(200 * time.Millisecond)
	w.mu.Lock()
	late := w.late
	w.mu.Unlock()
	if late {
		t.Error("renderer wrote to the output after Stop returned")
	}
}

func TestRunRendersTitleUpdates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Run("step one", func(s *Spinner) error {
		time.Sleep(150 * time.Millisecond)
		s.SetTitle("step two")
		time.Sleep(150 * time.Millisecond)
		return nil
	}, WithOutput(&buf))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "step one") {
		t.Errorf("output missing initial title:\n%q", out)
	}
	if !strings.Contains(out, "step two") {
		t.Errorf("output missing updated title:\n%q", out)
	}
}

func TestSpinnerModelProgram(t *testing.T) {
	t.Parallel()

	s := New("uploading")
	model := spinnerModel{
		spinner: bspinner.New(bspinner.WithSpinner(Dot.frames())),
		title:   s.title,
		titleCh: s.titleCh,
	}

	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("uploading"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(titleMsg("verifying"))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("verifying"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.QuitMsg{})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
