package output

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("default printer should write to stdout")
		}
	})
}

func TestValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello\n"},
		{"int", 42, "42\n"},
		{"bool", true, "true\n"},
		{"duration", 90 * time.Second, "1m30s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			New(&buf).Value(tt.in)
			if got := buf.String(); got != tt.want {
				t.Errorf("Value(%v) wrote %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrintf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf).Printf("%s=%d", "n", 1)
	if got := buf.String(); got != "n=1" {
		t.Errorf("Printf wrote %q, want %q", got, "n=1")
	}
}
