package parse

import (
	"errors"
	"testing"
	"time"
)

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"0", 0, false},
		{"4.2", 0, true},
		{" 42 ", 0, true}, // no implicit trimming
		{"42x", 0, true},
		{"", 0, true},
	}

	p := Int()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := p.Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	truthyInputs := []string{"true", "TRUE", "yes", "Yes", "y", "Y", "1"}
	for _, in := range truthyInputs {
		got, err := Bool().Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", in, err)
		}
		if !got {
			t.Errorf("Parse(%q) = false, want true", in)
		}
	}

	falsyInputs := []string{"false", "False", "no", "NO", "n", "N", "0"}
	for _, in := range falsyInputs {
		got, err := Bool().Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", in, err)
		}
		if got {
			t.Errorf("Parse(%q) = true, want false", in)
		}
	}

	for _, in := range []string{"", "maybe", "2", "yep", "tru"} {
		if _, err := Bool().Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"5s", 5 * time.Second, false},
		{"1h30m", 90 * time.Minute, false},
		{"250ms", 250 * time.Millisecond, false},
		{"5", 0, true}, // missing unit
		{"soon", 0, true},
	}

	p := Duration()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := p.Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	if got, err := Float().Parse("4.2"); err != nil || got != 4.2 {
		t.Errorf("Parse(4.2) = %v, %v; want 4.2, nil", got, err)
	}
	if _, err := Float().Parse(" 4.2"); err == nil {
		t.Error("Parse with leading whitespace expected error, got nil")
	}
}

func TestEnum(t *testing.T) {
	t.Parallel()

	p := Enum("squash", "rebase", "merge")

	got, err := p.Parse("Rebase")
	if err != nil {
		t.Fatalf("Parse(Rebase) error = %v", err)
	}
	if got != "rebase" {
		t.Errorf("Parse(Rebase) = %q, want canonical %q", got, "rebase")
	}

	if _, err := p.Parse("cherry-pick"); err == nil {
		t.Error("Parse(cherry-pick) expected error, got nil")
	}
}

func TestParseErrorDetails(t *testing.T) {
	t.Parallel()

	_, err := Int().Parse("4.2")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a *Error", err)
	}
	if perr.Parser != "int" {
		t.Errorf("Parser = %q, want %q", perr.Parser, "int")
	}
	if perr.Input != "4.2" {
		t.Errorf("Input = %q, want %q", perr.Input, "4.2")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	got, err := String().Parse("  anything goes  ")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if got != "  anything goes  " {
		t.Errorf("Parse = %q, input should be returned verbatim", got)
	}
}
