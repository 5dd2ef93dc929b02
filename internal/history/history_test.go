package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	h, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := h.Get("Your name"); got != "" {
		t.Errorf("Get on empty history = %q, want empty", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	h, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	h.Set("Your name", "robin")
	h.Set("Port", "8080")
	if err := h.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if got := loaded.Get("Your name"); got != "robin" {
		t.Errorf("Get(\"Your name\") = %q, want %q", got, "robin")
	}
	if got := loaded.Get("Port"); got != "8080" {
		t.Errorf("Get(\"Port\") = %q, want %q", got, "8080")
	}
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()

	h := &History{Answers: map[string]string{}}
	h.Set("Region", "eu")
	h.Set("Region", "us")
	if got := h.Get("Region"); got != "us" {
		t.Errorf("Get(\"Region\") = %q, want %q", got, "us")
	}
}

func TestLoadCorruptedStartsFresh(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(filepath.Dir(Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	h, err := Load()
	if err != nil {
		t.Fatalf("Load() on corrupted file error = %v", err)
	}
	if got := h.Get("anything"); got != "" {
		t.Errorf("Get on fresh history = %q, want empty", got)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	h := &History{Answers: map[string]string{"Port": "8080"}}
	if err := h.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save")
	}
}
