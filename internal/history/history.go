// Package history remembers the last accepted answer per prompt
// message, so a later run can offer it as the default.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// History stores the last accepted answer keyed by prompt message.
type History struct {
	Answers map[string]string `json:"answers"`
}

// Path returns the path to the history file.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ask", "history.json")
}

// Load reads the history from disk.
func Load() (*History, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &History{Answers: map[string]string{}}, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		// Corrupted - start fresh
		return &History{Answers: map[string]string{}}, nil
	}
	if h.Answers == nil {
		h.Answers = map[string]string{}
	}
	return &h, nil
}

// Get returns the remembered answer for a prompt message, or "".
func (h *History) Get(message string) string {
	return h.Answers[message]
}

// Set records the answer for a prompt message.
func (h *History) Set(message, answer string) {
	h.Answers[message] = answer
}

// Save writes the history to disk atomically.
func (h *History) Save() error {
	path := Path()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}
