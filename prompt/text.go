package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raphi011/ask/style"
)

// TextResult holds the result of a text input prompt.
type TextResult struct {
	Value     string
	Cancelled bool
}

type textModel struct {
	input     textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s\n%s", m.prompt, m.input.View())
}

// Text shows a single-line text input prompt and returns the user's input.
func Text(prompt, placeholder string) (TextResult, error) {
	th := style.CurrentTheme()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(th.Primary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(th.Muted)

	model := textModel{
		input:  ti,
		prompt: prompt,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return TextResult{}, err
	}
	m := finalModel.(textModel)
	return TextResult{
		Value:     m.input.Value(),
		Cancelled: m.cancelled,
	}, nil
}
