package prompt

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raphi011/ask/style"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool

	labelStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

func newConfirmModel(prompt string) confirmModel {
	th := style.CurrentTheme()
	return confirmModel{
		prompt:     prompt,
		labelStyle: lipgloss.NewStyle().Foreground(th.Primary).Bold(true),
		hintStyle:  lipgloss.NewStyle().Foreground(th.Muted),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.labelStyle.Render(m.prompt), m.hintStyle.Render("[y/N]"))
}

// Confirm shows a yes/no prompt styled with the active theme and
// returns the user's choice. The default answer is "no" if the user
// presses enter without input.
func Confirm(prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(newConfirmModel(prompt), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
