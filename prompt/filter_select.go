package prompt

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/ask/style"
)

const maxVisibleMatches = 10

type filterSelectModel struct {
	prompt  string
	options []string

	filter   string
	matches  []fuzzy.Match
	cursor   int
	selected int // index into options, -1 if none

	done      bool
	cancelled bool

	labelStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	matchStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
}

func newFilterSelectModel(prompt string, options []string) filterSelectModel {
	th := style.CurrentTheme()
	m := filterSelectModel{
		prompt:      prompt,
		options:     options,
		selected:    -1,
		labelStyle:  lipgloss.NewStyle().Foreground(th.Primary).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		matchStyle:  lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Underline(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(th.Muted),
	}
	m.applyFilter()
	return m
}

// applyFilter recomputes the match list for the current filter text.
// An empty filter matches every option in its original order.
func (m *filterSelectModel) applyFilter() {
	if m.filter == "" {
		m.matches = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(m.filter, m.options)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m filterSelectModel) Init() tea.Cmd {
	return nil
}

func (m filterSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.matches) > 0 {
			m.selected = m.matches[m.cursor].Index
			m.done = true
			return m, tea.Quit
		}
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "backspace":
		if len(m.filter) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.filter)
			m.filter = m.filter[:len(m.filter)-size]
			m.applyFilter()
		}
	default:
		if key.Type == tea.KeyRunes {
			m.filter += string(key.Runes)
			m.applyFilter()
		}
	}
	return m, nil
}

func (m filterSelectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.labelStyle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.mutedStyle.Render("Filter: ") + m.filter)
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(m.mutedStyle.Render("(no matches)"))
		b.WriteString("\n")
		return b.String()
	}

	// Window of matches around the cursor.
	start := 0
	if m.cursor >= maxVisibleMatches {
		start = m.cursor - maxVisibleMatches + 1
	}
	end := min(start+maxVisibleMatches, len(m.matches))

	for i := start; i < end; i++ {
		match := m.matches[i]
		if i == m.cursor {
			b.WriteString(m.cursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(m.highlight(match))
		b.WriteString("\n")
	}
	if rest := len(m.matches) - end; rest > 0 {
		b.WriteString(m.mutedStyle.Render(fmt.Sprintf("  … %d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

// highlight renders a match with its matched characters emphasized.
func (m filterSelectModel) highlight(match fuzzy.Match) string {
	if len(match.MatchedIndexes) == 0 {
		return match.Str
	}
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(m.matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterSelect shows a fuzzy-filtered selection prompt: typing narrows
// the option list, enter picks the highlighted match.
func FilterSelect(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newFilterSelectModel(prompt, options), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(filterSelectModel)

	if m.cancelled || m.selected < 0 {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{
		Value: m.options[m.selected],
		Index: m.selected,
	}, nil
}
