// Package prompt asks the user to pick between choices on a terminal.
package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrAborted is returned when the user dismisses the prompt.
var ErrAborted = errors.New("prompt aborted")

// Available reports whether stdin and stdout are both terminals.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Select is a single-choice prompt. Zero values use stdin and stdout.
type Select struct {
	In  io.Reader
	Out io.Writer
}

// Choose shows message with options and returns the picked index.
func (s *Select) Choose(message string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return -1, errors.New("prompt: no options")
	}
	if def < 0 || def >= len(options) {
		def = 0
	}
	var opts []tea.ProgramOption
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}
	final, err := tea.NewProgram(newModel(message, options, def), opts...).Run()
	if err != nil {
		return -1, err
	}
	m := final.(model)
	if m.aborted {
		return -1, ErrAborted
	}
	return m.cursor, nil
}

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	choiceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	message string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newModel(message string, options []string, def int) model {
	return model{message: message, options: options, cursor: def}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	if m.chosen {
		b.WriteString(questionStyle.Render(m.message))
		b.WriteString(" ")
		b.WriteString(choiceStyle.Render(m.options[m.cursor]))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		return ""
	}
	b.WriteString(questionStyle.Render(m.message))
	b.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("up/down to move, enter to choose"))
	b.WriteString("\n")
	return b.String()
}
