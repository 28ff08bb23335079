package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/ui/theme"
)

// Model is a one-shot y/N prompt; any key other than y confirms nothing.
type Model struct {
	prompt    string
	confirmed bool
	done      bool
}

func New(prompt string) Model {
	return Model{prompt: prompt}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.done = true
		if s := keyMsg.String(); s == "y" || s == "Y" {
			m.confirmed = true
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.prompt, theme.Muted.Render("[y/N]"))
}

func (m Model) Confirmed() bool {
	return m.confirmed
}

// Ask runs the prompt on the current terminal and reports the answer.
func Ask(prompt string) (bool, error) {
	final, err := tea.NewProgram(New(prompt)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected confirm model type")
	}
	return m.Confirmed(), nil
}
