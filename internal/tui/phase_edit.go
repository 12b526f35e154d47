package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Escape):
			m.editArea.Blur()
			m.phase = PhaseReview
			return m, nil
		case key.Matches(keyMsg, keys.Save):
			if value := strings.TrimSpace(m.editArea.Value()); value != "" {
				m.message = value
				m.genErr = nil
			}
			m.editArea.Blur()
			m.action = actionAccept
			m.phase = PhaseReview
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editArea, cmd = m.editArea.Update(msg)
	return m, cmd
}

func (m Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Edit commit message:\n\n")
	b.WriteString(m.editArea.View())
	b.WriteString(helpStyle.Render("\n\n  ctrl+s save • esc discard"))

	return m.renderBox(b.String())
}
