package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.id != m.generationID {
			return m, nil
		}
		m.message = msg.message
		m.genErr = msg.err
		m.action = actionAccept
		if msg.err != nil {
			m.action = actionRegenerate
		}
		m.phase = PhaseReview
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Cancel) {
			m.cancel()
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) viewLoading() string {
	var b strings.Builder
	contentWidth := m.contentWidth()

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Generating commit message...\n", m.spinner.View()))

	if m.opts.Stat != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(wrapText(m.opts.Stat, contentWidth)))
	}

	b.WriteString(helpStyle.Render("\n\n  q cancel"))
	return m.renderBox(b.String())
}

// spinnerTick is used by phases that animate while waiting.
func (m Model) spinnerTick(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}
